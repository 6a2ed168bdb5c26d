// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package chunk

import (
	"cmp"
	"fmt"
	"strconv"

	"github.com/bufbuild/fmtcore/report"
)

// Nil is the nil [Chunk], i.e., the zero value.
var Nil Chunk

// ID is the identity of a chunk within its [List]. Zero is reserved for
// "no chunk".
type ID uint32

// Data is everything a chunk records about its token, except for its links
// to other chunks.
type Data struct {
	Kind       Kind   // What kind of token this is.
	ParentKind Kind   // The semantic role assigned by a later pass; None until set.
	Text       string // May be empty for synthetic chunks.

	// Position in the source file at tokenization time, 1-based. OrigColEnd
	// is exclusive.
	OrigLine, OrigCol, OrigColEnd int

	Column int // Output column.

	Level      int // Brace and paren nesting depth.
	BraceLevel int // Brace nesting depth.
	PPLevel    int // Preprocessor conditional nesting depth.

	// For newline chunks only: the number of line breaks this chunk stands
	// for. Two means one blank line.
	NLCount int

	Flags Flags
}

// Chunk is one lexical token of a source file, plus the metadata formatting
// passes attach to it.
//
// A Chunk is a handle into the [List] that owns it; copying a Chunk does not
// copy the token. The zero value is [Nil], which denotes the absence of a
// chunk. Every accessor returns the zero value of its result for Nil.
type Chunk struct {
	list *List
	id   ID
}

// Nil returns whether this is the nil chunk.
func (c Chunk) Nil() bool {
	return c.list == nil || c.id == 0
}

// ID returns this chunk's raw ID within its list.
func (c Chunk) ID() ID {
	return c.id
}

// List returns the list that owns this chunk.
func (c Chunk) List() *List {
	return c.list
}

// Data returns a copy of this chunk's data.
func (c Chunk) Data() Data {
	if n := c.node(); n != nil {
		return n.Data
	}
	return Data{}
}

// Kind returns what kind of token this is. Returns [None] for Nil.
func (c Chunk) Kind() Kind {
	if n := c.node(); n != nil {
		return n.Kind
	}
	return None
}

// ParentKind returns the semantic role assigned to this chunk.
func (c Chunk) ParentKind() Kind {
	if n := c.node(); n != nil {
		return n.ParentKind
	}
	return None
}

// Text returns the source text of this chunk.
func (c Chunk) Text() string {
	if n := c.node(); n != nil {
		return n.Text
	}
	return ""
}

// Len returns the length of this chunk's text in bytes.
func (c Chunk) Len() int {
	return len(c.Text())
}

// OrigLine returns the 1-based line this chunk was tokenized at.
func (c Chunk) OrigLine() int {
	if n := c.node(); n != nil {
		return n.OrigLine
	}
	return 0
}

// OrigCol returns the 1-based column this chunk was tokenized at.
func (c Chunk) OrigCol() int {
	if n := c.node(); n != nil {
		return n.OrigCol
	}
	return 0
}

// OrigColEnd returns the column just past the end of this chunk at
// tokenization time.
func (c Chunk) OrigColEnd() int {
	if n := c.node(); n != nil {
		return n.OrigColEnd
	}
	return 0
}

// Column returns this chunk's output column.
func (c Chunk) Column() int {
	if n := c.node(); n != nil {
		return n.Column
	}
	return 0
}

// SetColumn sets this chunk's output column. Does nothing for Nil.
func (c Chunk) SetColumn(column int) {
	if n := c.node(); n != nil {
		n.Column = column
	}
}

// Level returns the brace and paren nesting depth of this chunk.
func (c Chunk) Level() int {
	if n := c.node(); n != nil {
		return n.Level
	}
	return 0
}

// BraceLevel returns the brace nesting depth of this chunk.
func (c Chunk) BraceLevel() int {
	if n := c.node(); n != nil {
		return n.BraceLevel
	}
	return 0
}

// PPLevel returns the preprocessor conditional nesting depth of this chunk.
func (c Chunk) PPLevel() int {
	if n := c.node(); n != nil {
		return n.PPLevel
	}
	return 0
}

// NLCount returns the number of line breaks a newline chunk stands for.
func (c Chunk) NLCount() int {
	if n := c.node(); n != nil {
		return n.NLCount
	}
	return 0
}

// SetNLCount sets the number of line breaks a newline chunk stands for. Does
// nothing for Nil.
func (c Chunk) SetNLCount(count int) {
	if n := c.node(); n != nil {
		n.NLCount = count
	}
}

// Flags returns this chunk's flags.
func (c Chunk) Flags() Flags {
	if n := c.node(); n != nil {
		return n.Flags
	}
	return 0
}

// Has returns whether all of the given flags are set on this chunk.
func (c Chunk) Has(flags Flags) bool {
	return !c.Nil() && c.Flags().Has(flags)
}

// Parent returns the chunk recorded as enclosing this one, if any.
//
// The parent link is weak: if the parent has since been deleted, this
// returns Nil.
func (c Chunk) Parent() Chunk {
	n := c.node()
	if n == nil || n.parent == 0 {
		return Nil
	}
	p := Chunk{c.list, n.parent}
	if p.raw().dead {
		return Nil
	}
	return p
}

// IsNewline returns whether this chunk ends a logical line.
func (c Chunk) IsNewline() bool { return c.Kind().IsNewline() }

// IsComment returns whether this chunk is a comment.
func (c Chunk) IsComment() bool { return c.Kind().IsComment() }

// IsCommentOrNewline returns whether this chunk is a comment or ends a
// logical line.
func (c Chunk) IsCommentOrNewline() bool { return c.IsComment() || c.IsNewline() }

// IsVBrace returns whether this chunk is a virtual brace.
func (c Chunk) IsVBrace() bool { return c.Kind().IsVBrace() }

// IsBalancedSquare returns whether this chunk is a square bracket.
func (c Chunk) IsBalancedSquare() bool { return c.Kind().IsBalancedSquare() }

// IsPreproc returns whether this chunk is part of a preprocessor directive.
func (c Chunk) IsPreproc() bool { return c.Has(InPreproc) }

// Is returns whether this chunk has the given kind.
func (c Chunk) Is(kind Kind) bool { return !c.Nil() && c.Kind() == kind }

// IsText returns whether this chunk's text is exactly text.
func (c Chunk) IsText(text string) bool { return !c.Nil() && c.Text() == text }

// Location returns this chunk's provenance as a diagnostic option.
func (c Chunk) Location() report.Location {
	return report.Location{
		Line:   c.OrigLine(),
		Column: c.OrigCol(),
		Text:   c.Text(),
	}
}

// String implements [fmt.Stringer].
func (c Chunk) String() string {
	if c.Nil() {
		return "<nil>"
	}
	if c.raw().dead {
		return fmt.Sprintf("<deleted %d>", c.id)
	}
	return fmt.Sprintf("%v %s @%d:%d", c.Kind(), strconv.Quote(c.Text()), c.OrigLine(), c.OrigCol())
}

// Compare orders chunks by their original position: line first, then
// column.
//
// Panics if either chunk is Nil.
func Compare(a, b Chunk) int {
	if a.Nil() || b.Nil() {
		panic(fmt.Sprintf("fmtcore/chunk: passed nil chunk to Compare: %v, %v", a, b))
	}
	if n := cmp.Compare(a.OrigLine(), b.OrigLine()); n != 0 {
		return n
	}
	return cmp.Compare(a.OrigCol(), b.OrigCol())
}

// node returns the storage for this chunk, or nil if c is Nil.
//
// Panics if c has been deleted.
func (c Chunk) node() *node {
	if c.Nil() {
		return nil
	}
	n := c.raw()
	if n.dead {
		panic(fmt.Sprintf("fmtcore/chunk: use of deleted chunk %d", c.id))
	}
	return n
}

// raw is like node, but does not check for deletion.
func (c Chunk) raw() *node {
	return c.list.nodes.Deref(ptr(c.id))
}
