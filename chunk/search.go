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

import "fmt"

// AnyLevel is passed as the level of a kind or text search to match chunks
// at every nesting level.
const AnyLevel = -1

// Predicate classifies a chunk. Method expressions such as
// Chunk.IsNewline are predicates.
type Predicate func(Chunk) bool

// Search steps from c in the given scope and direction until it finds a
// chunk for which pred returns want. c itself is not tested.
//
// Returns Nil if stepping runs out of chunks first.
func Search(c Chunk, pred Predicate, scope Scope, dir Direction, want bool) Chunk {
	for c = c.Step(scope, dir); !c.Nil(); c = c.Step(scope, dir) {
		if pred(c) == want {
			return c
		}
	}
	return Nil
}

// SearchKind is like [Search], but looks for a chunk of the given kind at
// the given nesting level, or at any level if level is [AnyLevel].
func SearchKind(c Chunk, kind Kind, scope Scope, dir Direction, level int) Chunk {
	for c = c.Step(scope, dir); !c.Nil(); c = c.Step(scope, dir) {
		if c.Kind() == kind && (level < 0 || c.Level() == level) {
			return c
		}
	}
	return Nil
}

// SearchText is like [Search], but looks for a chunk whose text is exactly
// the first length bytes of text, at the given nesting level, or at any level
// if level is [AnyLevel].
//
// Panics if length is out of range for text.
func SearchText(c Chunk, text string, length int, scope Scope, dir Direction, level int) Chunk {
	if length < 0 || length > len(text) {
		panic(fmt.Sprintf("fmtcore/chunk: SearchText length %d out of range for %q", length, text))
	}

	text = text[:length]
	for c = c.Step(scope, dir); !c.Nil(); c = c.Step(scope, dir) {
		if c.Len() == length && c.Text() == text && (level < 0 || c.Level() == level) {
			return c
		}
	}
	return Nil
}

// NextKind returns the next chunk of the given kind and level.
func (c Chunk) NextKind(kind Kind, level int, scope Scope) Chunk {
	return SearchKind(c, kind, scope, Forward, level)
}

// PrevKind returns the previous chunk of the given kind and level.
func (c Chunk) PrevKind(kind Kind, level int, scope Scope) Chunk {
	return SearchKind(c, kind, scope, Backward, level)
}

// NextText returns the next chunk with the given text and level.
func (c Chunk) NextText(text string, level int, scope Scope) Chunk {
	return SearchText(c, text, len(text), scope, Forward, level)
}

// PrevText returns the previous chunk with the given text and level.
func (c Chunk) PrevText(text string, level int, scope Scope) Chunk {
	return SearchText(c, text, len(text), scope, Backward, level)
}

// SkipToMatch returns the delimiter that pairs with c: for an opening
// delimiter, the closing one at the same level after it, and vice versa.
//
// Returns c if it is not a delimiter, and Nil if the partner is missing.
func (c Chunk) SkipToMatch(scope Scope) Chunk {
	switch k := c.Kind(); {
	case k.IsOpen():
		return SearchKind(c, k.Match(), scope, Forward, c.Level())
	case k.IsClose():
		return SearchKind(c, k.Match(), scope, Backward, c.Level())
	default:
		return c
	}
}

// NextNewline returns the next newline or line continuation.
func (c Chunk) NextNewline(scope Scope) Chunk {
	return Search(c, Chunk.IsNewline, scope, Forward, true)
}

// PrevNewline returns the previous newline or line continuation.
func (c Chunk) PrevNewline(scope Scope) Chunk {
	return Search(c, Chunk.IsNewline, scope, Backward, true)
}

// NextNonNewline returns the next chunk that does not end a line.
func (c Chunk) NextNonNewline(scope Scope) Chunk {
	return Search(c, Chunk.IsNewline, scope, Forward, false)
}

// PrevNonNewline returns the previous chunk that does not end a line.
func (c Chunk) PrevNonNewline(scope Scope) Chunk {
	return Search(c, Chunk.IsNewline, scope, Backward, false)
}

// NextComment returns the next comment.
func (c Chunk) NextComment(scope Scope) Chunk {
	return Search(c, Chunk.IsComment, scope, Forward, true)
}

// PrevComment returns the previous comment.
func (c Chunk) PrevComment(scope Scope) Chunk {
	return Search(c, Chunk.IsComment, scope, Backward, true)
}

// NextNonComment returns the next chunk that is not a comment.
func (c Chunk) NextNonComment(scope Scope) Chunk {
	return Search(c, Chunk.IsComment, scope, Forward, false)
}

// PrevNonComment returns the previous chunk that is not a comment.
func (c Chunk) PrevNonComment(scope Scope) Chunk {
	return Search(c, Chunk.IsComment, scope, Backward, false)
}

// NextNCNNL returns the next chunk that is neither a comment nor a newline.
func (c Chunk) NextNCNNL(scope Scope) Chunk {
	return Search(c, Chunk.IsCommentOrNewline, scope, Forward, false)
}

// PrevNCNNL returns the previous chunk that is neither a comment nor a
// newline.
func (c Chunk) PrevNCNNL(scope Scope) Chunk {
	return Search(c, Chunk.IsCommentOrNewline, scope, Backward, false)
}

// NextNCNNLNP returns the next chunk that is neither a comment nor a newline,
// nor part of a directive.
func (c Chunk) NextNCNNLNP(scope Scope) Chunk {
	return Search(c, isCommentNewlineOrPreproc, scope, Forward, false)
}

// PrevNCNNLNP is like [Chunk.NextNCNNLNP], but searches backwards.
func (c Chunk) PrevNCNNLNP(scope Scope) Chunk {
	return Search(c, isCommentNewlineOrPreproc, scope, Backward, false)
}

func isCommentNewlineOrPreproc(c Chunk) bool {
	return c.IsCommentOrNewline() || c.IsPreproc()
}

// NextNCNNLInPP is like [Chunk.NextNCNNL], except that from inside a
// directive the search does not leave it, and yields Nil at its edge.
func (c Chunk) NextNCNNLInPP(scope Scope) Chunk {
	return c.ncnnlInPP(scope, Forward)
}

// PrevNCNNLInPP is like [Chunk.NextNCNNLInPP], but searches backwards.
func (c Chunk) PrevNCNNLInPP(scope Scope) Chunk {
	return c.ncnnlInPP(scope, Backward)
}

func (c Chunk) ncnnlInPP(scope Scope, dir Direction) Chunk {
	if c.IsPreproc() {
		scope = Preproc
	}
	return Search(c, Chunk.IsCommentOrNewline, scope, dir, false)
}

// NextNonVBrace returns the next chunk that is not a virtual brace.
func (c Chunk) NextNonVBrace(scope Scope) Chunk {
	return Search(c, Chunk.IsVBrace, scope, Forward, false)
}

// PrevNonVBrace returns the previous chunk that is not a virtual brace.
func (c Chunk) PrevNonVBrace(scope Scope) Chunk {
	return Search(c, Chunk.IsVBrace, scope, Backward, false)
}

// NextNonSquare returns the next chunk that is not a square bracket.
func (c Chunk) NextNonSquare(scope Scope) Chunk {
	return Search(c, Chunk.IsBalancedSquare, scope, Forward, false)
}

// PrevNonSquare returns the previous chunk that is not a square bracket.
func (c Chunk) PrevNonSquare(scope Scope) Chunk {
	return Search(c, Chunk.IsBalancedSquare, scope, Backward, false)
}

// NextSkipSquare skips over any run of square bracket groups starting at c,
// such as the [2][] of an array declarator, along with comments and newlines
// between them. Returns c itself if it does not start a group.
func (c Chunk) NextSkipSquare() Chunk {
	return c.skipSquare(SquareOpen, Forward)
}

// PrevSkipSquare is like [Chunk.NextSkipSquare], but skips backwards over
// groups ending at c.
func (c Chunk) PrevSkipSquare() Chunk {
	return c.skipSquare(SquareClose, Backward)
}

func (c Chunk) skipSquare(entry Kind, dir Direction) Chunk {
	for c.Is(TSquare) || c.Is(entry) {
		if c.Is(entry) {
			c = c.SkipToMatch(All)
		}
		c = Search(c, Chunk.IsCommentOrNewline, All, dir, false)
	}
	return c
}

// NewlineBetween returns whether any chunk from start up to, but not
// including, end is a newline or line continuation. If end does not follow
// start, every chunk after start is checked.
func NewlineBetween(start, end Chunk) bool {
	for c := start; !c.Nil() && c != end; c = c.next() {
		if c.IsNewline() {
			return true
		}
	}
	return false
}

// SameLine returns whether no newline separates start from a later chunk
// end. Line continuations do not end a line.
//
// Returns false if start is Nil.
func SameLine(start, end Chunk) bool {
	if start.Nil() {
		return false
	}
	for c := start.next(); !c.Nil() && c != end; c = c.next() {
		if c.Is(Newline) {
			return false
		}
	}
	return true
}

// FirstOnLine returns the first chunk of the logical line c is on: c itself,
// or the earliest chunk reachable backwards without crossing a newline.
func (c Chunk) FirstOnLine() Chunk {
	first := c
	for p := c.prev(); !p.Nil() && !p.IsNewline(); p = p.prev() {
		first = p
	}
	return first
}

// LastOnLine returns the last chunk of the logical line c is on, not
// counting the newline that ends it.
func (c Chunk) LastOnLine() Chunk {
	last := c
	for n := c.next(); !n.Nil() && !n.IsNewline(); n = n.next() {
		last = n
	}
	return last
}

// IsLastOnLine returns whether c is followed by a newline or by nothing. A
// line continuation does not end the line.
func (c Chunk) IsLastOnLine() bool {
	if c.Nil() {
		return false
	}
	next := c.next()
	return next.Nil() || next.Is(Newline)
}
