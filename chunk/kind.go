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

// Kind identifies what kind of token a [Chunk] is.
//
// The same type is used for a chunk's parent kind, the semantic role that
// formatting passes assign to it later. [None] is the parent kind of a chunk
// nobody has classified yet.
type Kind uint16

const (
	None    Kind = iota // No kind; the zero value.
	Unknown             // Unrecognized input.

	Newline // One or more line breaks; see [Chunk.NLCount].
	NLCont  // A backslash-newline line continuation.

	Comment      // A comment whose style is not known.
	CommentCPP   // A // comment.
	CommentMulti // A /* */ comment.

	Word     // An identifier.
	Type     // An identifier known to name a type.
	Function // An identifier known to name a function.
	Number   // A numeric literal.
	String   // A string literal.
	Char     // A character literal.

	BraceOpen   // {
	BraceClose  // }
	VBraceOpen  // A virtual (implied, zero-width) {.
	VBraceClose // A virtual (implied, zero-width) }.
	ParenOpen   // (
	ParenClose  // )
	SquareOpen  // [
	SquareClose // ]
	TSquare     // [], an empty pair of square brackets.
	AngleOpen   // < when used as a template delimiter.
	AngleClose  // > when used as a template delimiter.

	Semicolon  // ;
	VSemicolon // A virtual (implied, zero-width) ;.
	Comma      // ,
	Colon      // :
	Assign     // = and compound assignments.
	Arith      // Arithmetic and comparison operators.
	Star       // *
	Amp        // &
	PtrType    // * or & in a type.
	Dot        // .
	Arrow      // ->

	Hash      // The # that opens a preprocessor directive.
	PPDefine  // define
	PPInclude // include
	PPIf      // if, ifdef, ifndef, elif
	PPElse    // else
	PPEndif   // endif
	PPPragma  // pragma
	PPOther   // Any other directive name.
	Macro     // The name being defined by #define.
	MacroFunc // The name of a function-like macro being defined by #define.

	Keyword // A keyword with no more specific kind.
	Struct  // struct, union, class.
	Return  // return

	kindCount
)

var kindNames = [...]string{
	None:         "None",
	Unknown:      "Unknown",
	Newline:      "Newline",
	NLCont:       "NLCont",
	Comment:      "Comment",
	CommentCPP:   "CommentCPP",
	CommentMulti: "CommentMulti",
	Word:         "Word",
	Type:         "Type",
	Function:     "Function",
	Number:       "Number",
	String:       "String",
	Char:         "Char",
	BraceOpen:    "BraceOpen",
	BraceClose:   "BraceClose",
	VBraceOpen:   "VBraceOpen",
	VBraceClose:  "VBraceClose",
	ParenOpen:    "ParenOpen",
	ParenClose:   "ParenClose",
	SquareOpen:   "SquareOpen",
	SquareClose:  "SquareClose",
	TSquare:      "TSquare",
	AngleOpen:    "AngleOpen",
	AngleClose:   "AngleClose",
	Semicolon:    "Semicolon",
	VSemicolon:   "VSemicolon",
	Comma:        "Comma",
	Colon:        "Colon",
	Assign:       "Assign",
	Arith:        "Arith",
	Star:         "Star",
	Amp:          "Amp",
	PtrType:      "PtrType",
	Dot:          "Dot",
	Arrow:        "Arrow",
	Hash:         "Hash",
	PPDefine:     "PPDefine",
	PPInclude:    "PPInclude",
	PPIf:         "PPIf",
	PPElse:       "PPElse",
	PPEndif:      "PPEndif",
	PPPragma:     "PPPragma",
	PPOther:      "PPOther",
	Macro:        "Macro",
	MacroFunc:    "MacroFunc",
	Keyword:      "Keyword",
	Struct:       "Struct",
	Return:       "Return",
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("chunk.Kind(%d)", int(k))
	}
	return kindNames[k]
}

// KindByName looks up a Kind by the name [Kind.String] returns.
func KindByName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return None, false
}

// IsNewline returns whether this kind ends a logical line: a newline or a
// line continuation.
func (k Kind) IsNewline() bool {
	return k == Newline || k == NLCont
}

// IsComment returns whether this is any kind of comment.
func (k Kind) IsComment() bool {
	return k == Comment || k == CommentCPP || k == CommentMulti
}

// IsVBrace returns whether this is a virtual brace.
func (k Kind) IsVBrace() bool {
	return k == VBraceOpen || k == VBraceClose
}

// IsBalancedSquare returns whether this is one of the square bracket kinds.
func (k Kind) IsBalancedSquare() bool {
	return k == SquareOpen || k == SquareClose || k == TSquare
}

// IsOpen returns whether this kind opens a delimited region.
func (k Kind) IsOpen() bool {
	switch k {
	case BraceOpen, VBraceOpen, ParenOpen, SquareOpen, AngleOpen:
		return true
	default:
		return false
	}
}

// IsClose returns whether this kind closes a delimited region.
func (k Kind) IsClose() bool {
	switch k {
	case BraceClose, VBraceClose, ParenClose, SquareClose, AngleClose:
		return true
	default:
		return false
	}
}

// Match returns the kind of the delimiter that pairs with this one, or
// [None] if this is not a delimiter.
func (k Kind) Match() Kind {
	switch k {
	case BraceOpen:
		return BraceClose
	case BraceClose:
		return BraceOpen
	case VBraceOpen:
		return VBraceClose
	case VBraceClose:
		return VBraceOpen
	case ParenOpen:
		return ParenClose
	case ParenClose:
		return ParenOpen
	case SquareOpen:
		return SquareClose
	case SquareClose:
		return SquareOpen
	case AngleOpen:
		return AngleClose
	case AngleClose:
		return AngleOpen
	default:
		return None
	}
}
