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
	"math/bits"
	"strconv"
	"strings"
)

// Flags is a set of independently toggleable chunk attributes.
type Flags uint64

const (
	// InPreproc marks every chunk of a preprocessor directive, from the # up
	// to but not including the newline that ends it. This is the boundary
	// that [Preproc]-scoped stepping honors.
	InPreproc Flags = 1 << iota

	StmtStart  // First chunk of a statement.
	ExprStart  // First chunk of an expression.
	DontIndent // Leave the chunk's column alone.
	InFcnCall  // Inside the parentheses of a function call.
	InStruct   // Inside a struct/union/class body.
	InEnum     // Inside an enum body.
	OneLiner   // Part of a construct that must stay on one line.
	Punctuator // Punctuation, as opposed to a word.
	Aligned    // Already aligned by an alignment pass.
	Reserved   // A reserved word of the language.

	flagCount = iota
)

var flagNames = [flagCount]string{
	"InPreproc",
	"StmtStart",
	"ExprStart",
	"DontIndent",
	"InFcnCall",
	"InStruct",
	"InEnum",
	"OneLiner",
	"Punctuator",
	"Aligned",
	"Reserved",
}

// Has returns whether every flag in want is set.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}

// Any returns whether any flag in want is set.
func (f Flags) Any(want Flags) bool {
	return f&want != 0
}

// With returns f with the given flags set.
func (f Flags) With(set Flags) Flags {
	return f | set
}

// Without returns f with the given flags cleared.
func (f Flags) Without(clear Flags) Flags {
	return f &^ clear
}

// String implements [fmt.Stringer].
//
// Flags are printed as a |-separated list of names; unknown bits are printed
// as their bit index.
func (f Flags) String() string {
	if f == 0 {
		return "0"
	}

	var out strings.Builder
	for f != 0 {
		bit := bits.TrailingZeros64(uint64(f))
		f &^= 1 << bit
		if out.Len() > 0 {
			out.WriteByte('|')
		}
		if bit < flagCount {
			out.WriteString(flagNames[bit])
		} else {
			out.WriteString("bit")
			out.WriteString(strconv.Itoa(bit))
		}
	}
	return out.String()
}

// FlagByName looks up a single flag by the name [Flags.String] uses for it.
func FlagByName(name string) (Flags, bool) {
	for i, n := range flagNames {
		if n == name {
			return 1 << i, true
		}
	}
	return 0, false
}
