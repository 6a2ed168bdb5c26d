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

package pipeline

import (
	"fmt"
	"math"

	"github.com/bufbuild/fmtcore/chunk"
	"github.com/bufbuild/fmtcore/report"
)

// Tags of the warnings the passes in this package report.
const (
	TagNoSuchLine report.Tag = "no-such-line"
	TagDisordered report.Tag = "disordered"
)

// SwapLines returns a pass that swaps the logical lines that started on
// original lines a and b.
//
// If either line has no chunks, the pass warns and does nothing.
func SwapLines(a, b int) Pass {
	return Pass{
		Name: fmt.Sprintf("swap-lines(%d,%d)", a, b),
		Run: func(l *chunk.List) {
			ix := chunk.NewIndex(l)
			first := lineStart(l, ix, a)
			second := lineStart(l, ix, b)
			if first.Nil() || second.Nil() {
				return
			}
			l.SwapLines(first, second)
		},
	}
}

// lineStart finds a chunk that was tokenized on line.
func lineStart(l *chunk.List, ix *chunk.Index, line int) chunk.Chunk {
	c := ix.Floor(line, math.MaxInt32)
	if c.Nil() || c.OrigLine() != line {
		warn(l, chunk.Nil, TagNoSuchLine, "no chunks on line %d", line)
		return chunk.Nil
	}
	return c.FirstOnLine()
}

// CheckOrder returns a pass that warns about every chunk that comes before
// its predecessor in original position order. It does not mutate the list.
func CheckOrder() Pass {
	return Pass{
		Name: "check-order",
		Run: func(l *chunk.List) {
			for _, c := range chunk.Disordered(l) {
				prev := c.Prev(chunk.All)
				warn(l, c, TagDisordered, "%v was originally before %v", c, prev)
			}
		},
	}
}
