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

import "github.com/rivo/uniseg"

// Aligner computes the number of columns between ref and c when c is placed
// immediately after ref. It is supplied by the spacing rules of the caller.
type Aligner func(ref, c Chunk) int

// AddAfter inserts a copy of src immediately after ref, and returns it. If
// ref is Nil, the copy is inserted at the start of the list.
//
// The copy has the same data and parent as src, but its own position in the
// list.
//
// Panics if src is Nil, or if ref is neither Nil nor in the list. If the list
// cannot allocate another chunk, the process is aborted; see [List.Fatalf].
func (l *List) AddAfter(src, ref Chunk) Chunk {
	return l.add(src, ref, Forward)
}

// AddBefore inserts a copy of src immediately before ref, and returns it. If
// ref is Nil, the copy is inserted at the end of the list.
//
// See [List.AddAfter].
func (l *List) AddBefore(src, ref Chunk) Chunk {
	return l.add(src, ref, Backward)
}

func (l *List) add(src, ref Chunk, dir Direction) Chunk {
	n := l.owned(src, "AddAfter/AddBefore")
	if !ref.Nil() {
		l.linked(ref, "AddAfter/AddBefore")
	}
	c := l.New(n.Data)
	c.raw().parent = n.parent

	switch {
	case ref.Nil() && dir == Forward:
		l.PushFront(c)
	case ref.Nil():
		l.PushBack(c)
	case dir == Forward:
		l.InsertAfter(c, ref)
	default:
		l.InsertBefore(c, ref)
	}

	where := "after"
	if dir == Backward {
		where = "before"
	}
	l.mutated(c, TagAdd, "copied %s %s %s", describe(src), where, describe(ref))
	return c
}

// Delete removes *c from the list and destroys it, and then sets *c to Nil.
// Other copies of the handle must not be used afterwards.
//
// Does nothing if c or *c is Nil.
func (l *List) Delete(c *Chunk) {
	if c == nil || c.Nil() {
		return
	}

	n := l.owned(*c, "Delete")
	l.mutated(*c, TagDelete, "deleted %s", describe(*c))
	if n.linked {
		l.Remove(*c)
	}
	l.nodes.Free(ptr(c.id))
	c.raw().dead = true
	*c = Nil
}

// MoveAfter moves c to immediately after ref.
//
// c's column becomes ref's column plus the spacing align computes, or plus
// zero if align is nil. Its original column is overwritten to match, so that
// diagnostics about c point at where it now is.
//
// Panics if either chunk is Nil or not in the list.
func (l *List) MoveAfter(c, ref Chunk, align Aligner) {
	l.linked(ref, "MoveAfter")
	if c == ref {
		return
	}

	l.Remove(c)
	l.InsertAfter(c, ref)

	column := ref.Column()
	if align != nil {
		column += align(ref, c)
	}
	n := c.raw()
	n.Column = column
	n.OrigCol = column
	n.OrigColEnd = column + uniseg.StringWidth(n.Text)

	l.mutated(c, TagMove, "moved after %s to column %d", describe(ref), column)
}

// Swap exchanges the positions of c1 and c2 in the list, without touching
// their data.
//
// Panics if either chunk is Nil or not in the list.
func (l *List) Swap(c1, c2 Chunk) {
	l.swap(c1, c2)
	if c1 != c2 {
		l.mutated(c1, TagSwap, "swapped with %s", describe(c2))
	}
}

// SwapLines exchanges the logical lines that a and b are on.
//
// The chunks of each line keep their relative order. The newlines that ended
// each line trade places as well, and trade NLCount values, so that the
// number of blank lines after the first line stays the same.
//
// Does nothing if either chunk is Nil, or if both are on the same line.
func (l *List) SwapLines(a, b Chunk) {
	if a.Nil() || b.Nil() {
		return
	}
	l.linked(a, "SwapLines")
	l.linked(b, "SwapLines")

	pc1, pc2 := a.FirstOnLine(), b.FirstOnLine()
	if pc1 == pc2 {
		return
	}
	start1, start2 := pc1, pc2
	ref2 := pc2.prev()

	// Move the second line in front of the first.
	for !pc2.Nil() && !pc2.IsNewline() {
		next := pc2.next()
		l.Remove(pc2)
		l.InsertBefore(pc2, pc1)
		pc2 = next
	}

	// Move the first line to where the second line was.
	for !pc1.Nil() && !pc1.IsNewline() {
		next := pc1.next()
		l.Remove(pc1)
		l.insertAfterOrFront(pc1, ref2)
		ref2 = pc1
		pc1 = next
	}

	// pc1 and pc2 are now the newlines that ended each line, if any.
	if !pc1.Nil() && !pc2.Nil() {
		n1, n2 := pc1.raw(), pc2.raw()
		n1.NLCount, n2.NLCount = n2.NLCount, n1.NLCount
		l.swap(pc1, pc2)
	}

	l.mutated(start1, TagSwapLines, "swapped with line of %s", describe(start2))
}
