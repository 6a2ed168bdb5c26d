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
	"github.com/tidwall/btree"

	"github.com/bufbuild/fmtcore/internal/interval"
)

// pos packs a line and column into a single ordered key.
func pos(line, col int) uint64 {
	return uint64(uint32(line))<<32 | uint64(uint32(col))
}

// Index is a snapshot of a [List], ordered by original position rather than
// by list order.
//
// An Index is not updated when the list changes; build a new one.
type Index struct {
	tree btree.Map[uint64, Chunk]
}

// NewIndex indexes every chunk of l with a valid original position. If
// several chunks share a position, the first one in list order wins.
func NewIndex(l *List) *Index {
	ix := new(Index)
	for c := range l.All() {
		if c.OrigLine() < 1 {
			continue
		}
		key := pos(c.OrigLine(), c.OrigCol())
		if _, ok := ix.tree.Get(key); !ok {
			ix.tree.Set(key, c)
		}
	}
	return ix
}

// Len returns the number of indexed chunks.
func (ix *Index) Len() int {
	return ix.tree.Len()
}

// At returns the chunk that was tokenized at exactly line:col.
func (ix *Index) At(line, col int) Chunk {
	c, _ := ix.tree.Get(pos(line, col))
	return c
}

// Floor returns the chunk tokenized at line:col, or failing that, the last
// chunk tokenized before it.
func (ix *Index) Floor(line, col int) Chunk {
	key := pos(line, col)
	iter := ix.tree.Iter()
	if !iter.Seek(key) {
		if iter.Last() {
			return iter.Value()
		}
		return Nil
	}
	if iter.Key() == key {
		return iter.Value()
	}
	if iter.Prev() {
		return iter.Value()
	}
	return Nil
}

// Disordered returns every chunk of l that comes before its predecessor in
// original position order. For a list fresh from the tokenizer, this is
// empty. Chunks without a valid original position are ignored.
func Disordered(l *List) []Chunk {
	var out []Chunk
	prev := Nil
	for c := range l.All() {
		if c.OrigLine() < 1 {
			continue
		}
		if !prev.Nil() && Compare(prev, c) > 0 {
			out = append(out, c)
		}
		prev = c
	}
	return out
}

// Directives maps the original source ranges of preprocessor directives to
// the chunks that start them.
type Directives struct {
	regions interval.Map[uint64, Chunk]
}

// NewDirectives finds every directive in l.
func NewDirectives(l *List) *Directives {
	d := new(Directives)
	for c := range l.All() {
		if !c.IsPreproc() || c.prev().IsPreproc() || c.OrigLine() < 1 {
			continue
		}

		last := c
		for next := c.next(); next.IsPreproc(); next = next.next() {
			last = next
		}
		end := max(last.OrigColEnd()-1, last.OrigCol())
		d.regions.Insert(pos(c.OrigLine(), c.OrigCol()), pos(last.OrigLine(), end), c)
	}
	return d
}

// Len returns the number of directives found.
func (d *Directives) Len() int {
	return d.regions.Len()
}

// At returns the first chunk of the directive that covers line:col in the
// original source, or Nil if there is none.
func (d *Directives) At(line, col int) Chunk {
	region := d.regions.Get(pos(line, col))
	if region.Value == nil {
		return Nil
	}
	return *region.Value
}
