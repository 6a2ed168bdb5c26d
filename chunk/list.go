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
	"fmt"
	"iter"

	"github.com/bufbuild/fmtcore/internal/arena"
	"github.com/bufbuild/fmtcore/report"
)

// List is an ordered sequence of chunks: the token stream of one file.
//
// The list links are owned exclusively by the List. Every operation that
// takes a chunk requires that chunk to belong to this List, and runs in O(1).
//
// A List is not safe for concurrent use. There is no global List; each
// formatting pipeline creates its own and passes it to every stage.
//
// A zero List is empty and ready to use.
type List struct {
	nodes      arena.Arena[node]
	head, tail ID
	len        int

	sink      report.Sink
	stage     string
	mutations int
}

// Options configures a [List] created with [NewList].
type Options struct {
	// Where to report mutations. May be nil.
	Sink report.Sink

	// The maximum number of chunks the list may ever allocate, including
	// deleted ones. Zero means no limit beyond what an [ID] can address.
	Limit int
}

type node struct {
	Data

	parent     ID
	prev, next ID
	linked     bool
	dead       bool
}

func ptr(id ID) arena.Pointer[node] {
	return arena.Pointer[node](id)
}

// NewList returns a new, empty list.
func NewList(opts Options) *List {
	l := &List{sink: opts.Sink}
	l.nodes.Limit = opts.Limit
	return l
}

// Sink returns the sink mutations are reported to, if any.
func (l *List) Sink() report.Sink {
	return l.sink
}

// SetSink sets the sink mutations are reported to. May be nil.
func (l *List) SetSink(sink report.Sink) {
	l.sink = sink
}

// Stage returns the name of the pipeline stage currently mutating this list.
func (l *List) Stage() string {
	return l.stage
}

// SetStage sets the name of the pipeline stage currently mutating this list.
// It is included in every diagnostic the list emits.
func (l *List) SetStage(stage string) {
	l.stage = stage
}

// Mutations returns the number of changes made to this list through its
// mutators and setters. Setters that did not change anything are not
// counted.
func (l *List) Mutations() int {
	return l.mutations
}

// Len returns the number of chunks currently in the list.
func (l *List) Len() int {
	return l.len
}

// Head returns the first chunk in the list, or Nil if it is empty.
func (l *List) Head() Chunk {
	return l.wrap(l.head)
}

// Tail returns the last chunk in the list, or Nil if it is empty.
func (l *List) Tail() Chunk {
	return l.wrap(l.tail)
}

// All returns an iterator over the chunks of this list, in order.
//
// The iterator tolerates the current chunk being moved or deleted, but not
// the chunk after it.
func (l *List) All() iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		for c := l.Head(); !c.Nil(); {
			next := c.next()
			if !yield(c) {
				return
			}
			c = next
		}
	}
}

// New allocates a chunk with the given data, without inserting it.
//
// If the list cannot allocate any more chunks, the process is aborted; see
// [List.Fatalf].
func (l *List) New(data Data) Chunk {
	p, ok := l.nodes.TryNew(node{Data: data})
	if !ok {
		l.Fatalf("chunk list exhausted after %d chunks", l.nodes.Len())
	}
	return Chunk{l, ID(p)}
}

// Append allocates a chunk with the given data and inserts it at the end of
// the list. This is how a tokenizer fills a list.
func (l *List) Append(data Data) Chunk {
	c := l.New(data)
	l.PushBack(c)
	return c
}

// PushFront inserts c at the start of the list.
//
// Panics if c is Nil, belongs to another list, or is already in the list.
func (l *List) PushFront(c Chunk) {
	n := l.unlinked(c, "PushFront")
	n.next = l.head
	if l.head != 0 {
		l.wrap(l.head).raw().prev = c.id
	} else {
		l.tail = c.id
	}
	l.head = c.id
	l.link(n)
}

// PushBack inserts c at the end of the list.
//
// Panics if c is Nil, belongs to another list, or is already in the list.
func (l *List) PushBack(c Chunk) {
	n := l.unlinked(c, "PushBack")
	n.prev = l.tail
	if l.tail != 0 {
		l.wrap(l.tail).raw().next = c.id
	} else {
		l.head = c.id
	}
	l.tail = c.id
	l.link(n)
}

// InsertAfter inserts c immediately after ref.
//
// Panics if c is already in the list, ref is not, or either is Nil or
// belongs to another list.
func (l *List) InsertAfter(c, ref Chunk) {
	n := l.unlinked(c, "InsertAfter")
	r := l.linked(ref, "InsertAfter")

	n.prev = ref.id
	n.next = r.next
	if r.next != 0 {
		l.wrap(r.next).raw().prev = c.id
	} else {
		l.tail = c.id
	}
	r.next = c.id
	l.link(n)
}

// InsertBefore inserts c immediately before ref.
//
// Panics if c is already in the list, ref is not, or either is Nil or
// belongs to another list.
func (l *List) InsertBefore(c, ref Chunk) {
	n := l.unlinked(c, "InsertBefore")
	r := l.linked(ref, "InsertBefore")

	n.next = ref.id
	n.prev = r.prev
	if r.prev != 0 {
		l.wrap(r.prev).raw().next = c.id
	} else {
		l.head = c.id
	}
	r.prev = c.id
	l.link(n)
}

// Remove unlinks c from the list. c remains valid, and may be inserted again.
//
// Panics if c is not in the list.
func (l *List) Remove(c Chunk) {
	n := l.linked(c, "Remove")

	if n.prev != 0 {
		l.wrap(n.prev).raw().next = n.next
	} else {
		l.head = n.next
	}
	if n.next != 0 {
		l.wrap(n.next).raw().prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = 0, 0
	n.linked = false
	l.len--
}

// swap exchanges the positions of two chunks in the list, which may or may
// not be adjacent.
func (l *List) swap(c1, c2 Chunk) {
	n1 := l.linked(c1, "Swap")
	n2 := l.linked(c2, "Swap")
	switch {
	case c1.id == c2.id:
		return
	case n1.next == c2.id:
		l.Remove(c1)
		l.InsertAfter(c1, c2)
		return
	case n2.next == c1.id:
		l.Remove(c2)
		l.InsertAfter(c2, c1)
		return
	}

	p1, p2 := l.wrap(n1.prev), l.wrap(n2.prev)
	l.Remove(c1)
	l.Remove(c2)
	l.insertAfterOrFront(c1, p2)
	l.insertAfterOrFront(c2, p1)
}

// insertAfterOrFront inserts c after ref, or at the front if ref is Nil.
func (l *List) insertAfterOrFront(c, ref Chunk) {
	if ref.Nil() {
		l.PushFront(c)
	} else {
		l.InsertAfter(c, ref)
	}
}

// Fatalf reports a fatal diagnostic, flushes the sink, and aborts by
// panicking. It is used when the list can no longer be kept consistent.
func (l *List) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if l.sink != nil {
		l.sink.Push(report.New(report.Fatal, "%s", msg).With(
			report.Tag("fatal"),
			report.Stage(l.stage),
			report.CallerAt(1),
			report.Debug("%d of %d allocated chunks linked, %d mutations", l.len, l.nodes.Live(), l.mutations),
		))
		l.sink.Flush()
	}
	panic("fmtcore/chunk: " + msg)
}

func (l *List) wrap(id ID) Chunk {
	if id == 0 {
		return Nil
	}
	return Chunk{l, id}
}

func (l *List) link(n *node) {
	n.linked = true
	l.len++
}

// owned asserts that c is a live chunk of this list.
func (l *List) owned(c Chunk, op string) *node {
	if c.Nil() {
		panic(fmt.Sprintf("fmtcore/chunk: passed nil chunk to %s", op))
	}
	if c.list != l {
		panic(fmt.Sprintf("fmtcore/chunk: passed chunk of another list to %s: %v", op, c))
	}
	return c.node()
}

func (l *List) linked(c Chunk, op string) *node {
	n := l.owned(c, op)
	if !n.linked {
		panic(fmt.Sprintf("fmtcore/chunk: passed chunk that is not in the list to %s: %v", op, c))
	}
	return n
}

func (l *List) unlinked(c Chunk, op string) *node {
	n := l.owned(c, op)
	if n.linked {
		panic(fmt.Sprintf("fmtcore/chunk: passed chunk that is already in the list to %s: %v", op, c))
	}
	return n
}

// next and prev are single physical steps.
func (c Chunk) next() Chunk {
	if n := c.node(); n != nil {
		return c.list.wrap(n.next)
	}
	return Nil
}

func (c Chunk) prev() Chunk {
	if n := c.node(); n != nil {
		return c.list.wrap(n.prev)
	}
	return Nil
}
