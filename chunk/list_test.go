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

package chunk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/fmtcore/chunk"
	"github.com/bufbuild/fmtcore/report"
)

func word(text string) chunk.Data {
	return chunk.Data{Kind: chunk.Word, Text: text, OrigLine: 1}
}

func TestListOps(t *testing.T) {
	t.Parallel()

	var l chunk.List
	assert.True(t, l.Head().Nil())
	assert.True(t, l.Tail().Nil())
	assert.Equal(t, 0, l.Len())

	a := l.Append(word("a"))
	b := l.Append(word("b"))
	c := l.New(word("c"))
	assert.Equal(t, "a b", render(&l))
	assert.Equal(t, 2, l.Len())

	l.PushFront(c)
	assert.Equal(t, "c a b", render(&l))
	assert.Equal(t, c, l.Head())
	assert.Equal(t, b, l.Tail())

	l.Remove(c)
	assert.Equal(t, "a b", render(&l))
	l.InsertAfter(c, a)
	assert.Equal(t, "a c b", render(&l))

	d := l.New(word("d"))
	l.InsertBefore(d, a)
	assert.Equal(t, "d a c b", render(&l))
	assert.Equal(t, d, l.Head())

	e := l.New(word("e"))
	l.InsertAfter(e, b)
	assert.Equal(t, e, l.Tail())
	l.Remove(e)
	assert.Equal(t, b, l.Tail())
	l.PushBack(e)
	assert.Equal(t, "d a c b e", render(&l))
	assert.Equal(t, 5, l.Len())

	assert.Equal(t, c, a.Next(chunk.All))
	assert.Equal(t, d, a.Prev(chunk.All))
	assert.True(t, d.Prev(chunk.All).Nil())
	assert.True(t, e.Next(chunk.All).Nil())
	assert.Equal(t, &l, a.List())
}

func TestListSwap(t *testing.T) {
	t.Parallel()

	l := chunk.NewList(chunk.Options{})
	var cs []chunk.Chunk
	for _, text := range []string{"a", "b", "c", "d", "e"} {
		cs = append(cs, l.Append(word(text)))
	}

	l.Swap(cs[0], cs[1])
	assert.Equal(t, "b a c d e", render(l))
	l.Swap(cs[0], cs[1])
	assert.Equal(t, "a b c d e", render(l))
	l.Swap(cs[2], cs[1])
	assert.Equal(t, "a c b d e", render(l))
	l.Swap(cs[0], cs[4])
	assert.Equal(t, "e c b d a", render(l))
	assert.Equal(t, cs[4], l.Head())
	assert.Equal(t, cs[0], l.Tail())
	l.Swap(cs[3], cs[3])
	assert.Equal(t, "e c b d a", render(l))
	assert.Equal(t, 4, l.Mutations())
}

func TestListMisuse(t *testing.T) {
	t.Parallel()

	l1 := chunk.NewList(chunk.Options{})
	l2 := chunk.NewList(chunk.Options{})
	a := l1.Append(word("a"))
	b := l2.Append(word("b"))
	loose := l1.New(word("c"))

	assert.PanicsWithValue(t,
		`fmtcore/chunk: passed chunk that is already in the list to InsertAfter: Word "a" @1:0`,
		func() { l1.InsertAfter(a, a) })
	assert.Panics(t, func() { l1.InsertAfter(b, a) })
	assert.Panics(t, func() { l1.PushBack(chunk.Nil) })
	assert.Panics(t, func() { l1.Remove(loose) })
	assert.Panics(t, func() { l1.InsertBefore(loose, loose) })
	assert.Panics(t, func() { l1.Swap(a, b) })
	assert.Equal(t, 1, l1.Len())
}

type flushRecorder struct {
	report.Report
	flushes int
}

func (f *flushRecorder) Flush() { f.flushes++ }

func TestListExhausted(t *testing.T) {
	t.Parallel()

	sink := new(flushRecorder)
	l := chunk.NewList(chunk.Options{Sink: sink, Limit: 2})
	l.SetStage("tokenize")
	a := l.Append(word("a"))
	l.Append(word("b"))

	assert.PanicsWithValue(t, "fmtcore/chunk: chunk list exhausted after 2 chunks", func() {
		l.AddAfter(a, a)
	})
	assert.Equal(t, 1, sink.flushes)
	require.Len(t, sink.Diagnostics, 1)
	d := sink.Diagnostics[0]
	assert.Equal(t, report.Fatal, d.Level())
	assert.Equal(t, report.Tag("fatal"), d.Tag())
	assert.Equal(t, "tokenize", d.Stage())
	require.Len(t, d.Debug(), 1)
	assert.Contains(t, d.Debug()[0], "2 of 2 allocated chunks linked")
	assert.Equal(t, 2, l.Len())

	// Without a sink, exhaustion still aborts.
	l = chunk.NewList(chunk.Options{Limit: 1})
	l.Append(word("a"))
	assert.Panics(t, func() { l.Append(word("b")) })
}

func TestAddBadRef(t *testing.T) {
	t.Parallel()

	l := chunk.NewList(chunk.Options{Limit: 3})
	a := l.Append(word("a"))
	loose := l.New(word("loose"))
	other := chunk.NewList(chunk.Options{})
	foreign := other.Append(word("z"))

	assert.Panics(t, func() { l.AddAfter(a, loose) })
	assert.Panics(t, func() { l.AddBefore(a, loose) })
	assert.Panics(t, func() { l.AddAfter(a, foreign) })
	assert.Equal(t, 1, l.Len())

	// The rejected copies took no slots: the last one is still free.
	dup := l.AddAfter(a, a)
	assert.Equal(t, "a", dup.Text())
	assert.Equal(t, 2, l.Len())
	assert.Panics(t, func() { l.AddAfter(a, a) })
}
