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

package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/fmtcore/internal/arena"
)

func TestPointers(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var a arena.Arena[int]

	p1 := a.New(5)
	p2 := a.Deref(p1)
	assert.Equal(5, *a.Deref(p1))

	for i := range 16 {
		a.New(i + 5)
	}
	assert.Equal(19, *a.Deref(16))
	assert.Equal(20, *a.Deref(17))
	assert.Same(a.Deref(p1), p2)

	for i := range 32 {
		a.New(i + 21)
	}
	assert.Equal(51, *a.Deref(48))
	assert.Equal(52, *a.Deref(49))
	assert.Same(a.Deref(p1), p2)
	assert.Equal(49, a.Len())

	assert.Equal("[5 5 6 7 8 9 10 11 12 13 14 15 16 17 18 19|20 21 22 23 24 25 26 27 28 29 30 31 32 33 34 35 36 37 38 39 40 41 42 43 44 45 46 47 48 49 50 51|52]", a.String())
}

func TestNilAndRange(t *testing.T) {
	t.Parallel()

	var a arena.Arena[int]
	assert.True(t, arena.Pointer[int](0).Nil())
	assert.Panics(t, func() { a.Deref(0) })
	assert.Panics(t, func() { a.Deref(1) })

	p := a.New(1)
	assert.False(t, p.Nil())
	assert.Equal(t, 1, *p.In(&a))
	assert.Panics(t, func() { a.Deref(p + 1) })
}

func TestLimit(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	a := arena.Arena[string]{Limit: 2}
	_, ok := a.TryNew("a")
	assert.True(ok)
	_, ok = a.TryNew("b")
	assert.True(ok)
	_, ok = a.TryNew("c")
	assert.False(ok)
	assert.Panics(func() { a.New("c") })
	assert.Equal(2, a.Len())
}

func TestFree(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var a arena.Arena[string]
	x := a.New("x")
	y := a.New("y")
	a.Free(x)

	assert.Empty(*a.Deref(x))
	assert.Equal("y", *a.Deref(y))
	assert.Equal(2, a.Len())
	assert.Equal(1, a.Live())

	// Released slots are not recycled.
	z := a.New("z")
	assert.NotEqual(x, z)
}
