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

// Package arena defines an [Arena] type with compressed pointers.
//
// Values in an arena never move once allocated, and are addressed by a
// four-byte [Pointer] whose zero value is nil. This makes arena pointers
// suitable as links in pointer-heavy structures such as linked lists: a
// dangling link is an out-of-range or released index, which is checked,
// rather than a dangling Go pointer.
package arena

import (
	"fmt"
	"math"
	"math/bits"
	"strings"
)

// pointersMinLenShift is the log2 of the size of the smallest slice in
// an Arena[T].
const (
	pointersMinLenShift = 4
	pointersMinLen      = 1 << pointersMinLenShift
)

// Pointer is a compressed arena pointer.
//
// The pointer value of a particular pointer in an arena is equal to one
// plus the number of elements allocated before it. The zero value is nil.
type Pointer[T any] uint32

// Nil returns whether this pointer is nil.
func (p Pointer[T]) Nil() bool {
	return p == 0
}

// In looks up this pointer in the given arena, as if by [Arena.Deref].
func (p Pointer[T]) In(arena *Arena[T]) *T {
	return arena.Deref(p)
}

// Arena is an arena that offers compressed pointers. Internally, it is a slice
// of T that guarantees the Ts will never be moved.
//
// It does this by maintaining a table of logarithmically-growing slices that
// mimic the resizing behavior of an ordinary slice. Lookup is O(1), at the
// cost of two pointer loads instead of one.
//
// A zero Arena[T] is empty and ready to use.
type Arena[T any] struct {
	// Limit is the maximum number of values this arena may hold. Zero means
	// the largest value representable by a [Pointer].
	Limit int

	// Invariants:
	// 1. cap(table[0]) == 1<<pointersMinLenShift.
	// 2. cap(table[n]) == 2*cap(table[n-1]).
	// 3. cap(table[n]) == len(table[n]) for n < len(table)-1.
	//
	// These invariants are needed for lookup to be O(1).
	table [][]T

	// Number of values handed to Free.
	freed int
}

// New allocates a new value on the arena.
//
// Panics if the arena is exhausted; see [Arena.TryNew].
func (a *Arena[T]) New(value T) Pointer[T] {
	p, ok := a.TryNew(value)
	if !ok {
		panic(fmt.Sprintf("arena: exhausted after %d values", a.Len()))
	}
	return p
}

// TryNew allocates a new value on the arena, unless doing so would exceed
// [Arena.Limit].
func (a *Arena[T]) TryNew(value T) (Pointer[T], bool) {
	limit := a.Limit
	if limit <= 0 || limit > math.MaxUint32 {
		limit = math.MaxUint32
	}
	if a.Len() >= limit {
		return 0, false
	}

	if a.table == nil {
		a.table = [][]T{make([]T, 0, pointersMinLen)}
	}

	last := &a.table[len(a.table)-1]
	if len(*last) == cap(*last) {
		// If the last slice is full, grow by doubling the size
		// of the next slice.
		a.table = append(a.table, make([]T, 0, 2*cap(*last)))
		last = &a.table[len(a.table)-1]
	}

	*last = append(*last, value)
	return Pointer[T](a.Len()), true
}

// Deref dereferences a pointer allocated by this arena.
//
// If p is nil or out of range, this panics.
func (a *Arena[T]) Deref(p Pointer[T]) *T {
	if p.Nil() {
		panic("arena: dereferenced nil pointer")
	}
	slice, idx := a.coordinates(int(p) - 1)
	return &a.table[slice][idx]
}

// Free overwrites the value at p with the zero value, releasing anything
// it refers to. The slot itself is never handed out again, so stale copies
// of p still refer to the (now zero) slot rather than to some other value.
func (a *Arena[T]) Free(p Pointer[T]) {
	var zero T
	*a.Deref(p) = zero
	a.freed++
}

// Len returns the number of values ever allocated on this arena.
func (a *Arena[T]) Len() int {
	if len(a.table) == 0 {
		return 0
	}

	// Only the last slice will be not-fully-filled.
	return a.lenOfFirstNSlices(len(a.table)-1) + len(a.table[len(a.table)-1])
}

// Live returns the number of values that have not been passed to Free.
func (a *Arena[T]) Live() int {
	return a.Len() - a.freed
}

// String implements [strings.Stringer].
func (a *Arena[T]) String() string {
	var b strings.Builder
	b.WriteRune('[')
	// Subtly show off the boundaries of the subarrays.
	for i, slice := range a.table {
		if i != 0 {
			b.WriteRune('|')
		}
		for i, v := range slice {
			if i != 0 {
				b.WriteRune(' ')
			}
			fmt.Fprint(&b, v)
		}
	}
	b.WriteRune(']')
	return b.String()
}

// lenOfNthSlice returns the length of the nth slice, even if it isn't
// allocated yet.
func (*Arena[T]) lenOfNthSlice(n int) int {
	return pointersMinLen << n
}

// lenOfFirstNSlices returns the length of the first n slices.
func (a *Arena[T]) lenOfFirstNSlices(n int) int {
	// 2^m + 2^(m+1) + ... + 2^n = 2^(n+1) - 2^m
	return max(0, a.lenOfNthSlice(n)-a.lenOfNthSlice(0))
}

// coordinates calculates the coordinates of the given index in table. It
// also performs a bounds check.
func (a *Arena[T]) coordinates(idx int) (int, int) {
	if idx >= a.Len() || idx < 0 {
		panic(fmt.Sprintf("arena: pointer out of range: %#x", idx+1))
	}

	// Given pointersMinLenShift == n, the cumulative starting index of each
	// slice is
	//
	// 0b0 << n, 0b1 << n, 0b11 << n, 0b111 << n
	//
	// Adding 0b1 << n gives 0b1 << n, 0b10 << n, 0b100 << n, ..., whose
	// one-indexed high order bits are 1+n, 2+n, 3+n. Subtracting n+1 yields
	// the slice index.
	slice := bits.UintSize - bits.LeadingZeros(uint(idx)+pointersMinLen)
	slice -= pointersMinLenShift + 1

	// The offset within table[slice] is idx minus the length of all prior
	// slices.
	idx -= a.lenOfFirstNSlices(slice)

	return slice, idx
}
