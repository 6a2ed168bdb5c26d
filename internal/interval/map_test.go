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

package interval_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/fmtcore/internal/interval"
)

func TestInsert(t *testing.T) {
	t.Parallel()

	type r struct {
		start, end int
		value      string
	}

	tests := []struct {
		name   string
		ranges []r    // Ranges to insert.
		want   string // If not "", the value of the overlap for the last range.
	}{
		{name: "empty-map", ranges: []r{{0, 9, "foo"}}},
		{name: "new-max", ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}}},
		{name: "new-min", ranges: []r{{30, 39, "bar"}, {0, 9, "foo"}}},
		{name: "disjoint-between", ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}, {10, 29, "baz"}}},

		{name: "subset", ranges: []r{{0, 9, "foo"}, {1, 2, "baz"}}, want: "foo"},
		{name: "same", ranges: []r{{0, 9, "foo"}, {0, 9, "baz"}}, want: "foo"},
		{name: "touch-end", ranges: []r{{0, 9, "foo"}, {9, 12, "baz"}}, want: "foo"},
		{name: "touch-start", ranges: []r{{0, 10, "foo"}, {-2, 0, "baz"}}, want: "foo"},
		{name: "straddle", ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}, {20, 32, "baz"}}, want: "bar"},
		{name: "superset", ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}, {-2, 30, "baz"}}, want: "foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			type v struct{ v string } // This aids in pretty-printing for assertions.
			m := new(interval.Map[int, v])
			for i, e := range tt.ranges {
				overlap := m.Insert(e.start, e.end, v{e.value})
				if i < len(tt.ranges)-1 || tt.want == "" {
					require.Nil(t, overlap.Value)
				} else {
					assert.Equal(t, &v{tt.want}, overlap.Value)
				}
				t.Logf("%v", m)
			}
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	var m interval.Map[uint64, string]
	m.Insert(10, 19, "a")
	m.Insert(30, 30, "b")
	m.Insert(40, 49, "c")
	assert.Equal(t, 3, m.Len())

	for _, tt := range []struct {
		point uint64
		want  string
	}{
		{0, ""}, {10, "a"}, {15, "a"}, {19, "a"}, {20, ""},
		{30, "b"}, {31, ""}, {45, "c"}, {50, ""},
	} {
		got := m.Get(tt.point)
		if tt.want == "" {
			assert.Nil(t, got.Value, "%d", tt.point)
			assert.False(t, got.Contains(tt.point))
			continue
		}
		require.NotNil(t, got.Value, "%d", tt.point)
		assert.Equal(t, tt.want, *got.Value)
		assert.True(t, got.Contains(tt.point))
	}

	var starts []uint64
	for i := range m.Intervals() {
		starts = append(starts, i.Start)
	}
	assert.Equal(t, []uint64{10, 30, 40}, starts)
	assert.True(t, slices.IsSorted(starts))
	assert.Equal(t, `{[10, 19]: "a", 30: "b", [40, 49]: "c"}`, fmt.Sprintf("%q", &m))
}
