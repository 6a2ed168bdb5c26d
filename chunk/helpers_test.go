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
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bufbuild/fmtcore/chunk"
	"github.com/bufbuild/fmtcore/internal/cfamily"
)

// find returns the nth (zero-indexed) chunk of l with the given text.
func find(t *testing.T, l *chunk.List, text string, nth int) chunk.Chunk {
	t.Helper()
	for c := range l.All() {
		if c.Text() == text {
			if nth == 0 {
				return c
			}
			nth--
		}
	}
	require.FailNow(t, fmt.Sprintf("no chunk %q in list", text))
	return chunk.Nil
}

// render prints the texts of l separated by spaces, with each newline shown
// as one | per line break it stands for.
func render(l *chunk.List) string {
	var out []string
	for c := range l.All() {
		switch {
		case c.Is(chunk.NLCont):
			out = append(out, `\`)
		case c.IsNewline():
			out = append(out, strings.Repeat("|", c.NLCount()))
		default:
			out = append(out, c.Text())
		}
	}
	return strings.Join(out, " ")
}

func lex(text string) *chunk.List {
	return cfamily.LexString(text)
}
