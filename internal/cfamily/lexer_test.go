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

package cfamily_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/fmtcore/chunk"
	"github.com/bufbuild/fmtcore/internal/cfamily"
	"github.com/bufbuild/fmtcore/report"
)

func strings(l *chunk.List) []string {
	var out []string
	for c := range l.All() {
		out = append(out, c.String())
	}
	return out
}

func collect(l *chunk.List) []chunk.Chunk {
	var out []chunk.Chunk
	for c := range l.All() {
		out = append(out, c)
	}
	return out
}

func TestLexBasic(t *testing.T) {
	t.Parallel()

	l := cfamily.LexString("int x = 1;\n\n\nreturn x;\n")
	assert.Equal(t, []string{
		`Type "int" @1:1`,
		`Word "x" @1:5`,
		`Assign "=" @1:7`,
		`Number "1" @1:9`,
		`Semicolon ";" @1:10`,
		`Newline "\n" @1:11`,
		`Return "return" @4:1`,
		`Word "x" @4:8`,
		`Semicolon ";" @4:9`,
		`Newline "\n" @4:10`,
	}, strings(l))

	chunks := collect(l)
	assert.Equal(t, 3, chunks[5].NLCount())
	assert.Equal(t, 1, chunks[9].NLCount())
	assert.Equal(t, 4, chunks[0].OrigColEnd())
	assert.Equal(t, 12, chunks[5].OrigColEnd())
	assert.Equal(t, 1, chunks[0].Column())
	assert.True(t, chunks[6].Has(chunk.Reserved))
	assert.True(t, chunks[4].Has(chunk.Punctuator))
	assert.False(t, chunks[1].Has(chunk.Punctuator))
}

func TestLexDirective(t *testing.T) {
	t.Parallel()

	l := cfamily.LexString("#define FOO(a) \\\n  (a)\nint y;\n")
	assert.Equal(t, []string{
		`Hash "#" @1:1`,
		`PPDefine "define" @1:2`,
		`MacroFunc "FOO" @1:9`,
		`ParenOpen "(" @1:12`,
		`Word "a" @1:13`,
		`ParenClose ")" @1:14`,
		`NLCont "\\\n" @1:16`,
		`ParenOpen "(" @2:3`,
		`Word "a" @2:4`,
		`ParenClose ")" @2:5`,
		`Newline "\n" @2:6`,
		`Type "int" @3:1`,
		`Word "y" @3:5`,
		`Semicolon ";" @3:6`,
		`Newline "\n" @3:7`,
	}, strings(l))

	chunks := collect(l)
	for i, c := range chunks {
		assert.Equal(t, i < 10, c.IsPreproc(), "%v", c)
	}
	assert.Equal(t, 1, chunks[4].Level())
	assert.Equal(t, 0, chunks[5].Level())
	assert.Equal(t, 0, chunks[11].Level())

	l = cfamily.LexString("#define N 4\n")
	assert.Equal(t, chunk.Macro, collect(l)[2].Kind())
}

func TestLexConditionalLevels(t *testing.T) {
	t.Parallel()

	l := cfamily.LexString("#if X\na;\n#else\nb;\n#endif\nc;\n")
	levels := make(map[string]int)
	for c := range l.All() {
		if c.Is(chunk.Word) {
			levels[c.Text()] = c.PPLevel()
		}
	}
	assert.Equal(t, map[string]int{"X": 0, "a": 1, "b": 1, "c": 0}, levels)

	kinds := make([]chunk.Kind, 0)
	for c := range l.All() {
		if c.Prev(chunk.All).Is(chunk.Hash) {
			kinds = append(kinds, c.Kind())
		}
	}
	assert.Equal(t, []chunk.Kind{chunk.PPIf, chunk.PPElse, chunk.PPEndif}, kinds)
}

func TestLexNesting(t *testing.T) {
	t.Parallel()

	l := cfamily.LexString("f(a[1]) { x; }")
	type level struct {
		Text          string
		Level, Braces int
	}
	var got []level
	for c := range l.All() {
		got = append(got, level{c.Text(), c.Level(), c.BraceLevel()})
	}
	assert.Equal(t, []level{
		{"f", 0, 0},
		{"(", 0, 0},
		{"a", 1, 0},
		{"[", 1, 0},
		{"1", 2, 0},
		{"]", 1, 0},
		{")", 0, 0},
		{"{", 0, 0},
		{"x", 1, 1},
		{";", 1, 1},
		{"}", 0, 0},
	}, got)
}

func TestLexComments(t *testing.T) {
	t.Parallel()

	l := cfamily.LexString("a // c\n/* b\n c */ d")
	assert.Equal(t, []string{
		`Word "a" @1:1`,
		`CommentCPP "// c" @1:3`,
		`Newline "\n" @1:7`,
		`CommentMulti "/* b\n c */" @2:1`,
		`Word "d" @3:7`,
	}, strings(l))
	assert.Equal(t, 6, collect(l)[3].OrigColEnd())
}

func TestLexPunctuation(t *testing.T) {
	t.Parallel()

	l := cfamily.LexString("p->q += r[] # s")
	var kinds []chunk.Kind
	for c := range l.All() {
		kinds = append(kinds, c.Kind())
	}
	assert.Equal(t, []chunk.Kind{
		chunk.Word, chunk.Arrow, chunk.Word, chunk.Assign,
		chunk.Word, chunk.TSquare, chunk.Unknown, chunk.Word,
	}, kinds)

	l = cfamily.LexString("if (x) { return 'c'; }")
	chunks := collect(l)
	assert.Equal(t, chunk.Keyword, chunks[0].Kind())
	assert.True(t, chunks[0].Has(chunk.Reserved))
	assert.Equal(t, chunk.Char, chunks[6].Kind())
}

func TestLexDiagnostics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, text string
		tag        report.Tag
	}{
		{name: "comment", text: "a /* b", tag: "unterminated-comment"},
		{name: "string", text: "\"abc\nx", tag: "unterminated-literal"},
		{name: "unclosed", text: "f(a", tag: "unclosed-delimiter"},
		{name: "unmatched", text: "a)", tag: "unmatched-delimiter"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			errs := new(report.Report)
			cfamily.Lex(test.text, chunk.NewList(chunk.Options{}), errs)
			require.Len(t, errs.Diagnostics, 1)
			d := errs.Diagnostics[0]
			assert.Equal(t, test.tag, d.Tag())
			assert.Equal(t, report.Warning, d.Level())
		})
	}
}
