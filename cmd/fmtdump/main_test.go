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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/bufbuild/fmtcore/chunk"
	"github.com/bufbuild/fmtcore/report"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, text := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	}
	return dir
}

func TestRunSwap(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"a.c": "int a;\nint b;\n"})
	var out bytes.Buffer
	err := run(context.Background(), zap.NewNop(), options{swap: []int{1, 2}, jobs: 1},
		[]string{filepath.Join(dir, "*.c")}, &out)
	require.NoError(t, err)
	assert.Equal(t, `2:1 Type "int"
2:5 Word "b"
2:6 Semicolon ";" flags=Punctuator
2:7 Newline "\n" nl=1
1:1 Type "int"
1:5 Word "a"
1:6 Semicolon ";" flags=Punctuator
1:7 Newline "\n" nl=1
`, out.String())
}

func TestRunManyFiles(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"b.c":       "y\n",
		"a.c":       "x\n",
		"sub/c.h":   "z\n",
		"sub/d.txt": "ignored\n",
	})
	var out bytes.Buffer
	err := run(context.Background(), zap.NewNop(), options{jobs: 3, check: true},
		[]string{filepath.Join(dir, "*.c"), filepath.Join(dir, "**", "*.h"), filepath.Join(dir, "a.c")}, &out)
	require.NoError(t, err)

	want := "== " + filepath.Join(dir, "a.c") + " ==\n" +
		"1:1 Word \"x\"\n1:2 Newline \"\\n\" nl=1\n" +
		"== " + filepath.Join(dir, "b.c") + " ==\n" +
		"1:1 Word \"y\"\n1:2 Newline \"\\n\" nl=1\n" +
		"== " + filepath.Join(dir, "sub", "c.h") + " ==\n" +
		"1:1 Word \"z\"\n1:2 Newline \"\\n\" nl=1\n"
	assert.Equal(t, want, out.String())
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"a.c": "x\n"})
	tests := []struct {
		name     string
		opts     options
		patterns []string
		err      string
	}{
		{name: "odd-swap", opts: options{swap: []int{1}}, patterns: []string{filepath.Join(dir, "a.c")}, err: "--swap takes pairs"},
		{name: "no-match", patterns: []string{filepath.Join(dir, "*.go")}, err: "no files match"},
		{name: "bad-pattern", patterns: []string{filepath.Join(dir, "[")}, err: "invalid pattern"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			err := run(context.Background(), zap.NewNop(), test.opts, test.patterns, new(bytes.Buffer))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.err)
		})
	}
}

func TestCommand(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"a.c": "a;\nb;\n"})
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--swap", "1,2", "--check", filepath.Join(dir, "a.c")})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "2:1 Word \"b\"\n")

	cmd = newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(nil)
	assert.Error(t, cmd.Execute())
}

func TestZapSink(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	sink := newZapSink(zap.New(core))

	l := chunk.NewList(chunk.Options{Sink: sink})
	l.SetStage("indent")
	c := l.Append(chunk.Data{Kind: chunk.Word, Text: "x", OrigLine: 4, OrigCol: 2})
	c.SetFlags(chunk.StmtStart)
	sink.Push(report.New(report.Warning, "careful").With(report.Tag("test"), report.Note("a note"), report.Debug("x=%d", 1)))
	sink.Flush()

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "0 -> StmtStart", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "set-flags", fields["tag"])
	assert.Equal(t, "indent", fields["stage"])
	assert.Equal(t, "4:2", fields["at"])
	assert.Contains(t, fields["caller"], "main_test.go:")

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, []any{"a note"}, entries[1].ContextMap()["notes"])
	assert.Equal(t, []any{"x=1"}, entries[1].ContextMap()["debug"])
	assert.NotContains(t, fields, "debug")

	// Remarks are dropped before formatting when debug logging is off.
	core, logs = observer.New(zapcore.InfoLevel)
	sink = newZapSink(zap.New(core))
	sink.Push(report.New(report.Remark, "quiet"))
	sink.Push(report.New(report.Fatal, "loud"))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
}
