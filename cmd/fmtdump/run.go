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
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/fmtcore/chunk"
	"github.com/bufbuild/fmtcore/internal/cfamily"
	"github.com/bufbuild/fmtcore/pipeline"
	"github.com/bufbuild/fmtcore/report"
)

// run dumps every file matching patterns to out, in the order the patterns
// list them.
func run(ctx context.Context, logger *zap.Logger, opts options, patterns []string, out io.Writer) error {
	if len(opts.swap)%2 != 0 {
		return fmt.Errorf("--swap takes pairs of lines, got %v", opts.swap)
	}

	files, err := expand(patterns)
	if err != nil {
		return err
	}

	var passes []pipeline.Pass
	for i := 0; i < len(opts.swap); i += 2 {
		passes = append(passes, pipeline.SwapLines(opts.swap[i], opts.swap[i+1]))
	}
	if opts.check {
		passes = append(passes, pipeline.CheckOrder())
	}

	dumps := make([][]byte, len(files))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(max(1, opts.jobs))
	for i, file := range files {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dump, err := dumpFile(logger, file, passes)
			if err != nil {
				return err
			}
			dumps[i] = dump
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	for i, dump := range dumps {
		if len(files) > 1 {
			if _, err := fmt.Fprintf(out, "== %s ==\n", files[i]); err != nil {
				return err
			}
		}
		if _, err := out.Write(dump); err != nil {
			return err
		}
	}
	return nil
}

// expand resolves patterns to a list of files without duplicates.
func expand(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, fmt.Errorf("invalid pattern %q", pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
		slices.Sort(matches)
		for _, match := range matches {
			if !slices.Contains(files, match) {
				files = append(files, match)
			}
		}
	}
	return files, nil
}

// dumpFile tokenizes one file, runs passes over it, and returns its dump.
func dumpFile(logger *zap.Logger, path string, passes []pipeline.Pass) ([]byte, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	sink := newZapSink(logger.With(zap.String("file", path)))
	lexed := new(report.Report)
	list := chunk.NewList(chunk.Options{})
	list.SetStage("lex")
	cfamily.Lex(string(text), list, lexed)
	for i := range lexed.Diagnostics {
		sink.Push(&lexed.Diagnostics[i])
	}

	list.SetSink(sink)
	for _, result := range pipeline.Run(list, passes...) {
		logger.Debug("pass finished",
			zap.String("file", path),
			zap.String("pass", result.Name),
			zap.Int("mutations", result.Mutations),
		)
	}

	var buf bytes.Buffer
	if err := chunk.Dump(&buf, list); err != nil {
		return nil, fmt.Errorf("dumping %q: %w", path, err)
	}
	return buf.Bytes(), nil
}
