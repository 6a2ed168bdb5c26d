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

// Package pipeline runs formatting passes over a chunk list.
//
// A pipeline is explicit state: the caller creates a [chunk.List], fills it
// with a tokenizer, and hands it to [Run] together with the passes to apply.
// Nothing is shared between pipelines, so independent files may be
// formatted concurrently.
package pipeline

import (
	"fmt"

	"github.com/bufbuild/fmtcore/chunk"
	"github.com/bufbuild/fmtcore/report"
)

// Pass is one stage of a pipeline.
type Pass struct {
	// Names the pass in diagnostics. Must not be empty.
	Name string

	// Reads and mutates the list. Run must not retain the list.
	Run func(*chunk.List)
}

// Result describes what one pass did.
type Result struct {
	Name      string
	Mutations int
}

// Run runs each pass over l in order.
//
// While a pass runs, l's stage is set to the pass's name. After each pass,
// l's sink, if any, is flushed. The stage is restored once all passes have
// run.
//
// Panics if a pass has no name or no Run function.
func Run(l *chunk.List, passes ...Pass) []Result {
	outer := l.Stage()
	defer l.SetStage(outer)

	results := make([]Result, 0, len(passes))
	for _, pass := range passes {
		if pass.Name == "" || pass.Run == nil {
			panic(fmt.Sprintf("fmtcore/pipeline: invalid pass %#v", pass))
		}

		before := l.Mutations()
		l.SetStage(pass.Name)
		pass.Run(l)
		if sink := l.Sink(); sink != nil {
			sink.Flush()
		}
		results = append(results, Result{Name: pass.Name, Mutations: l.Mutations() - before})
	}
	return results
}

// warn pushes a warning about c into l's sink, if it has one.
func warn(l *chunk.List, c chunk.Chunk, tag report.Tag, format string, args ...any) {
	sink := l.Sink()
	if sink == nil {
		return
	}

	options := []report.DiagnosticOption{tag, report.Stage(l.Stage())}
	if !c.Nil() {
		options = append(options, c.Location())
	}
	sink.Push(report.New(report.Warning, format, args...).With(options...))
}
