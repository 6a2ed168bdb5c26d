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
	"runtime"
	"strings"

	"github.com/bufbuild/fmtcore/report"
)

// Tags of the diagnostics a [List] pushes into its sink.
const (
	TagSetFlags      report.Tag = "set-flags"
	TagSetKind       report.Tag = "set-kind"
	TagSetParentKind report.Tag = "set-parent-kind"
	TagSetParent     report.Tag = "set-parent"
	TagAdd           report.Tag = "add"
	TagDelete        report.Tag = "delete"
	TagMove          report.Tag = "move"
	TagSwap          report.Tag = "swap"
	TagSwapLines     report.Tag = "swap-lines"
)

// pkgPrefix is the symbol prefix of functions in this package.
var pkgPrefix = func() string {
	pc, _, _, _ := runtime.Caller(0)
	name := runtime.FuncForPC(pc).Name()
	slash := strings.LastIndexByte(name, '/')
	return name[:slash+strings.IndexByte(name[slash:], '.')+1]
}()

// mutated counts a mutation of c and, if the list has a sink, reports it.
func (l *List) mutated(c Chunk, tag report.Tag, format string, args ...any) {
	l.mutations++
	if l.sink == nil {
		return
	}

	l.sink.Push(report.New(report.Remark, format, args...).With(
		tag,
		report.Stage(l.stage),
		c.Location(),
		callerOutside(),
	))
}

// callerOutside finds the nearest caller on the stack that is not part of
// this package: the formatting pass that asked for a mutation.
func callerOutside() report.Caller {
	var pcs [16]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, pkgPrefix) {
			return report.Caller{File: frame.File, Line: frame.Line, Function: frame.Function}
		}
		if !more {
			return report.Caller{}
		}
	}
}

// describe renders a chunk for a diagnostic message.
func describe(c Chunk) string {
	if c.Nil() {
		return "none"
	}
	return fmt.Sprintf("%v@%d:%d", c.Kind(), c.OrigLine(), c.OrigCol())
}
