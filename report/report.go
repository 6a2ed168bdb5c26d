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

package report

import "fmt"

// Sink receives diagnostics.
//
// Implementations must not call back into the chunk list that produced a
// diagnostic.
type Sink interface {
	// Push records a diagnostic. The Sink may retain d.
	Push(d *Diagnostic)

	// Flush makes sure everything pushed so far has been written out. It is
	// called before the formatter aborts.
	Flush()
}

// Discard is a Sink that drops everything pushed into it.
var Discard Sink = discard{}

type discard struct{}

func (discard) Push(*Diagnostic) {}
func (discard) Flush()           {}

// Report is a collection of diagnostics.
//
// A zero Report is empty and ready to use. *Report implements [Sink].
type Report struct {
	Diagnostics []Diagnostic

	// If set, diagnostics below this level (i.e., with a numerically greater
	// level) are dropped by Push. Zero keeps everything.
	MinLevel Level
}

// Push implements [Sink].
func (r *Report) Push(d *Diagnostic) {
	if r.MinLevel != 0 && d.level > r.MinLevel {
		return
	}
	r.Diagnostics = append(r.Diagnostics, *d)
}

// Flush implements [Sink].
func (*Report) Flush() {}

// Errorf pushes a new error diagnostic with the given message.
func (r *Report) Errorf(format string, args ...any) *Diagnostic {
	return r.push(Error, format, args...)
}

// Warnf pushes a new warning diagnostic with the given message.
func (r *Report) Warnf(format string, args ...any) *Diagnostic {
	return r.push(Warning, format, args...)
}

// Remarkf pushes a new remark diagnostic with the given message.
func (r *Report) Remarkf(format string, args ...any) *Diagnostic {
	return r.push(Remark, format, args...)
}

// Tagged returns the diagnostics in this report with the given tag.
func (r *Report) Tagged(tag Tag) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.tag == tag {
			out = append(out, d)
		}
	}
	return out
}

// Count returns the number of diagnostics at each level, indexed by [Level].
func (r *Report) Count() (counts [Remark + 1]int) {
	for _, d := range r.Diagnostics {
		if d.level >= Fatal && d.level <= Remark {
			counts[d.level]++
		}
	}
	return counts
}

// Reset discards all diagnostics in this report.
func (r *Report) Reset() {
	r.Diagnostics = r.Diagnostics[:0]
}

// String implements [fmt.Stringer].
func (r *Report) String() string {
	text, _, _ := Renderer{ShowRemarks: true}.RenderString(r)
	return text
}

func (r *Report) push(level Level, format string, args ...any) *Diagnostic {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		level:   level,
		message: fmt.Sprintf(format, args...),
	})
	return &r.Diagnostics[len(r.Diagnostics)-1]
}
