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

import (
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"
)

// defaultTextWidth is the widest chunk excerpt rendered by default, in
// terminal columns.
const defaultTextWidth = 24

// Renderer configures a diagnostic rendering operation.
type Renderer struct {
	// If set, uses a compact one-line-per-diagnostic form.
	Compact bool

	// If set, renders ANSI colors.
	Colorize bool

	// If set, remark-level diagnostics are rendered. Otherwise they are
	// skipped.
	ShowRemarks bool

	// If set, the Go caller of each mutation is rendered.
	ShowCallers bool

	// If set, debugging information attached with [Debug] is rendered.
	ShowDebug bool

	// The widest excerpt of chunk text to show, in terminal columns. Zero
	// selects a default.
	TextWidth int
}

// Render renders a diagnostic report.
//
// In addition to returning the rendering result, returns whether the report
// contains any errors.
func (r Renderer) Render(report *Report, out io.Writer) (errorCount, warningCount int, err error) {
	for i := range report.Diagnostics {
		d := &report.Diagnostics[i]
		switch d.level {
		case Fatal, Error:
			errorCount++
		case Warning:
			warningCount++
		case Remark:
			if !r.ShowRemarks {
				continue
			}
		}

		if _, err := io.WriteString(out, r.Diagnostic(d)); err != nil {
			return errorCount, warningCount, err
		}
	}
	return errorCount, warningCount, nil
}

// RenderString is a helper for calling [Renderer.Render] with a [strings.Builder].
func (r Renderer) RenderString(report *Report) (text string, errorCount, warningCount int) {
	var buf strings.Builder
	e, w, _ := r.Render(report, &buf)
	return buf.String(), e, w
}

// Diagnostic renders a single diagnostic, including its trailing newline.
func (r Renderer) Diagnostic(d *Diagnostic) string {
	var out strings.Builder
	color, reset := r.colors(d.level)

	fmt.Fprintf(&out, "%s%s", color, d.level)
	if d.tag != "" {
		fmt.Fprintf(&out, "[%s]", d.tag)
	}
	fmt.Fprintf(&out, ":%s %s", reset, d.message)

	if r.Compact {
		if !d.at.IsZero() {
			fmt.Fprintf(&out, " at %s", d.at)
		}
		if d.stage != "" {
			fmt.Fprintf(&out, " (%s)", d.stage)
		}
		out.WriteByte('\n')
		return out.String()
	}
	out.WriteByte('\n')

	if !d.at.IsZero() {
		fmt.Fprintf(&out, "  --> %s", d.at)
		if d.at.Text != "" {
			fmt.Fprintf(&out, " `%s`", r.excerpt(d.at.Text))
		}
		out.WriteByte('\n')
	}
	if d.stage != "" {
		fmt.Fprintf(&out, "   = stage: %s\n", d.stage)
	}
	for _, n := range d.notes {
		fmt.Fprintf(&out, "   = note: %s\n", n)
	}
	if r.ShowCallers && !d.caller.IsZero() {
		fmt.Fprintf(&out, "   = caller: %s\n", d.caller)
	}
	if r.ShowDebug {
		for _, dbg := range d.debug {
			fmt.Fprintf(&out, "   = debug: %s\n", dbg)
		}
	}
	return out.String()
}

func (r Renderer) colors(level Level) (color, reset string) {
	if !r.Colorize {
		return "", ""
	}
	switch level {
	case Fatal, Error:
		return "\033[1;91m", "\033[0m"
	case Warning:
		return "\033[1;93m", "\033[0m"
	default:
		return "\033[1;96m", "\033[0m"
	}
}

// excerpt shortens text to at most r.TextWidth terminal columns, breaking on
// grapheme boundaries and escaping newlines.
func (r Renderer) excerpt(text string) string {
	width := r.TextWidth
	if width <= 0 {
		width = defaultTextWidth
	}
	text = strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`).Replace(text)
	if uniseg.StringWidth(text) <= width {
		return text
	}

	var out strings.Builder
	used := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if used+w > width-1 {
			break
		}
		out.WriteString(cluster)
		used += w
	}
	out.WriteString("…")
	return out.String()
}
