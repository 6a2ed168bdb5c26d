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
	"path/filepath"
	"runtime"
)

// Level represents the severity of a diagnostic message.
type Level int8

const (
	// Fatal indicates that the formatter is about to abort.
	Fatal Level = 1 + iota
	// Error indicates that the chunk list can no longer be trusted.
	Error
	// Warning indicates something that probably should not be ignored.
	Warning
	// Remark is the diagnostics version of "info"; mutation records use it.
	Remark
)

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case Fatal:
		return "fatal"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	default:
		return fmt.Sprintf("report.Level(%d)", int(l))
	}
}

// Tag is a diagnostic tag: a machine-readable identification for a diagnostic.
//
// Tags should be lowercase identifiers separated by dashes, e.g. set-kind.
// If a package generates diagnostics with tags, it should expose those tags as
// constants.
type Tag string

// Apply implements [DiagnosticOption].
func (t Tag) Apply(d *Diagnostic) {
	if d.tag != "" {
		panic("fmtcore/report: set diagnostic tag more than once")
	}

	d.tag = t
}

// Stage is a DiagnosticOption naming the pipeline stage that was running when
// the diagnostic was produced.
type Stage string

// Apply implements [DiagnosticOption].
func (s Stage) Apply(d *Diagnostic) {
	d.stage = string(s)
}

// Diagnostic is a single record produced by the formatter core.
//
// To construct a diagnostic, create one using a function like [Report.Remarkf]
// or [New]. Then, call [Diagnostic.With] to apply options to it.
type Diagnostic struct {
	tag     Tag
	message string
	level   Level
	stage   string

	at     Location
	caller Caller

	notes, debug []string
}

// New returns a new diagnostic with the given level and message.
func New(level Level, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		level:   level,
		message: fmt.Sprintf(format, args...),
	}
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
//
// Nil values passed to [Diagnostic.With] are ignored.
type DiagnosticOption interface {
	Apply(*Diagnostic)
}

// Level returns this diagnostic's level.
func (d *Diagnostic) Level() Level {
	return d.level
}

// Tag returns this diagnostic's tag, if it has one.
func (d *Diagnostic) Tag() Tag {
	return d.tag
}

// Is checks whether this diagnostic has a particular tag.
func (d *Diagnostic) Is(tag Tag) bool {
	return d.tag == tag
}

// Message returns this diagnostic's main message.
func (d *Diagnostic) Message() string {
	return d.message
}

// Stage returns the pipeline stage this diagnostic was produced in, if known.
func (d *Diagnostic) Stage() string {
	return d.stage
}

// At returns the source location this diagnostic refers to.
func (d *Diagnostic) At() Location {
	return d.at
}

// Caller returns the Go source location that requested the operation this
// diagnostic describes.
func (d *Diagnostic) Caller() Caller {
	return d.caller
}

// Notes returns the notes attached to this diagnostic.
func (d *Diagnostic) Notes() []string {
	return d.notes
}

// Debug returns the debugging information attached to this diagnostic.
func (d *Diagnostic) Debug() []string {
	return d.debug
}

// With applies the given options to this diagnostic.
//
// Nil values are ignored.
func (d *Diagnostic) With(options ...DiagnosticOption) *Diagnostic {
	for _, option := range options {
		if option != nil {
			option.Apply(d)
		}
	}
	return d
}

// Message returns a DiagnosticOption that sets the main diagnostic message.
func Message(format string, args ...any) DiagnosticOption {
	return message(fmt.Sprintf(format, args...))
}

// Note returns a DiagnosticOption that provides context about the
// diagnostic.
func Note(format string, args ...any) DiagnosticOption {
	return note(fmt.Sprintf(format, args...))
}

// Debug returns a DiagnosticOption that appends debugging information to a
// diagnostic that is not intended to be shown to normal users.
func Debug(format string, args ...any) DiagnosticOption {
	return debug(fmt.Sprintf(format, args...))
}

// Location is the original source position of a chunk, as recorded when the
// file was tokenized.
//
// Location is a DiagnosticOption.
type Location struct {
	Line, Column int
	Text         string
}

// IsZero returns whether this is the zero location.
func (l Location) IsZero() bool {
	return l == Location{}
}

// String implements [fmt.Stringer].
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Apply implements [DiagnosticOption].
func (l Location) Apply(d *Diagnostic) {
	d.at = l
}

// Caller is the Go source location of a function call.
//
// Caller is a DiagnosticOption.
type Caller struct {
	File     string
	Line     int
	Function string
}

// CallerAt captures the location of a caller on the current goroutine's stack.
// skip is as for [runtime.Caller]: zero refers to the caller of CallerAt.
func CallerAt(skip int) Caller {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Caller{}
	}

	var name string
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
	}
	return Caller{File: file, Line: line, Function: name}
}

// IsZero returns whether this is the zero caller.
func (c Caller) IsZero() bool {
	return c == Caller{}
}

// String implements [fmt.Stringer].
func (c Caller) String() string {
	if c.IsZero() {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(c.File), c.Line)
}

// Apply implements [DiagnosticOption].
func (c Caller) Apply(d *Diagnostic) {
	d.caller = c
}

type message string
type note string
type debug string

func (m message) Apply(d *Diagnostic) {
	if d.message != "" {
		panic("fmtcore/report: set diagnostic message more than once")
	}

	d.message = string(m)
}

func (n note) Apply(d *Diagnostic)  { d.notes = append(d.notes, string(n)) }
func (n debug) Apply(d *Diagnostic) { d.debug = append(d.debug, string(n)) }
