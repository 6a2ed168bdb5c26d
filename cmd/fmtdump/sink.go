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
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bufbuild/fmtcore/report"
)

// zapSink logs diagnostics as they are pushed. Remarks, which record every
// mutation, are logged at debug level.
type zapSink struct {
	logger *zap.Logger
}

var _ report.Sink = zapSink{}

func newZapSink(logger *zap.Logger) zapSink {
	return zapSink{logger: logger}
}

// Push implements [report.Sink].
func (s zapSink) Push(d *report.Diagnostic) {
	level := zapcore.DebugLevel
	switch d.Level() {
	case report.Fatal, report.Error:
		level = zapcore.ErrorLevel
	case report.Warning:
		level = zapcore.WarnLevel
	}
	if !s.logger.Core().Enabled(level) {
		return
	}

	fields := []zap.Field{zap.String("tag", string(d.Tag()))}
	if stage := d.Stage(); stage != "" {
		fields = append(fields, zap.String("stage", stage))
	}
	if at := d.At(); !at.IsZero() {
		fields = append(fields, zap.Stringer("at", at))
	}
	if caller := d.Caller(); !caller.IsZero() {
		fields = append(fields, zap.Stringer("caller", caller))
	}
	if notes := d.Notes(); len(notes) > 0 {
		fields = append(fields, zap.Strings("notes", notes))
	}
	if debug := d.Debug(); len(debug) > 0 {
		fields = append(fields, zap.Strings("debug", debug))
	}
	s.logger.Log(level, d.Message(), fields...)
}

// Flush implements [report.Sink].
func (s zapSink) Flush() {
	_ = s.logger.Sync()
}
