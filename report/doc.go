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

/*
Package report provides the diagnostics side-channel of the formatter core.

Every mutation of a chunk list that actually changes something may be
described by a [Diagnostic]: which chunk (by its original source position),
which operation, the old and new values, the pipeline stage that was running,
and the Go source location of the code that requested the change. These are
pushed into a [Sink]. Diagnostics are purely observational; nothing in the
formatter core ever inspects a Sink to decide what to do next.

[Report] is the in-memory Sink, a helpful builder over a slice of
[Diagnostic]s. Reports can be rendered as text using a [Renderer].

# Diagnostics Style Guide

Diagnostic messages do not begin with a capital letter and do not end in
punctuation. Tags are lowercase identifiers separated by dashes, and name the
operation that produced the diagnostic, e.g. set-kind or swap-lines.

Errors are for conditions after which the chunk list cannot be trusted.
Warnings are for things that are allowed but probably wrong. Remarks record
mutations, and are not shown to users by default.
*/
package report
