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

// Package chunk is the token stream of the formatter: a flat, ordered
// sequence of [Chunk]s, one per lexical token, over which every formatting
// pass reads, searches, and mutates.
//
// # Lists and chunks
//
// A [List] owns its chunks. Chunks live in an arena and are linked by
// compressed indices, so a [Chunk] is a small value handle: a List plus an
// [ID]. The zero Chunk, [Nil], is used to denote the absence of a chunk, and
// every navigation function returns Nil when there is nothing to return.
//
// Chunks remember where they came from: [Chunk.OrigLine] and
// [Chunk.OrigCol] are recorded by the tokenizer and survive every mutation
// except [List.MoveAfter]. [Compare] orders chunks by this provenance.
//
// # Scopes
//
// Preprocessor directives are marked with the [InPreproc] flag. Stepping
// with the [Preproc] scope treats each directive as a separate stream: from
// inside a directive, stepping never leaves it; from outside, stepping skips
// directives entirely. The [All] scope sees every chunk.
//
// # Mutation
//
// Structural mutators live on [List]; metadata setters live on [Chunk]. Both
// report what they changed to the List's [report.Sink], if one is installed.
// Setters that would not change anything do nothing at all.
//
// Passing a chunk of one List to another List's methods, using a chunk after
// [List.Delete], or passing Nil where a chunk is required are programming
// errors, and panic.
package chunk
