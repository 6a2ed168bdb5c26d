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

import "fmt"

// Scope selects which chunks stepping may visit.
type Scope int8

const (
	// All visits every chunk.
	All Scope = iota

	// Preproc treats each preprocessor directive as a separate stream. From
	// a chunk inside a directive, stepping stays inside that directive and
	// yields Nil at its edge. From a chunk outside any directive, stepping
	// skips over directives.
	Preproc
)

// String implements [fmt.Stringer].
func (s Scope) String() string {
	switch s {
	case All:
		return "All"
	case Preproc:
		return "Preproc"
	default:
		return fmt.Sprintf("chunk.Scope(%d)", int(s))
	}
}

// Direction is a direction of travel along a [List].
type Direction int8

const (
	Forward Direction = iota
	Backward
)

// String implements [fmt.Stringer].
func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	default:
		return fmt.Sprintf("chunk.Direction(%d)", int(d))
	}
}

// Step returns the chunk one step away from c in the given direction,
// restricted to scope. Returns Nil at the end of the list, or at the edge of
// c's directive when scope is [Preproc].
func (c Chunk) Step(scope Scope, dir Direction) Chunk {
	if c.Nil() {
		return Nil
	}

	next := c.physical(dir)
	if scope == All || next.Nil() {
		return next
	}

	if c.IsPreproc() {
		if !next.IsPreproc() {
			return Nil
		}
		return next
	}

	for next.IsPreproc() {
		next = next.physical(dir)
	}
	return next
}

// Next returns the next chunk in the given scope.
func (c Chunk) Next(scope Scope) Chunk {
	return c.Step(scope, Forward)
}

// Prev returns the previous chunk in the given scope.
func (c Chunk) Prev(scope Scope) Chunk {
	return c.Step(scope, Backward)
}

func (c Chunk) physical(dir Direction) Chunk {
	if dir == Backward {
		return c.prev()
	}
	return c.next()
}
