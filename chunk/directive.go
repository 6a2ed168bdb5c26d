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

// NextInDirective returns the next chunk after c that satisfies pred, without
// leaving the directive c is in.
//
// If c is not inside a directive, this is the same as
// Search(c, pred, All, Forward, true).
//
// Inside a directive, line continuations are skipped without being tested.
// If the directive ends before a match is found, the first chunk after it
// (normally the newline that ends the directive) is returned, so that callers
// learn where the directive ended. Nil is returned only when the list itself
// runs out.
func (c Chunk) NextInDirective(pred Predicate) Chunk {
	if !c.IsPreproc() {
		return Search(c, pred, All, Forward, true)
	}

	for c = c.next(); !c.Nil(); c = c.next() {
		switch {
		case !c.IsPreproc():
			return c
		case c.Is(NLCont):
			continue
		case pred(c):
			return c
		}
	}
	return Nil
}

// DirectiveStart returns the first chunk of the directive c is in, usually
// the [Hash]. Returns Nil if c is not in a directive.
func (c Chunk) DirectiveStart() Chunk {
	if !c.IsPreproc() {
		return Nil
	}
	for p := c.prev(); p.IsPreproc(); p = p.prev() {
		c = p
	}
	return c
}

// DirectiveEnd returns the chunk just past the directive c is in, usually the
// newline that ends it. Returns Nil if c is not in a directive, or if the
// directive runs to the end of the list.
func (c Chunk) DirectiveEnd() Chunk {
	if !c.IsPreproc() {
		return Nil
	}
	return c.NextInDirective(func(Chunk) bool { return false })
}
