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

// The setters in this file only write when the value actually changes. A
// write that changes nothing is not counted by [List.Mutations] and is not
// reported.

// SetFlags sets the given flags on c.
func (c Chunk) SetFlags(flags Flags) {
	c.UpdateFlags(0, flags)
}

// ClearFlags clears the given flags on c.
func (c Chunk) ClearFlags(flags Flags) {
	c.UpdateFlags(flags, 0)
}

// UpdateFlags clears and then sets flags on c. Does nothing for Nil.
func (c Chunk) UpdateFlags(clear, set Flags) {
	n := c.node()
	if n == nil {
		return
	}

	old := n.Flags
	flags := old.Without(clear).With(set)
	if flags == old {
		return
	}
	n.Flags = flags
	c.list.mutated(c, TagSetFlags, "%v -> %v", old, flags)
}

// SetKind sets c's kind. Does nothing for Nil.
func (c Chunk) SetKind(kind Kind) {
	n := c.node()
	if n == nil || n.Kind == kind {
		return
	}

	old := n.Kind
	n.Kind = kind
	c.list.mutated(c, TagSetKind, "%v -> %v", old, kind)
}

// SetParentKind sets c's parent kind. Does nothing for Nil.
func (c Chunk) SetParentKind(kind Kind) {
	n := c.node()
	if n == nil || n.ParentKind == kind {
		return
	}

	old := n.ParentKind
	n.ParentKind = kind
	c.list.mutated(c, TagSetParentKind, "%v -> %v", old, kind)
}

// SetParent records parent as the chunk enclosing c. SetParent(Nil) is
// ignored.
//
// A chunk cannot be its own parent; SetParent(c) is ignored. The link is
// weak: it does not keep parent alive, and [Chunk.Parent] returns Nil once
// parent is deleted.
//
// Panics if parent belongs to another list.
func (c Chunk) SetParent(parent Chunk) {
	n := c.node()
	if n == nil || parent.Nil() || parent.id == c.id && parent.list == c.list {
		return
	}
	c.list.owned(parent, "SetParent")

	old := c.Parent()
	if old == parent {
		return
	}
	n.parent = parent.id
	c.list.mutated(c, TagSetParent, "%s -> %s", describe(old), describe(parent))
}

