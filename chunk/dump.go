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
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Dump writes a listing of l to w, one chunk per line, in list order.
//
// Each line starts with the chunk's original position, kind and quoted text.
// Other fields follow as key=value pairs, only when they differ from their
// defaults: the output column when it no longer matches the original column,
// nesting levels above zero, the newline count of newlines, flags, the parent
// kind and the parent.
func Dump(w io.Writer, l *List) error {
	buf := bufio.NewWriter(w)
	for c := range l.All() {
		n := c.node()
		fmt.Fprintf(buf, "%d:%d %v %s", n.OrigLine, n.OrigCol, n.Kind, strconv.Quote(n.Text))
		if n.Column != n.OrigCol {
			fmt.Fprintf(buf, " col=%d", n.Column)
		}
		if n.Level > 0 {
			fmt.Fprintf(buf, " level=%d", n.Level)
		}
		if n.BraceLevel > 0 {
			fmt.Fprintf(buf, " brace=%d", n.BraceLevel)
		}
		if n.PPLevel > 0 {
			fmt.Fprintf(buf, " pp=%d", n.PPLevel)
		}
		if n.Kind.IsNewline() {
			fmt.Fprintf(buf, " nl=%d", n.NLCount)
		}
		if n.Flags != 0 {
			fmt.Fprintf(buf, " flags=%v", n.Flags)
		}
		if n.ParentKind != None {
			fmt.Fprintf(buf, " parent-kind=%v", n.ParentKind)
		}
		if p := c.Parent(); !p.Nil() {
			fmt.Fprintf(buf, " parent=%s", describe(p))
		}
		buf.WriteByte('\n')
	}
	return buf.Flush()
}
