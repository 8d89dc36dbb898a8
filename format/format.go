// Copyright 2026 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package format provides a function to write an HTML tree
// with one block-level element per line
// that is equivalent to the tree's compact rendering.
package format

import (
	"io"
	"strings"

	"golang.org/x/net/html/atom"
	"zombiezen.com/go/sitegen"
)

// Indent writes the HTML of root to w,
// placing each child of a container element on its own line
// prefixed by one copy of indent per level of nesting.
// Elements whose content is inline (paragraphs, headings, list items)
// and preformatted elements are written on a single line,
// exactly as [sitegen.Node.Render] would produce them.
func Indent(w io.Writer, root sitegen.Node, indent string) error {
	ww := &errWriter{w: w}
	var buf []byte
	sitegen.Walk(root, &sitegen.WalkOptions{
		Pre: func(c *sitegen.Cursor) bool {
			if ww.err != nil {
				return false
			}
			if c.Node() == nil {
				ww.err = sitegen.ErrNilNode
				return false
			}
			prefix := strings.Repeat(indent, c.Depth())
			p, ok := c.Node().(*sitegen.Parent)
			if !ok || !isContainer(p) {
				var err error
				buf, err = c.Node().AppendHTML(buf[:0])
				if err != nil {
					ww.err = err
					return false
				}
				ww.WriteString(prefix)
				ww.Write(buf)
				ww.WriteString("\n")
				return false
			}
			ww.WriteString(prefix)
			ww.WriteString("<")
			ww.WriteString(p.Tag())
			ww.WriteString(p.Attrs().String())
			ww.WriteString(">\n")
			return ww.err == nil
		},
		Post: func(c *sitegen.Cursor) bool {
			ww.WriteString(strings.Repeat(indent, c.Depth()))
			ww.WriteString("</")
			ww.WriteString(c.Node().Tag())
			ww.WriteString(">\n")
			return ww.err == nil
		},
	})
	return ww.err
}

// isContainer reports whether p should have its children on separate lines.
func isContainer(p *sitegen.Parent) bool {
	if p.Tag() == "" || p.ChildCount() == 0 {
		// Let rendering report the error.
		return false
	}
	if atom.Lookup([]byte(p.Tag())) == atom.Pre {
		return false
	}
	for i := 0; i < p.ChildCount(); i++ {
		if _, ok := p.Child(i).(*sitegen.Parent); !ok {
			return false
		}
	}
	return true
}

type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = w.w.Write(p)
	return n, w.err
}

func (w *errWriter) WriteString(s string) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = io.WriteString(w.w, s)
	return n, w.err
}
