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

package sitegen

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// A Cursor describes a [Node] encountered during [Walk].
type Cursor struct {
	node   Node
	parent *Parent
	depth  int
}

// Node returns the current [Node].
func (c *Cursor) Node() Node {
	return c.node
}

// Parent returns the parent of the current [Node]
// or nil if the current node is the root.
func (c *Cursor) Parent() *Parent {
	return c.parent
}

// Depth returns the number of ancestors of the current [Node].
func (c *Cursor) Depth() int {
	return c.depth
}

// WalkOptions is the set of parameters to [Walk].
type WalkOptions struct {
	// If Pre is not nil, it is called for each node before the node's children are traversed (pre-order).
	// If Pre returns false, no children are traversed, and Post is not called for that node.
	Pre func(c *Cursor) bool
	// If Post is not nil, it is called for each node after the node's children are traversed (post-order).
	// If Post returns false, traversal is terminated and Walk returns immediately.
	Post func(c *Cursor) bool
}

// Walk traverses a [Node] recursively, starting with root,
// and calling [WalkOptions.Pre] and [WalkOptions.Post].
func Walk(root Node, opts *WalkOptions) {
	type walkFrame struct {
		node   Node
		parent *Parent
		depth  int
		post   bool
	}

	stack := []walkFrame{{node: root}}
	cursor := new(Cursor)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cursor.node = curr.node
		cursor.parent = curr.parent
		cursor.depth = curr.depth
		if curr.post {
			if opts.Post != nil && !opts.Post(cursor) {
				break
			}
			continue
		}

		if opts.Pre != nil && !opts.Pre(cursor) {
			continue
		}
		curr.post = true
		stack = append(stack, curr)
		if p, ok := curr.node.(*Parent); ok {
			for i := p.ChildCount() - 1; i >= 0; i-- {
				stack = append(stack, walkFrame{
					node:   p.Child(i),
					parent: p,
					depth:  curr.depth + 1,
				})
			}
		}
	}
}

// TextContent returns the concatenated values of the leaves under n.
// Images contribute their alt text.
func TextContent(n Node) string {
	sb := new(strings.Builder)
	Walk(n, &WalkOptions{
		Pre: func(c *Cursor) bool {
			leaf, ok := c.Node().(*Leaf)
			if !ok {
				return true
			}
			if atom.Lookup([]byte(leaf.Tag())) == atom.Img {
				alt, _ := leaf.Attrs().Get("alt")
				sb.WriteString(alt)
			} else {
				sb.WriteString(leaf.Value())
			}
			return false
		},
	})
	return sb.String()
}
