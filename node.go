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
	"fmt"
	"io"

	"golang.org/x/net/html/atom"
)

// Node is an element in an HTML tree.
// It is either a [*Leaf] or a [*Parent].
type Node interface {
	// Tag returns the element's tag name
	// or the empty string if the node is raw text.
	Tag() string
	// Attrs returns the element's attributes in source order.
	Attrs() Attrs
	// AppendHTML appends the node's HTML serialization to dst
	// and returns the resulting byte slice.
	AppendHTML(dst []byte) ([]byte, error)
	// Render returns the node's HTML serialization.
	Render() (string, error)

	node()
}

// Attr is a single HTML attribute.
type Attr struct {
	Key   string
	Value string
}

// Attrs is an ordered list of HTML attributes.
// Attributes are rendered in the order they appear in the list.
type Attrs []Attr

// Get returns the value of the first attribute with the given key.
func (attrs Attrs) Get(key string) (value string, ok bool) {
	for _, a := range attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// String returns the attributes as they appear inside a start tag,
// each preceded by a space.
// Values are not escaped.
func (attrs Attrs) String() string {
	return string(attrs.appendHTML(nil))
}

func (attrs Attrs) appendHTML(dst []byte) []byte {
	for _, a := range attrs {
		dst = append(dst, ' ')
		dst = append(dst, a.Key...)
		dst = append(dst, `="`...)
		dst = append(dst, a.Value...)
		dst = append(dst, '"')
	}
	return dst
}

// A Leaf is a node without children:
// either raw text or an element with text content.
type Leaf struct {
	tag      string
	value    string
	hasValue bool
	attrs    Attrs
}

// NewLeaf returns a new leaf element.
// If tag is empty, the leaf renders as its value alone.
func NewLeaf(tag, value string, attrs ...Attr) *Leaf {
	return &Leaf{
		tag:      tag,
		value:    value,
		hasValue: true,
		attrs:    attrs,
	}
}

// Text returns a new leaf with no tag.
func Text(value string) *Leaf {
	return NewLeaf("", value)
}

func (*Leaf) node() {}

// Tag returns the leaf's tag name
// or the empty string if the leaf is raw text or nil.
func (leaf *Leaf) Tag() string {
	if leaf == nil {
		return ""
	}
	return leaf.tag
}

// Value returns the leaf's content.
func (leaf *Leaf) Value() string {
	if leaf == nil {
		return ""
	}
	return leaf.value
}

// Attrs returns the leaf's attributes.
func (leaf *Leaf) Attrs() Attrs {
	if leaf == nil {
		return nil
	}
	return leaf.attrs
}

// AppendHTML appends the leaf's HTML to dst.
// Content is not escaped.
// Void elements like img are written without an end tag.
func (leaf *Leaf) AppendHTML(dst []byte) ([]byte, error) {
	if leaf == nil || !leaf.hasValue {
		return dst, ErrMissingValue
	}
	if leaf.tag == "" {
		return append(dst, leaf.value...), nil
	}
	dst = appendStartTag(dst, leaf.tag, leaf.attrs)
	dst = append(dst, leaf.value...)
	if !isVoidElement(leaf.tag) {
		dst = appendEndTag(dst, leaf.tag)
	}
	return dst, nil
}

// Render returns the leaf's HTML.
func (leaf *Leaf) Render() (string, error) {
	buf, err := leaf.AppendHTML(nil)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// A Parent is an element that contains other nodes.
type Parent struct {
	tag      string
	children []Node
	attrs    Attrs
}

// NewParent returns a new container element.
// The parent takes ownership of the children slice:
// callers must not modify it afterward.
func NewParent(tag string, children []Node, attrs ...Attr) *Parent {
	return &Parent{
		tag:      tag,
		children: children,
		attrs:    attrs,
	}
}

func (*Parent) node() {}

// Tag returns the parent's tag name
// or the empty string if the parent is nil.
func (p *Parent) Tag() string {
	if p == nil {
		return ""
	}
	return p.tag
}

// Attrs returns the parent's attributes.
func (p *Parent) Attrs() Attrs {
	if p == nil {
		return nil
	}
	return p.attrs
}

// ChildCount returns the number of children the parent has.
// Calling ChildCount on nil returns 0.
func (p *Parent) ChildCount() int {
	if p == nil {
		return 0
	}
	return len(p.children)
}

// Child returns the i'th child of the parent.
func (p *Parent) Child(i int) Node {
	return p.children[i]
}

// AppendHTML appends the parent's HTML to dst,
// rendering each child in order.
func (p *Parent) AppendHTML(dst []byte) ([]byte, error) {
	if p.Tag() == "" {
		return dst, ErrMissingTag
	}
	if len(p.children) == 0 {
		return dst, fmt.Errorf("<%s>: %w", p.tag, ErrEmptyChildren)
	}
	dst = appendStartTag(dst, p.tag, p.attrs)
	for i, c := range p.children {
		if c == nil {
			return dst, fmt.Errorf("<%s> child %d: %w", p.tag, i, ErrNilNode)
		}
		var err error
		dst, err = c.AppendHTML(dst)
		if err != nil {
			return dst, fmt.Errorf("<%s> child %d: %w", p.tag, i, err)
		}
	}
	dst = appendEndTag(dst, p.tag)
	return dst, nil
}

// Render returns the parent's HTML.
func (p *Parent) Render() (string, error) {
	buf, err := p.AppendHTML(nil)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// RenderHTML writes the HTML serialization of n to w.
// Nothing is written if rendering fails.
func RenderHTML(w io.Writer, n Node) error {
	if n == nil {
		return fmt.Errorf("render html: %w", ErrNilNode)
	}
	buf, err := n.AppendHTML(nil)
	if err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

func appendStartTag(dst []byte, tag string, attrs Attrs) []byte {
	dst = append(dst, '<')
	dst = append(dst, tag...)
	dst = attrs.appendHTML(dst)
	return append(dst, '>')
}

func appendEndTag(dst []byte, tag string) []byte {
	dst = append(dst, "</"...)
	dst = append(dst, tag...)
	return append(dst, '>')
}

// isVoidElement reports whether the tag names an [HTML void element],
// which cannot have an end tag.
//
// [HTML void element]: https://html.spec.whatwg.org/multipage/syntax.html#void-elements
func isVoidElement(tag string) bool {
	switch atom.Lookup([]byte(tag)) {
	case atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr, atom.Img,
		atom.Input, atom.Link, atom.Meta, atom.Source, atom.Track, atom.Wbr:
		return true
	default:
		return false
	}
}
