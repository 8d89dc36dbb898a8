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

// Package sitegen converts Markdown documents into HTML element trees.
//
// The supported syntax is deliberately small:
// headings, paragraphs, quotes, ordered and unordered lists, fenced code blocks,
// and inline bold, italic, code, links, and images.
// Content is never HTML-escaped:
// callers rendering untrusted input must sanitize it themselves.
package sitegen

import (
	"fmt"
	"strings"

	"golang.org/x/net/html/atom"
)

// Convert parses a Markdown document into an HTML tree
// rooted at a div element with one child per block.
// Any error aborts the whole conversion.
func Convert(markdown string) (*Parent, error) {
	blocks := Segment(markdown)
	nodes := make([]Node, 0, len(blocks))
	for i, b := range blocks {
		n, err := convertBlock(b)
		if err != nil {
			return nil, fmt.Errorf("convert block %d: %w", i+1, err)
		}
		nodes = append(nodes, n)
	}
	return NewParent(atom.Div.String(), nodes), nil
}

// ToHTML converts a Markdown document to an HTML string.
func ToHTML(markdown string) (string, error) {
	root, err := Convert(markdown)
	if err != nil {
		return "", err
	}
	return root.Render()
}

func convertBlock(block string) (*Parent, error) {
	lines := strings.Split(block, "\n")
	switch Classify(block) {
	case HeadingKind:
		return headingNode(lines)
	case CodeBlockKind:
		return codeBlockNode(lines), nil
	case QuoteKind:
		for i, line := range lines {
			line = trimIndent(line)
			line = strings.TrimPrefix(line, ">")
			line = strings.TrimPrefix(line, " ")
			lines[i] = strings.TrimRight(line, " \t")
		}
		return inlineParent(atom.Blockquote, strings.Join(lines, " "))
	case UnorderedListKind:
		return listNode(atom.Ul, lines, func(line string) string {
			if rest, ok := strings.CutPrefix(line, unorderedListMark); ok {
				return strings.TrimSpace(rest)
			}
			return strings.TrimSpace(line)
		})
	case OrderedListKind:
		return listNode(atom.Ol, lines, func(line string) string {
			// Cut at the first '.', which ends the item number.
			if _, rest, ok := strings.Cut(line, "."); ok {
				return strings.TrimSpace(rest)
			}
			return strings.TrimSpace(line)
		})
	default:
		for i, line := range lines {
			lines[i] = strings.TrimSpace(line)
		}
		return inlineParent(atom.P, strings.Join(lines, " "))
	}
}

var headingTags = [...]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

// headingNode returns the heading element for a heading block.
// Only the first line is used: any following lines are dropped.
func headingNode(lines []string) (*Parent, error) {
	level := headingLevel(lines[0])
	return inlineParent(headingTags[level-1], strings.TrimSpace(lines[0][level:]))
}

// codeBlockNode returns the pre element for a fenced code block.
// The content between the fences is used verbatim
// except for removing common indentation
// and ending it with exactly one newline.
func codeBlockNode(lines []string) *Parent {
	content := dedent(lines[1 : len(lines)-1])
	content = strings.TrimRight(content, "\n") + "\n"
	code := NewParent(atom.Code.String(), []Node{Text(content)})
	return NewParent(atom.Pre.String(), []Node{code})
}

func listNode(tag atom.Atom, lines []string, itemText func(line string) string) (*Parent, error) {
	items := make([]Node, 0, len(lines))
	for i, line := range lines {
		li, err := inlineParent(atom.Li, itemText(line))
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		items = append(items, li)
	}
	return NewParent(tag.String(), items), nil
}

// inlineParent tokenizes text and wraps the resulting nodes in an element.
func inlineParent(tag atom.Atom, text string) (*Parent, error) {
	spans, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	children := make([]Node, 0, len(spans))
	for _, span := range spans {
		leaf, err := span.Node()
		if err != nil {
			return nil, err
		}
		children = append(children, leaf)
	}
	return NewParent(tag.String(), children), nil
}

// dedent joins lines with newlines
// after removing any leading whitespace common to all of them.
// Lines consisting only of whitespace do not count toward the common prefix
// and are emptied.
func dedent(lines []string) string {
	margin := ""
	first := true
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := line[:len(line)-len(trimIndent(line))]
		if first {
			margin = indent
			first = false
			continue
		}
		margin = commonPrefix(margin, indent)
	}

	sb := new(strings.Builder)
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		sb.WriteString(line[len(margin):])
	}
	return sb.String()
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
