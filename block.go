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

//go:generate stringer -type=BlockKind -output=blockkind_string.go

package sitegen

import (
	"strconv"
	"strings"
)

// BlockKind is an enumeration of values returned by [Classify].
type BlockKind uint16

const (
	ParagraphKind BlockKind = 1 + iota
	HeadingKind
	CodeBlockKind
	QuoteKind
	UnorderedListKind
	OrderedListKind
)

const (
	codeFence         = "```"
	maxHeadingLevel   = 6
	unorderedListMark = "- "
)

// Segment splits a document into blocks separated by blank lines.
// Each block has its surrounding whitespace trimmed,
// and blocks that are empty after trimming are dropped.
// Line endings are normalized to "\n".
func Segment(doc string) []string {
	doc = normalizeNewlines(doc)
	var blocks []string
	for _, b := range strings.Split(doc, "\n\n") {
		b = strings.TrimSpace(b)
		if b != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Classify reports the kind of a block returned by [Segment].
// The first rule that matches wins:
// headings, fenced code, quotes, unordered lists, ordered lists.
// Anything else is a paragraph.
func Classify(block string) BlockKind {
	lines := strings.Split(block, "\n")
	switch {
	case headingLevel(lines[0]) > 0:
		return HeadingKind
	case isFencedCode(lines):
		return CodeBlockKind
	case allLines(lines, func(_ int, line string) bool { return strings.HasPrefix(line, ">") }):
		return QuoteKind
	case allLines(lines, func(_ int, line string) bool { return strings.HasPrefix(line, unorderedListMark) }):
		return UnorderedListKind
	case allLines(lines, isOrderedListLine):
		return OrderedListKind
	default:
		return ParagraphKind
	}
}

// headingLevel returns the number of '#' characters that start line
// if they are followed by a space,
// or zero if the line is not a heading.
func headingLevel(line string) int {
	n := 0
	for n < len(line) && n <= maxHeadingLevel && line[n] == '#' {
		n++
	}
	if n == 0 || n > maxHeadingLevel || n >= len(line) || line[n] != ' ' {
		return 0
	}
	return n
}

// isFencedCode reports whether the lines form a fenced code block:
// at least three lines, with the first and last starting with a code fence.
func isFencedCode(lines []string) bool {
	return len(lines) >= 3 &&
		strings.HasPrefix(trimIndent(lines[0]), codeFence) &&
		strings.HasPrefix(trimIndent(lines[len(lines)-1]), codeFence)
}

func isOrderedListLine(i int, line string) bool {
	return strings.HasPrefix(line, strconv.Itoa(i+1)+". ")
}

func allLines(lines []string, f func(i int, line string) bool) bool {
	for i, line := range lines {
		if !f(i, line) {
			return false
		}
	}
	return true
}

func trimIndent(line string) string {
	return strings.TrimLeft(line, " \t")
}
