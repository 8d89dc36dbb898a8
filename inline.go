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

import "strings"

// Inline delimiters, in the order they are split.
const (
	codeDelimiter   = "`"
	boldDelimiter   = "**"
	italicDelimiter = "_"
)

// Tokenize splits a run of text into styled spans.
// Images are extracted first, then links,
// then code, bold, and italic delimiters.
// Each pass only looks at text that is still plain,
// so markers inside code, links, or images are kept literally.
//
// Tokenize always returns at least one span:
// if no text remains, the result is a single empty [PlainKind] span.
func Tokenize(text string) ([]Span, error) {
	spans := []Span{{Text: text, Kind: PlainKind}}
	spans = splitLinks(spans, ImageKind)
	spans = splitLinks(spans, LinkKind)
	for _, pass := range [...]struct {
		delim string
		kind  SpanKind
	}{
		{codeDelimiter, CodeKind},
		{boldDelimiter, BoldKind},
		{italicDelimiter, ItalicKind},
	} {
		var err error
		spans, err = splitDelimiter(spans, pass.delim, pass.kind)
		if err != nil {
			return nil, err
		}
	}
	if len(spans) == 0 {
		return []Span{{Kind: PlainKind}}, nil
	}
	return spans, nil
}

// splitDelimiter splits every plain span on delim,
// turning the text between each pair of delimiters into a span of the given kind.
// Empty segments are dropped.
func splitDelimiter(spans []Span, delim string, kind SpanKind) ([]Span, error) {
	result := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != PlainKind {
			result = append(result, span)
			continue
		}
		segments := strings.Split(span.Text, delim)
		if len(segments)%2 == 0 {
			return nil, &UnclosedDelimiterError{
				Delimiter: delim,
				Text:      span.Text,
			}
		}
		for i, seg := range segments {
			if seg == "" {
				continue
			}
			segKind := PlainKind
			if i%2 == 1 {
				segKind = kind
			}
			result = append(result, Span{Text: seg, Kind: segKind})
		}
	}
	return result, nil
}

// splitLinks replaces link or image syntax in plain spans
// with spans of the given kind (either [LinkKind] or [ImageKind]).
func splitLinks(spans []Span, kind SpanKind) []Span {
	result := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != PlainKind {
			result = append(result, span)
			continue
		}
		matches := findLinks(span.Text, kind == ImageKind)
		if len(matches) == 0 {
			result = append(result, span)
			continue
		}

		// Each match is located by searching for its literal source text
		// in the remainder, so duplicate links are consumed left to right.
		rest := span.Text
		start := len(result)
		for _, m := range matches {
			before, after, found := strings.Cut(rest, m.literal(kind == ImageKind))
			if !found {
				if rest != "" {
					result = append(result, Span{Text: rest, Kind: PlainKind})
				}
				break
			}
			if before != "" {
				result = append(result, Span{Text: before, Kind: PlainKind})
			}
			result = append(result, Span{Text: m.label, Kind: kind, URL: m.url})
			rest = after
		}
		if rest != "" && (len(result) == start || result[len(result)-1].Kind != PlainKind) {
			result = append(result, Span{Text: rest, Kind: PlainKind})
		}
	}
	return result
}

// linkMatch is a link or image found in a run of text.
type linkMatch struct {
	label string
	url   string
}

// literal returns the Markdown source text of the match.
func (m linkMatch) literal(image bool) string {
	sb := new(strings.Builder)
	sb.Grow(len(m.label) + len(m.url) + len("![]()"))
	if image {
		sb.WriteByte('!')
	}
	sb.WriteByte('[')
	sb.WriteString(m.label)
	sb.WriteString("](")
	sb.WriteString(m.url)
	sb.WriteByte(')')
	return sb.String()
}

// findLinks returns the links (or images, if image is true) in text,
// in the order they appear.
// A link is "[label](url)", where the label contains no square brackets
// and the url has balanced parentheses.
// An image is a link preceded by "!".
// Links and images preceded by a backslash are ignored,
// as are images when looking for links.
func findLinks(text string, image bool) []linkMatch {
	var matches []linkMatch
	for i := 0; i < len(text); i++ {
		if text[i] != '[' {
			continue
		}
		start := i
		hasBang := i > 0 && text[i-1] == '!'
		if image {
			if !hasBang {
				continue
			}
			start--
		} else if hasBang {
			continue
		}
		if start > 0 && text[start-1] == '\\' {
			continue
		}
		m, end, ok := parseLink(text, i)
		if !ok {
			continue
		}
		matches = append(matches, m)
		i = end - 1
	}
	return matches
}

// parseLink parses "[label](url)" starting at the '[' at text[start].
// It returns the position just past the closing parenthesis.
func parseLink(text string, start int) (m linkMatch, end int, ok bool) {
	labelStart := start + 1
	n := strings.IndexAny(text[labelStart:], "[]")
	if n < 0 || text[labelStart+n] != ']' {
		return linkMatch{}, -1, false
	}
	labelEnd := labelStart + n
	if labelEnd+1 >= len(text) || text[labelEnd+1] != '(' {
		return linkMatch{}, -1, false
	}
	urlStart := labelEnd + 2
	depth := 1
	for i := urlStart; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				if i == urlStart {
					// An empty destination is not a link,
					// so link and image spans always carry a URL.
					return linkMatch{}, -1, false
				}
				return linkMatch{
					label: text[labelStart:labelEnd],
					url:   text[urlStart:i],
				}, i + 1, true
			}
		}
	}
	return linkMatch{}, -1, false
}
