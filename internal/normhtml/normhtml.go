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

// Package normhtml provides a function for normalizing HTML
// which ignores whitespace between block-level elements.
// It is used to compare the output of different renderers in tests.
package normhtml

import (
	"bytes"

	"go4.org/bytereplacer"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// NormalizeHTML strips insignificant whitespace from HTML.
// Whitespace-only text directly inside block-level elements is removed,
// except within pre elements.
// Tags are lowercased and attributes keep their order.
func NormalizeHTML(b []byte) []byte {
	tok := html.NewTokenizerFragment(bytes.NewReader(b), "div")
	var output []byte
	var parents []atom.Atom
	preDepth := 0
	for {
		tt := tok.Next()
		switch tt {
		case html.ErrorToken:
			return output
		case html.TextToken:
			data := tok.Text()
			if preDepth == 0 && len(bytes.TrimSpace(data)) == 0 && inBlock(parents) {
				continue
			}
			output = append(output, htmlEscaper.Replace(bytes.Clone(data))...)
		case html.StartTagToken, html.SelfClosingTagToken:
			t := tok.Token()
			output = appendTag(output, t)
			if tt == html.SelfClosingTagToken || isVoid(t.DataAtom) {
				continue
			}
			parents = append(parents, t.DataAtom)
			if t.DataAtom == atom.Pre {
				preDepth++
			}
		case html.EndTagToken:
			t := tok.Token()
			if isVoid(t.DataAtom) {
				continue
			}
			output = append(output, "</"...)
			output = append(output, t.Data...)
			output = append(output, '>')
			if len(parents) > 0 {
				parents = parents[:len(parents)-1]
			}
			if t.DataAtom == atom.Pre && preDepth > 0 {
				preDepth--
			}
		}
	}
}

func appendTag(dst []byte, t html.Token) []byte {
	dst = append(dst, '<')
	dst = append(dst, t.Data...)
	for _, a := range t.Attr {
		dst = append(dst, ' ')
		dst = append(dst, a.Key...)
		dst = append(dst, `="`...)
		dst = append(dst, htmlEscaper.Replace([]byte(a.Val))...)
		dst = append(dst, '"')
	}
	return append(dst, '>')
}

// inBlock reports whether the innermost open element is block-level.
// Text at the top of the fragment counts as block-level.
func inBlock(parents []atom.Atom) bool {
	if len(parents) == 0 {
		return true
	}
	switch parents[len(parents)-1] {
	case atom.Article, atom.Blockquote, atom.Body, atom.Div, atom.Head,
		atom.Html, atom.Main, atom.Ol, atom.Section, atom.Ul:
		return true
	default:
		return false
	}
}

func isVoid(a atom.Atom) bool {
	switch a {
	case atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr, atom.Img,
		atom.Input, atom.Link, atom.Meta, atom.Source, atom.Track, atom.Wbr:
		return true
	default:
		return false
	}
}
