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
package site

import (
	"bytes"
	"errors"
	"strings"

	"go4.org/bytereplacer"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"
	"zombiezen.com/go/sitegen"
)

// ErrNoTitle is returned by [ExtractTitle] for documents without an h1 heading.
var ErrNoTitle = errors.New("no h1 heading")

// Template placeholders.
const (
	titlePlaceholder   = "{{ Title }}"
	contentPlaceholder = "{{ Content }}"
)

// ExtractTitle returns the trimmed text of the first h1 element in root.
func ExtractTitle(root sitegen.Node) (string, error) {
	var title string
	found := false
	sitegen.Walk(root, &sitegen.WalkOptions{
		Pre: func(c *sitegen.Cursor) bool {
			if found || c.Node() == nil {
				return false
			}
			if atom.Lookup([]byte(c.Node().Tag())) != atom.H1 {
				return true
			}
			title = strings.TrimSpace(sitegen.TextContent(c.Node()))
			found = true
			return false
		},
	})
	if !found {
		return "", ErrNoTitle
	}
	return title, nil
}

// PageOptions is the set of parameters to [RenderPage].
type PageOptions struct {
	// BasePath is the prefix that replaces the leading slash
	// of root-relative href and src attributes.
	// An empty BasePath is treated as "/".
	BasePath string
	// NormalizeUnicode converts the Markdown source to NFC before conversion.
	NormalizeUnicode bool
}

// RenderPage converts a Markdown document to HTML
// and substitutes it into tmpl.
// Occurrences of "{{ Title }}" in tmpl are replaced with the document's title
// (see [ExtractTitle]) and occurrences of "{{ Content }}"
// are replaced with the rendered document.
// Afterward, root-relative href and src attributes in the whole page
// are rewritten to start with opts.BasePath.
// Protocol-relative URLs like "//cdn.example.com/a.png" are not rewritten.
func RenderPage(markdown, tmpl []byte, opts PageOptions) ([]byte, error) {
	if opts.NormalizeUnicode {
		markdown = norm.NFC.Bytes(markdown)
	}
	root, err := sitegen.Convert(string(markdown))
	if err != nil {
		return nil, err
	}
	content, err := root.Render()
	if err != nil {
		return nil, err
	}
	title, err := ExtractTitle(root)
	if err != nil {
		return nil, err
	}

	fill := bytereplacer.New(
		titlePlaceholder, title,
		contentPlaceholder, content,
	)
	page := fill.Replace(bytes.Clone(tmpl))
	if base := normalizeBasePath(opts.BasePath); base != "/" {
		// Earlier pairs take priority,
		// so protocol-relative URLs ("//host/path") are left alone.
		rewrite := bytereplacer.New(
			`href="//`, `href="//`,
			`src="//`, `src="//`,
			`href="/`, `href="`+base,
			`src="/`, `src="`+base,
		)
		page = rewrite.Replace(page)
	}
	return page, nil
}

func normalizeBasePath(base string) string {
	if base == "" {
		return "/"
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}
