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
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zombiezen.com/go/sitegen"
)

const testTemplate = `<!DOCTYPE html>
<html>
<head>
<title>{{ Title }}</title>
<link href="/index.css" rel="stylesheet">
</head>
<body>
<article>{{ Content }}</article>
</body>
</html>
`

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		markdown string
		want     string
	}{
		{"# Hello", "Hello"},
		{"# Tolkien **Fan** Club\n\nBody", "Tolkien Fan Club"},
		{"## Sub\n\n# Main", "Main"},
		{"# First\n\n# Second", "First"},
	}
	for _, test := range tests {
		root, err := sitegen.Convert(test.markdown)
		require.NoError(t, err)
		got, err := ExtractTitle(root)
		if assert.NoError(t, err, test.markdown) {
			assert.Equal(t, test.want, got, test.markdown)
		}
	}
}

func TestExtractTitleNilChild(t *testing.T) {
	root := sitegen.NewParent("div", []sitegen.Node{
		nil,
		sitegen.NewParent("h1", []sitegen.Node{sitegen.Text("Found")}),
	})
	got, err := ExtractTitle(root)
	require.NoError(t, err)
	assert.Equal(t, "Found", got)
}

func TestExtractTitleMissing(t *testing.T) {
	root, err := sitegen.Convert("## Not a title\n\nJust text.")
	require.NoError(t, err)
	_, err = ExtractTitle(root)
	assert.ErrorIs(t, err, ErrNoTitle)
}

func TestRenderPage(t *testing.T) {
	markdown := "# Tolkien Fan Club\n\n" +
		"![JRR Tolkien sitting](/images/tolkien.png)\n\n" +
		"Read [the blog](/blog/glorfindel) for more."
	page, err := RenderPage([]byte(markdown), []byte(testTemplate), PageOptions{BasePath: "/"})
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, "Tolkien Fan Club", doc.Find("title").Text())
	assert.Equal(t, "Tolkien Fan Club", doc.Find("article > div > h1").Text())
	assert.Equal(t, "/blog/glorfindel", doc.Find("article a").AttrOr("href", ""))
	assert.Equal(t, "/images/tolkien.png", doc.Find("article img").AttrOr("src", ""))
	assert.Equal(t, "JRR Tolkien sitting", doc.Find("article img").AttrOr("alt", ""))
	assert.NotContains(t, string(page), "{{")
}

func TestRenderPageBasePath(t *testing.T) {
	markdown := "# Home\n\n[about](/about) and [elsewhere](https://example.com/x)\n\n![logo](/logo.png)"
	for _, base := range []string{"/site/", "/site"} {
		page, err := RenderPage([]byte(markdown), []byte(testTemplate), PageOptions{BasePath: base})
		require.NoError(t, err)

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
		require.NoError(t, err)
		hrefs := doc.Find("a").Map(func(_ int, s *goquery.Selection) string {
			return s.AttrOr("href", "")
		})
		assert.Equal(t, []string{"/site/about", "https://example.com/x"}, hrefs, "base %q", base)
		assert.Equal(t, "/site/logo.png", doc.Find("img").AttrOr("src", ""), "base %q", base)
		assert.Equal(t, "/site/index.css", doc.Find("link").AttrOr("href", ""), "base %q", base)
	}
}

func TestRenderPageProtocolRelativeURLs(t *testing.T) {
	markdown := "# CDN\n\n![x](//cdn.example.com/a.png) [mirror](//mirror.example.com/) [local](/local)"
	page, err := RenderPage([]byte(markdown), []byte(testTemplate), PageOptions{BasePath: "/blog/"})
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, "//cdn.example.com/a.png", doc.Find("img").AttrOr("src", ""))
	hrefs := doc.Find("article a").Map(func(_ int, s *goquery.Selection) string {
		return s.AttrOr("href", "")
	})
	assert.Equal(t, []string{"//mirror.example.com/", "/blog/local"}, hrefs)
	assert.NotContains(t, string(page), "/blog//")
}

func TestRenderPageTemplateUnchanged(t *testing.T) {
	tmpl := []byte(testTemplate)
	_, err := RenderPage([]byte("# x"), tmpl, PageOptions{BasePath: "/a/"})
	require.NoError(t, err)
	assert.Equal(t, testTemplate, string(tmpl))
}

func TestRenderPageNormalizeUnicode(t *testing.T) {
	const decomposed = "# Cafe\u0301"
	page, err := RenderPage([]byte(decomposed), []byte("{{ Title }}"), PageOptions{NormalizeUnicode: true})
	require.NoError(t, err)
	assert.Equal(t, "Caf\u00e9", string(page))

	page, err = RenderPage([]byte(decomposed), []byte("{{ Title }}"), PageOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Cafe\u0301", string(page))
}

func TestRenderPageErrors(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     error
	}{
		{"NoTitle", "Just a paragraph.", ErrNoTitle},
		{"Empty", "", sitegen.ErrEmptyChildren},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := RenderPage([]byte(test.markdown), []byte(testTemplate), PageOptions{})
			assert.ErrorIs(t, err, test.want)
		})
	}

	_, err := RenderPage([]byte("# a **b"), []byte(testTemplate), PageOptions{})
	var unclosed *sitegen.UnclosedDelimiterError
	assert.True(t, errors.As(err, &unclosed), "error = %v", err)
}
