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

//go:generate stringer -type=SpanKind -output=spankind_string.go

package sitegen

import (
	"fmt"

	"golang.org/x/net/html/atom"
)

// A Span is a run of inline text with a single style,
// as produced by [Tokenize].
type Span struct {
	Text string
	Kind SpanKind
	// URL is the destination of a [LinkKind] or [ImageKind] span.
	// It is empty for all other kinds.
	URL string
}

// SpanKind is an enumeration of inline text styles.
type SpanKind uint16

const (
	PlainKind SpanKind = 1 + iota
	BoldKind
	ItalicKind
	CodeKind
	LinkKind
	ImageKind
)

// Node converts the span into a leaf HTML node.
// Plain spans become tagless text leaves.
func (span Span) Node() (*Leaf, error) {
	switch span.Kind {
	case PlainKind:
		return Text(span.Text), nil
	case BoldKind:
		return NewLeaf(atom.B.String(), span.Text), nil
	case ItalicKind:
		return NewLeaf(atom.I.String(), span.Text), nil
	case CodeKind:
		return NewLeaf(atom.Code.String(), span.Text), nil
	case LinkKind:
		if span.URL == "" {
			return nil, fmt.Errorf("link %q: %w", span.Text, ErrMissingURL)
		}
		return NewLeaf(atom.A.String(), span.Text, Attr{Key: "href", Value: span.URL}), nil
	case ImageKind:
		if span.URL == "" {
			return nil, fmt.Errorf("image %q: %w", span.Text, ErrMissingURL)
		}
		return NewLeaf(atom.Img.String(), "",
			Attr{Key: "src", Value: span.URL},
			Attr{Key: "alt", Value: span.Text},
		), nil
	default:
		return nil, fmt.Errorf("%v: %w", span.Kind, ErrUnknownSpanKind)
	}
}
