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
	"errors"
	"fmt"
)

// Errors returned while mapping spans and rendering nodes.
// Use [errors.Is] to test for them: they are usually wrapped with context.
var (
	ErrMissingURL      = errors.New("link or image span has no url")
	ErrUnknownSpanKind = errors.New("unknown span kind")
	ErrMissingValue    = errors.New("leaf node has no value")
	ErrMissingTag      = errors.New("parent node has no tag")
	ErrEmptyChildren   = errors.New("parent node has no children")
	ErrNilNode         = errors.New("nil node")
)

// UnclosedDelimiterError is returned by [Tokenize]
// when an inline delimiter is opened but never closed.
type UnclosedDelimiterError struct {
	Delimiter string
	Text      string
}

func (e *UnclosedDelimiterError) Error() string {
	return fmt.Sprintf("invalid markdown syntax: unclosed delimiter %q in text: %s", e.Delimiter, e.Text)
}
