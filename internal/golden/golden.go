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

// Package golden provides Markdown documents
// paired with the exact HTML they convert to.
package golden

import (
	_ "embed"
	"encoding/json"
)

// A Case is a single Markdown document and its expected rendering.
type Case struct {
	Name     string
	Markdown string
	HTML     string
}

//go:embed golden.json
var caseData []byte

// Load returns all of the cases.
func Load() ([]Case, error) {
	var cases []Case
	if err := json.Unmarshal(caseData, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}
