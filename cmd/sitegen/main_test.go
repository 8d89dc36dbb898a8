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
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	stdout := new(bytes.Buffer)
	var cli CLI
	parser, err := kong.New(&cli, options(context.Background(), stdout)...)
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	if err != nil {
		return "", err
	}
	err = kctx.Run(&cli)
	return stdout.String(), err
}

func TestRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.md")
	require.NoError(t, os.WriteFile(path, []byte("# Hi\n\n- a\n- b\n"), 0o666))

	out, err := run(t, "render", path)
	require.NoError(t, err)
	assert.Equal(t, "<div><h1>Hi</h1><ul><li>a</li><li>b</li></ul></div>\n", out)

	out, err = run(t, "render", "--pretty", path)
	require.NoError(t, err)
	assert.Equal(t, "<div>\n  <h1>Hi</h1>\n  <ul>\n    <li>a</li>\n    <li>b</li>\n  </ul>\n</div>\n", out)
}

func TestRenderError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.md")
	require.NoError(t, os.WriteFile(path, []byte("this is **broken"), 0o666))
	_, err := run(t, "render", path)
	assert.ErrorContains(t, err, "unclosed delimiter")
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "content"), 0o777))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "content", "index.md"), []byte("# Home"), 0o666))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "page.html"), []byte("<title>{{ Title }}</title>{{ Content }}"), 0o666))
	config := filepath.Join(dir, "sitegen.yaml")
	require.NoError(t, os.WriteFile(config, []byte("template: page.html\noutput_dir: out\n"), 0o666))

	_, err := run(t, "--config", config, "build")
	require.NoError(t, err)
	page, err := os.ReadFile(filepath.Join(dir, "out", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<title>Home</title><div><h1>Home</h1></div>", string(page))
}
