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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyDir(t *testing.T) {
	src := t.TempDir()
	writeFiles(t, src, map[string]string{
		"index.css":        "body {}",
		"images/a.png":     "png",
		"images/deep/b.js": "js",
	})
	require.NoError(t, os.Mkdir(filepath.Join(src, "empty"), 0o777))

	dst := filepath.Join(t.TempDir(), "public")
	writeFiles(t, dst, map[string]string{"stale.html": "old"})

	require.NoError(t, CopyDir(src, dst))
	assert.Equal(t, map[string]string{
		"index.css":        "body {}",
		"images/a.png":     "png",
		"images/deep/b.js": "js",
	}, readFiles(t, dst))
	info, err := os.Stat(filepath.Join(dst, "empty"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCopyDirErrors(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, CopyDir(filepath.Join(dir, "missing"), filepath.Join(dir, "out")))

	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o666))
	assert.Error(t, CopyDir(file, filepath.Join(dir, "out")))

	_, err := os.Stat(filepath.Join(dir, "out"))
	assert.True(t, os.IsNotExist(err), "destination created after failed copy")
}

// writeFiles creates the given files under dir.
// Keys are slash-separated paths relative to dir.
func writeFiles(tb testing.TB, dir string, files map[string]string) {
	tb.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(tb, os.MkdirAll(filepath.Dir(path), 0o777))
		require.NoError(tb, os.WriteFile(path, []byte(content), 0o666))
	}
}

// readFiles returns the contents of every regular file under dir,
// keyed by slash-separated relative path.
func readFiles(tb testing.TB, dir string) map[string]string {
	tb.Helper()
	files := make(map[string]string)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(content)
		return nil
	})
	require.NoError(tb, err)
	return files
}
