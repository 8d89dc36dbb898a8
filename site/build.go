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
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const markdownExt = ".md"

// A Builder generates a site from its configuration.
type Builder struct {
	Config *Config
	// Logger receives progress messages.
	// If nil, [slog.Default] is used.
	Logger *slog.Logger
}

// Stats summarizes a successful build.
type Stats struct {
	// Pages is the number of HTML pages written.
	Pages int
	// Bytes is the total size of the HTML pages written.
	Bytes int64
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.Default()
	}
	return b.Logger
}

// Build recreates the output directory from the static directory
// and then converts every Markdown file in the content directory
// to an HTML file at the same relative path.
// Build stops at the first page that fails.
func (b *Builder) Build(ctx context.Context) (*Stats, error) {
	start := time.Now()
	cfg := b.Config
	log := b.logger()

	tmpl, err := os.ReadFile(cfg.Template)
	if err != nil {
		return nil, fmt.Errorf("build: read template: %w", err)
	}
	if err := CopyDir(cfg.StaticDir, cfg.OutputDir); errors.Is(err, fs.ErrNotExist) {
		log.Debug("No static directory", "dir", cfg.StaticDir)
		if err := os.RemoveAll(cfg.OutputDir); err != nil {
			return nil, fmt.Errorf("build: %w", err)
		}
		if err := os.MkdirAll(cfg.OutputDir, 0o777); err != nil {
			return nil, fmt.Errorf("build: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	stats := new(Stats)
	opts := PageOptions{
		BasePath:         cfg.BasePath,
		NormalizeUnicode: cfg.NormalizeUnicode,
	}
	err = filepath.WalkDir(cfg.ContentDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || filepath.Ext(path) != markdownExt {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(cfg.ContentDir, path)
		if err != nil {
			return err
		}
		n, err := b.buildPage(path, filepath.Join(cfg.OutputDir, outputPath(rel)), tmpl, opts)
		if err != nil {
			return &pageError{path: path, err: err}
		}
		stats.Pages++
		stats.Bytes += n
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	log.Info("Built site",
		"pages", stats.Pages,
		"size", humanize.Bytes(uint64(stats.Bytes)),
		"output", cfg.OutputDir,
		"duration", time.Since(start).Round(time.Millisecond))
	return stats, nil
}

func (b *Builder) buildPage(src, dst string, tmpl []byte, opts PageOptions) (int64, error) {
	markdown, err := os.ReadFile(src)
	if err != nil {
		return 0, err
	}
	page, err := RenderPage(markdown, tmpl, opts)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o777); err != nil {
		return 0, err
	}
	if err := os.WriteFile(dst, page, 0o666); err != nil {
		return 0, err
	}
	b.logger().Debug("Generated page", "src", src, "dst", dst, "size", humanize.Bytes(uint64(len(page))))
	return int64(len(page)), nil
}

// outputPath returns the HTML file name for the Markdown file at rel.
func outputPath(rel string) string {
	return strings.TrimSuffix(rel, markdownExt) + ".html"
}

// pageError describes a page that failed to build.
type pageError struct {
	path string
	err  error
}

func (e *pageError) Error() string {
	return fmt.Sprintf("page %s: %v", e.path, e.err)
}

func (e *pageError) Unwrap() error {
	return e.err
}
