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
// Package site builds a static website from a directory of Markdown pages,
// a directory of static assets, and an HTML template.
package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the configuration for a site build.
type Config struct {
	// ContentDir is the directory containing Markdown pages.
	ContentDir string `yaml:"content_dir"`
	// StaticDir is the directory whose contents are copied verbatim
	// into the output directory before pages are generated.
	StaticDir string `yaml:"static_dir"`
	// OutputDir is the directory that receives the generated site.
	// It is removed and recreated on every build.
	OutputDir string `yaml:"output_dir"`
	// Template is the path to the HTML page template.
	Template string `yaml:"template"`
	// BasePath is the URL path the site is served under.
	// Root-relative links in generated pages are rewritten to start with it.
	BasePath string `yaml:"base_path"`
	// NormalizeUnicode enables NFC normalization of page sources.
	NormalizeUnicode bool `yaml:"normalize_unicode"`
}

// DefaultConfig returns the configuration used when no file is present.
// Paths are relative to the working directory.
func DefaultConfig() *Config {
	return &Config{
		ContentDir:       "content",
		StaticDir:        "static",
		OutputDir:        "public",
		Template:         "template.html",
		BasePath:         "/",
		NormalizeUnicode: true,
	}
}

// LoadConfig reads a YAML configuration file.
// Environment variables from a .env file next to the configuration file
// are loaded first (if the file exists)
// and ${VAR} references in the YAML are expanded.
// Fields that are absent or empty take their [DefaultConfig] values,
// and relative paths are resolved against the configuration file's directory.
// If the file does not exist, the returned error wraps [fs.ErrNotExist].
func LoadConfig(path string) (*Config, error) {
	dir := filepath.Dir(path)
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load config %s: .env: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	defaults := DefaultConfig()
	for _, f := range []struct {
		field *string
		def   string
	}{
		{&cfg.ContentDir, defaults.ContentDir},
		{&cfg.StaticDir, defaults.StaticDir},
		{&cfg.OutputDir, defaults.OutputDir},
		{&cfg.Template, defaults.Template},
	} {
		if *f.field == "" {
			*f.field = f.def
		}
		if !filepath.IsAbs(*f.field) {
			*f.field = filepath.Join(dir, *f.field)
		}
	}
	if cfg.BasePath == "" {
		cfg.BasePath = defaults.BasePath
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports whether the configuration can be used for a build.
func (cfg *Config) Validate() error {
	if !strings.HasPrefix(cfg.BasePath, "/") {
		return fmt.Errorf("base_path %q must start with a slash", cfg.BasePath)
	}
	out := filepath.Clean(cfg.OutputDir)
	if out == "." || out == string(filepath.Separator) {
		return fmt.Errorf("output_dir %q would remove the site sources", cfg.OutputDir)
	}
	for _, src := range []string{cfg.ContentDir, cfg.StaticDir} {
		if isWithin(src, out) {
			return fmt.Errorf("output_dir %q contains source directory %q", cfg.OutputDir, src)
		}
		if isWithin(out, src) {
			return fmt.Errorf("output_dir %q is inside source directory %q", cfg.OutputDir, src)
		}
	}
	return nil
}

// isWithin reports whether path is dir or a descendant of dir.
// Relative paths are resolved against the working directory.
func isWithin(path, dir string) bool {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
