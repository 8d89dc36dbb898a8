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
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch builds the site and then rebuilds it whenever a file
// in the content directory, the static directory,
// or the template's directory changes.
// Bursts of changes closer together than debounce trigger a single rebuild.
// Build failures are logged and do not stop watching.
// Watch returns nil once ctx is done.
func Watch(ctx context.Context, b *Builder, debounce time.Duration) error {
	log := b.logger()
	cfg := b.Config
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	for _, dir := range []string{cfg.ContentDir, cfg.StaticDir} {
		if err := watchTree(watcher, dir); errors.Is(err, fs.ErrNotExist) {
			log.Debug("Not watching missing directory", "dir", dir)
		} else if err != nil {
			return fmt.Errorf("watch: %w", err)
		}
	}
	if err := watcher.Add(filepath.Dir(cfg.Template)); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	rebuild := func() {
		if _, err := b.Build(ctx); err != nil && ctx.Err() == nil {
			log.Error("Build failed", "error", err)
		}
	}
	rebuild()
	log.Info("Watching for changes", "content", cfg.ContentDir, "static", cfg.StaticDir)

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isRelevant(cfg, event) {
				continue
			}
			log.Debug("Change detected", "file", event.Name, "op", event.Op.String())
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchTree(watcher, event.Name); err != nil {
						log.Warn("Cannot watch new directory", "dir", event.Name, "error", err)
					}
				}
			}
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("Watcher error", "error", err)
		case <-timer.C:
			log.Info("Rebuilding")
			rebuild()
		}
	}
}

// isRelevant reports whether event should trigger a rebuild.
func isRelevant(cfg *Config, event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	return !isWithin(event.Name, cfg.OutputDir)
}

// watchTree adds root and all directories below it to watcher.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		return watcher.Add(path)
	})
}
