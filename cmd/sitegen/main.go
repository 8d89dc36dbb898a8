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
// sitegen builds a static website from Markdown pages.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"zombiezen.com/go/sitegen"
	"zombiezen.com/go/sitegen/format"
	"zombiezen.com/go/sitegen/site"
)

// CLI is the command-line interface.
type CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"sitegen.yaml" type:"path"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build  BuildCmd  `cmd:"" help:"Build the site once"`
	Watch  WatchCmd  `cmd:"" help:"Build the site and rebuild it whenever its sources change"`
	Render RenderCmd `cmd:"" help:"Convert a single Markdown file to HTML on stdout"`
}

// AfterApply runs after flag parsing and sets up logging.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// loadConfig reads the configuration file,
// falling back to the defaults if it does not exist.
func (c *CLI) loadConfig() (*site.Config, error) {
	cfg, err := site.LoadConfig(c.Config)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("No configuration file; using defaults", "path", c.Config)
		return site.DefaultConfig(), nil
	}
	return cfg, err
}

// BuildCmd implements the 'build' command.
type BuildCmd struct{}

func (cmd *BuildCmd) Run(ctx context.Context, cli *CLI) error {
	cfg, err := cli.loadConfig()
	if err != nil {
		return err
	}
	_, err = (&site.Builder{Config: cfg, Logger: slog.Default()}).Build(ctx)
	return err
}

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Debounce time.Duration `help:"Time to wait for further changes before rebuilding" default:"300ms"`
}

func (cmd *WatchCmd) Run(ctx context.Context, cli *CLI) error {
	cfg, err := cli.loadConfig()
	if err != nil {
		return err
	}
	return site.Watch(ctx, &site.Builder{Config: cfg, Logger: slog.Default()}, cmd.Debounce)
}

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	File   string `arg:"" type:"existingfile" help:"Markdown file to convert"`
	Pretty bool   `help:"Place each block-level element on its own line"`
}

func (cmd *RenderCmd) Run(stdout io.Writer) error {
	markdown, err := os.ReadFile(cmd.File)
	if err != nil {
		return err
	}
	root, err := sitegen.Convert(string(markdown))
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.File, err)
	}
	if cmd.Pretty {
		return format.Indent(stdout, root, "  ")
	}
	if err := sitegen.RenderHTML(stdout, root); err != nil {
		return fmt.Errorf("%s: %w", cmd.File, err)
	}
	_, err = io.WriteString(stdout, "\n")
	return err
}

func options(ctx context.Context, stdout io.Writer) []kong.Option {
	return []kong.Option{
		kong.Name("sitegen"),
		kong.Description("Build a static website from Markdown pages."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(stdout, (*io.Writer)(nil)),
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	var cli CLI
	kctx := kong.Parse(&cli, options(ctx, os.Stdout)...)
	err := kctx.Run(&cli)
	stop()
	kctx.FatalIfErrorf(err)
}
