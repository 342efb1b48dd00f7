// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/natural-bodybuilder/macromix/pkg/config"
	"github.com/natural-bodybuilder/macromix/pkg/logging"
)

const (
	name           = "macromix"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

const usageLine = "usage: macromix [global options] mix [options] TARGET INGREDIENT..."

// Execute runs the root command with the process arguments and exits with a
// non-zero status on failure.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		slog.Error("command failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Mix ingredients to hit a kcal target at a carb/fat/protein ratio",
		UsageText:             "macromix [global options] command [options] TARGET INGREDIENT...",
		Description: `macromix splits a caloric target into small kcal pieces and hands them out
one at a time to the ingredient that moves the mixture closest to the desired
carb/fat/protein ratio. The result is a recipe in grams.

Targets and ingredients are YAML, JSON or TOML documents. Running the root
command with a target and ingredients is the same as running mix.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "settings file (default is $HOME/.macromix.yaml or ./.macromix.yaml)",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "dotenv file with MACROMIX_* variables",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format (json, text)",
			},
		},
		Before: initSettings,
		Commands: []*cli.Command{
			mixCmd(),
			inspectCmd(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runMix(ctx, cmd, cmd.Args().Slice())
		},
	}
}

type settingsKey struct{}

// initSettings loads settings and configures slog before any command runs so
// --log-level and --log-format take effect for all of them.
func initSettings(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	s, err := config.Load(config.LoadOptions{
		ConfigFile: cmd.String("config"),
		EnvFile:    cmd.String("env-file"),
	})
	if err != nil {
		return ctx, fmt.Errorf("failed to load settings: %w", err)
	}

	if cmd.IsSet("log-level") {
		s.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		s.LogFormat = cmd.String("log-format")
		if err := s.Validate(); err != nil {
			return ctx, err
		}
	}

	logging.SetDefaultLogger(s.LogFormat, name, version, s.LogLevel)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"settings", s.Source)

	return context.WithValue(ctx, settingsKey{}, s), nil
}

// settingsFrom returns the settings stored by initSettings, or the built-in
// defaults when the command runs without the root.
func settingsFrom(ctx context.Context) *config.Settings {
	if s, ok := ctx.Value(settingsKey{}).(*config.Settings); ok {
		return s
	}
	return config.Default()
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, usageLine)
}
