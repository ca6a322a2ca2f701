// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the dollarsign command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"fillmore-labs.com/dollarsign/internal/cli/config"
	"fillmore-labs.com/dollarsign/internal/run"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// configKey is used to store the configuration in the command context.
type configKey struct{}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "dollarsign",
		Short: "Check that jQuery identifiers start with a $",
		Long: `dollarsign reports variables and properties initialized with a jQuery call
whose names do not start with a $ and renames them where this is safe.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", "__complete", "version":
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := cfg.Logger(cmd.ErrOrStderr())
			if cfg.File != "" {
				logger.Debug("Using config file", slog.String("file", cfg.File))
			}

			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./.dollarsign.yaml)")
	flags.String("format", "", "Output format (text|json|table)")
	flags.String("log-level", "", "Log level (debug|info|warn|error)")
	flags.String("log-format", "", "Log format (text|json)")
	flags.Bool("ignore-properties", false, "Do not check object keys and property assignments")
	flags.Bool("generated", false, "Check generated files")
	flags.StringSlice("extensions", nil, "File extensions to check")
	flags.StringSlice("exclude", nil, "Glob patterns of files and directories to skip")
	flags.Int("max-passes", 0, "Maximum number of fix passes")

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.FormatText, config.FormatJSON, config.FormatTable}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewCheckCommand())
	rootCmd.AddCommand(NewFixCommand())
	rootCmd.AddCommand(NewWatchCommand())
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCmd()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, ErrIssuesFound) {
		_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}

	return err
}

// commandContext holds the state shared by the linting commands.
type commandContext struct {
	cfg      *config.Config
	filter   fileFilter
	linter   *linter
	renderer renderer
	logger   *slog.Logger
}

// newCommandContext prepares linting with suggested fixes, which check reports as fixable
// and fix applies.
func newCommandContext(cmd *cobra.Command) (*commandContext, error) {
	cfg, ok := cmd.Context().Value(configKey{}).(*config.Config)
	if !ok {
		return nil, errors.New("configuration not loaded")
	}

	behavior, err := cfg.Behavior()
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger(cmd.ErrOrStderr())

	return &commandContext{
		cfg:    cfg,
		filter: fileFilter{extensions: cfg.Extensions, exclude: cfg.Exclude},
		linter: &linter{
			opts:      &run.Options{Behavior: behavior, Fix: true},
			maxPasses: cfg.MaxPasses,
			logger:    logger,
		},
		renderer: renderer{
			out:    cmd.OutOrStdout(),
			err:    cmd.ErrOrStderr(),
			format: cfg.Format,
			styled: cfg.Format == config.FormatText && isTerminal(cmd.OutOrStdout()),
		},
		logger: logger,
	}, nil
}
