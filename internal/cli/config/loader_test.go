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

package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/dollarsign/internal/cli/config"
	intconfig "fillmore-labs.com/dollarsign/internal/config"
	"fillmore-labs.com/dollarsign/internal/rule"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", "", "")
	flags.String("log-level", "", "")
	flags.Bool("ignore-properties", false, "")
	flags.Bool("generated", false, "")
	flags.StringSlice("extensions", nil, "")
	flags.StringSlice("exclude", nil, "")
	flags.Int("max-passes", 0, "")

	return flags
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".dollarsign.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.File)
	assert.Empty(t, cfg.Options)
	assert.Equal(t, DefaultExtensions, cfg.Extensions)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, 10, cfg.MaxPasses)
	assert.False(t, cfg.Generated)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	behavior, err := cfg.Behavior()
	require.NoError(t, err)
	assert.False(t, behavior.Enabled(intconfig.IgnoreProperties))
	assert.False(t, behavior.Enabled(intconfig.IncludeGenerated))
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `options: [ignoreProperties]
extensions: [.js]
exclude: ["*.min.js"]
generated: true
format: json
max_passes: 3
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, []string{rule.OptionIgnoreProperties}, cfg.Options)
	assert.Equal(t, []string{".js"}, cfg.Extensions)
	assert.Equal(t, []string{"*.min.js"}, cfg.Exclude)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, 3, cfg.MaxPasses)

	behavior, err := cfg.Behavior()
	require.NoError(t, err)
	assert.True(t, behavior.Enabled(intconfig.IgnoreProperties))
	assert.True(t, behavior.Enabled(intconfig.IncludeGenerated))
}

func TestLoadDefaultFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".dollarsign.yml"), []byte("format: table\n"), 0o644))
	t.Chdir(dir)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, ".dollarsign.yml", cfg.File)
	assert.Equal(t, FormatTable, cfg.Format)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, "format: json\nmax_passes: 3\nextensions: [.js]\n")

	t.Setenv(EnvPrefix+"FORMAT", "table")
	t.Setenv(EnvPrefix+"EXTENSIONS", ".js,.jsx")
	t.Setenv(EnvPrefix+"LOG_LEVEL", "debug")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--max-passes=5", "--ignore-properties"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, FormatTable, cfg.Format, "env overrides file")
	assert.Equal(t, []string{".js", ".jsx"}, cfg.Extensions, "env lists are comma separated")
	assert.Equal(t, 5, cfg.MaxPasses, "flag overrides file")
	assert.Equal(t, []string{rule.OptionIgnoreProperties}, cfg.Options)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadFlagOverridesEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvPrefix+"FORMAT", "table")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--format=json", "--exclude=dist,*.min.js"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, []string{"dist", "*.min.js"}, cfg.Exclude)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"format", "format: xml\n", ErrInvalidConfig},
		{"log_format", "log_format: logfmt\n", ErrInvalidConfig},
		{"log_level", "log_level: loud\n", ErrInvalidConfig},
		{"max_passes", "max_passes: 0\n", ErrInvalidConfig},
		{"extension", "extensions: [js]\n", ErrInvalidConfig},
		{"option", "options: [ignoreMethods]\n", rule.ErrInvalidOption},
		{"options", "options: [ignoreProperties, ignoreProperties]\n", rule.ErrInvalidOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			_, err := Load(path, nil)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
}
