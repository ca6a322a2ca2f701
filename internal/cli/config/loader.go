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

// Package config loads the command line configuration.
//
// Values are layered with increasing precedence: built-in defaults, the
// configuration file, DOLLARSIGN_ environment variables and explicitly set flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	intconfig "fillmore-labs.com/dollarsign/internal/config"
	"fillmore-labs.com/dollarsign/internal/fix"
	"fillmore-labs.com/dollarsign/internal/rule"
)

// EnvPrefix is the prefix of environment variables overriding configuration keys.
const EnvPrefix = "DOLLARSIGN_"

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatTable = "table"
)

// DefaultConfigFiles are searched in the working directory when no file is given.
var DefaultConfigFiles = []string{".dollarsign.yaml", ".dollarsign.yml"}

// DefaultExtensions are the file extensions linted by default.
var DefaultExtensions = []string{".js", ".mjs", ".cjs"}

// ErrInvalidConfig is returned for configuration values out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the command line configuration.
type Config struct {
	Options    []string `koanf:"options"     yaml:"options"`
	Extensions []string `koanf:"extensions"  yaml:"extensions"`
	Exclude    []string `koanf:"exclude"     yaml:"exclude"`
	Generated  bool     `koanf:"generated"   yaml:"generated"`
	Format     string   `koanf:"format"      yaml:"format"`
	LogLevel   string   `koanf:"log_level"   yaml:"log_level"`
	LogFormat  string   `koanf:"log_format"  yaml:"log_format"`
	MaxPasses  int      `koanf:"max_passes"  yaml:"max_passes"`

	// File is the configuration file used, empty if none.
	File string `koanf:"-" yaml:"-"`
}

// Load reads the configuration. cfgFile may be empty, flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]any{
		"options":    []string{},
		"extensions": DefaultExtensions,
		"exclude":    []string{},
		"generated":  false,
		"format":     FormatText,
		"log_level":  "warn",
		"log_format": "text",
		"max_passes": fix.DefaultMaxPasses,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Configuration file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment: DOLLARSIGN_MAX_PASSES -> max_passes
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, flagKey(flags)), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.File = used

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// listKeys hold comma separated lists in environment variables.
var listKeys = []string{"options", "extensions", "exclude"}

// envValue maps an environment variable to a configuration key and value.
func envValue(name, value string) (string, any) {
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))

	if slices.Contains(listKeys, key) {
		if value == "" {
			return key, []string{}
		}

		return key, strings.Split(value, ",")
	}

	return key, value
}

// flagKey maps explicitly set flags to configuration keys.
func flagKey(flags *pflag.FlagSet) func(f *pflag.Flag) (string, any) {
	return func(f *pflag.Flag) (string, any) {
		if !f.Changed {
			return "", nil
		}

		switch f.Name {
		case "config":
			return "", nil

		case "ignore-properties":
			if v, err := flags.GetBool(f.Name); err != nil || !v {
				return "options", []string{}
			}

			return "options", []string{rule.OptionIgnoreProperties}
		}

		return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
	}
}

// findConfigFile returns the configuration file to read, empty if none exists.
func findConfigFile(cfgFile string) string {
	if cfgFile != "" {
		return cfgFile
	}

	for _, name := range DefaultConfigFiles {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	return ""
}

func (c *Config) validate() error {
	if !slices.Contains([]string{FormatText, FormatJSON, FormatTable}, c.Format) {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}

	if !slices.Contains([]string{"text", "json"}, c.LogFormat) {
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.LogFormat)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	if c.MaxPasses < 1 {
		return fmt.Errorf("%w: max passes must be positive, got %d", ErrInvalidConfig, c.MaxPasses)
	}

	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: extension %q must start with a dot", ErrInvalidConfig, ext)
		}
	}

	if _, err := c.Behavior(); err != nil {
		return err
	}

	return nil
}

// Behavior returns the rule options.
func (c *Config) Behavior() (intconfig.Behavior, error) {
	behavior, err := rule.ParseOptions(c.Options)
	if err != nil {
		return behavior, err
	}

	behavior.Set(intconfig.IncludeGenerated, c.Generated)

	return behavior, nil
}

// Level returns the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return level, nil
}

// Logger creates a logger writing to w.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, _ := c.Level()
	opts := &slog.HandlerOptions{Level: level}

	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
