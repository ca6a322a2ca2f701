// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

package analyzer_test

import (
	"flag"
	"strings"
	"testing"

	. "fillmore-labs.com/dollarsign/analyzer"
	"fillmore-labs.com/dollarsign/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial bool
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: false,
			args:    []string{"-ignore-properties"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: true,
			args:    []string{"-ignore-properties=false"},
			want:    false,
		},
		{
			name:    "Keep",
			initial: true,
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var behavior config.Behavior
			behavior.Set(config.IncludeGenerated, true)
			behavior.Set(config.IgnoreProperties, tt.initial)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			fv := NewBehaviorValue(&behavior, config.IgnoreProperties)
			fs.Var(fv, "ignore-properties", "do not check properties")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if behavior.Enabled(config.IgnoreProperties) != tt.want {
				t.Errorf("IgnoreProperties enabled = %v, want %v", behavior.Enabled(config.IgnoreProperties), tt.want)
			}

			if !behavior.Enabled(config.IncludeGenerated) {
				t.Error("IncludeGenerated changed")
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var behavior config.Behavior

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.Var(NewBehaviorValue(&behavior, config.IncludeGenerated), "generated", "check generated files")

	if err := fs.Parse([]string{"-generated=maybe"}); err == nil {
		t.Error("Expected parse error")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	var behavior config.Behavior
	behavior.Set(config.IncludeGenerated, true)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(NewBehaviorValue(&behavior, config.IncludeGenerated), "generated", "check generated files")

	const expectedUsage = `
  -generated
    	check generated files (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}

func TestExtensionsFlag(t *testing.T) {
	t.Parallel()

	a := New()

	f := a.Flags.Lookup("extensions")
	if f == nil {
		t.Fatal("Expected extensions flag")
	}

	if got, want := f.Value.String(), ".js,.mjs,.cjs"; got != want {
		t.Errorf("Default extensions = %q, want %q", got, want)
	}

	if err := a.Flags.Set("extensions", ".js, .jsx"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if got, want := f.Value.String(), ".js,.jsx"; got != want {
		t.Errorf("Extensions = %q, want %q", got, want)
	}

	if err := a.Flags.Set("extensions", "js"); err == nil {
		t.Error("Expected error for extension without dot")
	}
}
