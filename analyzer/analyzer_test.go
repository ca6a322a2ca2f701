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
	"fmt"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	. "fillmore-labs.com/dollarsign/analyzer"
)

// recorder collects the complaints of [analysistest.Run] about diagnostics without expectations,
// since expectations can not be placed in JavaScript files.
type recorder struct {
	mu     sync.Mutex
	errors []string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()
	pkgdir := filepath.Join(testdata, "web")

	tests := []struct {
		name    string
		options Option
		want    []string
	}{
		{
			name: "Default",
			want: []string{
				"app.js:1:5 fix",
				"app.js:2:1 fix",
				"app.js:3:6",
				"static/menu.mjs:1:14",
				"web.go:13:1",
			},
		},
		{
			name:    "IgnoreProperties",
			options: WithIgnoreProperties(true),
			want: []string{
				"app.js:1:5 fix",
				"app.js:2:1 fix",
				"static/menu.mjs:1:14",
				"web.go:13:1",
			},
		},
		{
			name:    "Generated",
			options: Options{WithGenerated(true), WithIgnoreProperties(false)},
			want: []string{
				"app.js:1:5 fix",
				"app.js:2:1 fix",
				"app.js:3:6",
				"static/gen.js:2:5",
				"static/menu.mjs:1:14",
				"web.go:13:1",
			},
		},
		{
			name:    "Extensions",
			options: WithExtensions(".mjs"),
			want: []string{
				"static/menu.mjs:1:14",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var rec recorder

			results := analysistest.Run(&rec, testdata, New(tt.options), "./web")
			if len(results) == 0 {
				t.Fatalf("No results: %v", rec.errors)
			}

			var got []string
			for _, result := range results {
				if result.Err != nil {
					t.Fatalf("Analysis failed: %v", result.Err)
				}

				for _, d := range result.Diagnostics {
					posn := result.Pass.Fset.Position(d.Pos)

					name, err := filepath.Rel(pkgdir, posn.Filename)
					if err != nil {
						t.Fatalf("Unexpected diagnostic position %v: %v", posn, err)
					}

					entry := fmt.Sprintf("%s:%d:%d", filepath.ToSlash(name), posn.Line, posn.Column)
					if len(d.SuggestedFixes) > 0 {
						entry += " fix"
					}

					got = append(got, entry)
				}
			}

			slices.Sort(got)

			if !slices.Equal(got, tt.want) {
				t.Errorf("Expected diagnostics %q, got %q", tt.want, got)
			}
		})
	}
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{WithIgnoreProperties(true), nil, Options{WithGenerated(false)}}

	const want = "[ignoreProperties=true nil=<nil> generated=false]"
	if got := opts.LogValue().String(); got != want {
		t.Errorf("LogValue() = %q, want %q", got, want)
	}
}
