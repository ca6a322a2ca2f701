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

package fix_test

import (
	"context"
	"errors"
	"go/token"
	"strings"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/dollarsign/internal/fix"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		src         string
		edits       []Edit
		want        string
		wantSkipped int
	}{
		{"none", "var x;", nil, "var x;", 0},
		{"insert", "var x;", []Edit{{Start: 4, End: 4, NewText: []byte("$")}}, "var $x;", 0},
		{
			"unordered",
			"var x; x;",
			[]Edit{{Start: 7, End: 7, NewText: []byte("$")}, {Start: 4, End: 4, NewText: []byte("$")}},
			"var $x; $x;", 0,
		},
		{
			"duplicate",
			"var x;",
			[]Edit{{Start: 4, End: 4, NewText: []byte("$")}, {Start: 4, End: 4, NewText: []byte("$")}},
			"var $x;", 0,
		},
		{
			"same position",
			"var x;",
			[]Edit{{Start: 4, End: 4, NewText: []byte("$")}, {Start: 4, End: 4, NewText: []byte("_")}},
			"var $x;", 1,
		},
		{
			"overlap",
			"var abc;",
			[]Edit{{Start: 4, End: 6, NewText: []byte("x")}, {Start: 5, End: 7, NewText: []byte("y")}},
			"var xc;", 1,
		},
		{
			"adjacent",
			"var abc;",
			[]Edit{{Start: 4, End: 5, NewText: []byte("x")}, {Start: 5, End: 7, NewText: []byte("y")}},
			"var xy;", 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, skipped := Apply([]byte(tt.src), tt.edits)

			if string(got) != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}

			if skipped != tt.wantSkipped {
				t.Errorf("Expected %d skipped edits, got %d", tt.wantSkipped, skipped)
			}
		})
	}
}

func TestEdits(t *testing.T) {
	t.Parallel()

	fset := token.NewFileSet()
	file := fset.AddFile("test.js", -1, 10)

	pos := file.Pos(4)
	diagnostics := []analysis.Diagnostic{
		{Pos: pos, SuggestedFixes: []analysis.SuggestedFix{{TextEdits: []analysis.TextEdit{{Pos: pos, NewText: []byte("$")}}}}},
		{Pos: pos},
	}

	edits, err := Edits(file, diagnostics)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(edits) != 1 || edits[0].Start != 4 || edits[0].End != 4 {
		t.Errorf("Expected one insertion at 4, got %+v", edits)
	}

	outside := []analysis.Diagnostic{
		{SuggestedFixes: []analysis.SuggestedFix{{TextEdits: []analysis.TextEdit{{Pos: file.Pos(4) + 100}}}}},
	}

	if _, err := Edits(file, outside); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange, got %v", err)
	}
}

// prefixLint reports a fix for the first occurrence of "x" not preceded by "$".
func prefixLint(_ context.Context, src []byte) (*token.File, []analysis.Diagnostic, error) {
	fset := token.NewFileSet()
	file := fset.AddFile("test.js", -1, len(src))

	s := string(src)
	for i := range len(s) {
		if s[i] != 'x' || i > 0 && s[i-1] == '$' {
			continue
		}

		pos := file.Pos(i)

		return file, []analysis.Diagnostic{{
			Pos:            pos,
			SuggestedFixes: []analysis.SuggestedFix{{TextEdits: []analysis.TextEdit{{Pos: pos, End: pos, NewText: []byte("$")}}}},
		}}, nil
	}

	return file, nil, nil
}

func TestConverge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		src        string
		maxPasses  int
		want       string
		wantPasses int
		wantLeft   int
	}{
		{"clean", "var y;", 0, "var y;", 0, 0},
		{"one pass", "var x;", 0, "var $x;", 1, 0},
		{"three passes", "x x x", 0, "$x $x $x", 3, 0},
		{"bounded", "x x x", 2, "$x $x x", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Converge(t.Context(), []byte(tt.src), prefixLint, tt.maxPasses)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if got := string(result.Output); got != tt.want {
				t.Errorf("Expected output %q, got %q", tt.want, got)
			}

			if result.Passes != tt.wantPasses {
				t.Errorf("Expected %d passes, got %d", tt.wantPasses, result.Passes)
			}

			if got := len(result.Diagnostics); got != tt.wantLeft {
				t.Errorf("Expected %d remaining diagnostics, got %d", tt.wantLeft, got)
			}

			if result.Changed() != (tt.wantPasses > 0) {
				t.Errorf("Expected Changed %t", tt.wantPasses > 0)
			}
		})
	}
}

func TestConvergeCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if _, err := Converge(ctx, []byte("var x;"), prefixLint, 0); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{"valid", "var $x = $();", false},
		{"module", "export var x = 1;\nimport y from 'y';", false},
		{"invalid", "var $x = ;", true},
		{"unterminated", "var s = 'abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate("test.js", []byte(tt.src))

			if !tt.wantErr {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}

				return
			}

			if !errors.Is(err, ErrInvalidOutput) {
				t.Fatalf("Expected ErrInvalidOutput, got %v", err)
			}

			if !strings.Contains(err.Error(), "test.js:1:") {
				t.Errorf("Expected position in %q", err)
			}
		})
	}
}
