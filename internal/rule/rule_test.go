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

package rule_test

import (
	"context"
	"errors"
	"go/token"
	"slices"
	"testing"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/dollarsign/internal/config"
	"fillmore-labs.com/dollarsign/internal/fix"
	. "fillmore-labs.com/dollarsign/internal/rule"
	"fillmore-labs.com/dollarsign/internal/run"
)

type position struct{ line, column int }

type invalidCase struct {
	code    string
	options []string
	output  string
	errors  []position
}

func lint(t *testing.T, code string, options []string) fix.Lint {
	t.Helper()

	behavior, err := ParseOptions(options)
	if err != nil {
		t.Fatalf("Invalid options %q: %v", options, err)
	}

	opts := run.DefaultOptions()
	opts.Behavior = behavior

	return func(ctx context.Context, src []byte) (*token.File, []analysis.Diagnostic, error) {
		fset := token.NewFileSet()

		var diagnostics []analysis.Diagnostic
		err := opts.Check(ctx, fset, "test.js", src, func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) })

		var file *token.File
		fset.Iterate(func(f *token.File) bool { file = f; return false })

		return file, diagnostics, err
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code    string
		options []string
	}{
		{code: `var $x = $();`},
		{code: `var _$x = $();`},
		{code: `var x = 2;`},
		{code: `var x;`},
		{code: `var x = function() {};`},
		{code: `var x = fn("foo")`},
		{code: `var a = 1 || 2;`},
		{code: `var a = $func("foo")`},
		{code: `var a = $ + 2`},
		{code: `var a = 1 + 2;`},
		{code: `for (var prop in rawVars) {}`},
		{code: `obj["foo"] = "bar"`},
		{code: `var x = $.extends();`},
		{code: `var $x = $("<p>foo</p>");`},
		{code: `var $x = $(".foo");`},
		{code: `var x = $(".foo").val();`},
		{code: `var x = $(evt.target).val();`},
		{code: "var x = $(\".foo\")\n.val();"},
		{code: `var x = $(".foo").val().toString();`},
		{code: `$x = $(".foo");`},
		{code: `var $x = $(".foo")`},
		{code: `var $x = $('.foo');`},
		{code: "var {beep, boop} = meep;\nvar $s = $(\"#id\")"},
		{code: `var {beep, boop} = $("#id")`},
		{code: `({beep, boop} = $("#id"))`},
		{code: "var [beep, boop] = meep;\nvar $s = $(\"#id\")"},
		{code: `var [beep, boop] = $("#id")`},
		{code: `([beep, boop] = $("#id"))`},
		{code: `var x = 5; x = $(".foo");`},
		{code: `var $x; $x = $(".foo");`},
		{code: `(function(x) {});`},
		{code: `!{"a": true}`},
		{code: `var a = {"a": true};`},
		{code: `var x = { $foo: $() }`},
		{code: `var x = { $foo: $("<p>foo</p>") }`},
		{code: `var $x = { $foo: $("<p>foo</p>") }`},
		{code: `var $x = { $foo: $(".foo") }`},
		{code: `var x = { foo: $(".foo").val() }`},
		{code: "var x = { foo: $(\".foo\")\n.val() }"},
		{code: `var x = { foo: $(".foo").val().toString() }`},
		{code: `this.$x = $();`},
		{code: `this.$x = $("<p>foo</p>");`},
		{code: `this.$x = $(".foo");`},
		{code: `this.x = $(".foo").val();`},
		{code: "this.x = $(\".foo\")\n.val();"},
		{code: `this.x = $(".foo").val().toString();`},
		{code: `this.$x = $(".foo")`},
		{code: `this.$x = $('.foo');`},
		{code: `this.$video = $video;`},
		{code: `w.x = 2;`},
		{code: `w.x = function() {};`},
		{code: `w.a = 1 || 2;`},
		{code: `w.a = w.a || {};`},
		{code: `w.a = 1 + 2;`},
		{code: `a.b.$c = $()`},
		{code: `var $x = $();`, options: []string{OptionIgnoreProperties}},
		{code: `var x = { foo: $() }`, options: []string{OptionIgnoreProperties}},
		{code: `this.x = $();`, options: []string{OptionIgnoreProperties}},
		// additional shapes
		{code: `obj[key] = $()`},
		{code: `var x = ($)();`},
		{code: `var x = ($());`},
		{code: `var x = { [key]: $() }`},
		{code: `var x = { "foo": $(), 1: $() }`},
		{code: `function f(x = $()) { return x; }`},
		{code: `var x = 1; x += $();`},
		{code: `if (a) { function x() {} } x = $();`},
		{code: `var x = $(); // nolint:dollarsign`},
		{code: "// nolint:all\nvar x = $();"},
		{code: "// Code generated by jsgen. DO NOT EDIT.\nvar x = $();"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()

			_, diagnostics, err := lint(t, tt.code, tt.options)(t.Context(), []byte(tt.code))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if len(diagnostics) > 0 {
				t.Errorf("Expected no diagnostics, got %d: first %q at %d", len(diagnostics), diagnostics[0].Message, diagnostics[0].Pos)
			}
		})
	}
}

func TestInvalid(t *testing.T) {
	t.Parallel()

	tests := []invalidCase{
		{code: `var x = $();`, output: `var $x = $();`, errors: []position{{1, 5}}},
		{code: "var a = $(\".foo\")\nvar b = $()", output: "var $a = $(\".foo\")\nvar $b = $()", errors: []position{{1, 5}, {2, 5}}},
		{code: `var x = $("<p>foo</p>");`, output: `var $x = $("<p>foo</p>");`, errors: []position{{1, 5}}},
		{code: `var x = $(".foo");`, output: `var $x = $(".foo");`, errors: []position{{1, 5}}},
		{code: `var {foo} = {foo: $(".foo")}`, output: `var {foo} = {foo: $(".foo")}`, errors: []position{{1, 14}}},
		{code: `var bar, foo = $(".foo");`, output: `var bar, $foo = $(".foo");`, errors: []position{{1, 10}}},
		{code: `var x = { foo: $() }`, output: `var x = { foo: $() }`, errors: []position{{1, 11}}},
		{code: `var x = { foo: $(".foo") }`, output: `var x = { foo: $(".foo") }`, errors: []position{{1, 11}}},
		{code: `var $x = { foo: $('.foo') }`, output: `var $x = { foo: $('.foo') }`, errors: []position{{1, 12}}},
		{code: `var x = { bar: 1, foo: $(".foo") }`, output: `var x = { bar: 1, foo: $(".foo") }`, errors: []position{{1, 19}}},
		{code: `this.x = $();`, output: `this.x = $();`, errors: []position{{1, 6}}},
		{code: `this.x = $("<p>foo</p>");`, output: `this.x = $("<p>foo</p>");`, errors: []position{{1, 6}}},
		{code: `this.x = $(".foo");`, output: `this.x = $(".foo");`, errors: []position{{1, 6}}},
		{code: `a.b.c = $()`, output: `a.b.c = $()`, errors: []position{{1, 5}}},
		{code: `var x = $();`, options: []string{OptionIgnoreProperties}, output: `var $x = $();`, errors: []position{{1, 5}}},
		{
			code:   `var x = $(".foo"); x.bar(); baz(x);`,
			output: `var $x = $(".foo"); $x.bar(); baz($x);`,
			errors: []position{{1, 5}, {1, 20}, {1, 33}},
		},
		{
			code:   `var x = $(".foo"); ({ abc: x }); this.def = x;`,
			output: `var $x = $(".foo"); ({ abc: $x }); this.def = $x;`,
			errors: []position{{1, 5}, {1, 28}, {1, 45}},
		},
		{
			code:   `var x = $(".foo"); ({ x });`,
			output: `var x = $(".foo"); ({ x });`,
			errors: []position{{1, 5}, {1, 23}},
		},
		{
			code:   `var x; (function() { var x = $(); (function() { x; (function() { var x; }); }); });`,
			output: `var x; (function() { var $x = $(); (function() { $x; (function() { var x; }); }); });`,
			errors: []position{{1, 26}, {1, 49}},
		},
		{code: `var x; x = $();`, output: `var $x; $x = $();`, errors: []position{{1, 5}, {1, 8}}},
		// additional shapes
		{code: `x = $();`, output: `x = $();`, errors: []position{{1, 1}}},
		{code: `(x) = $();`, output: `(x) = $();`, errors: []position{{1, 2}}},
		{code: `let x = $(); { x; }`, output: `let $x = $(); { $x; }`, errors: []position{{1, 5}, {1, 16}}},
		{code: `x.y = $(); var x = $();`, output: `$x.y = $(); var $x = $();`, errors: []position{{1, 1}, {1, 3}, {1, 16}}},
		{code: `var x; x += $();`, output: `var $x; $x += $();`, errors: []position{{1, 5}, {1, 8}}},
		{code: `var x = $(); var $x;`, output: `var x = $(); var $x;`, errors: []position{{1, 5}}},
		{code: `var x = $(); function f() { $x(); }`, output: `var x = $(); function f() { $x(); }`, errors: []position{{1, 5}}},
		{code: `export var x = $();`, output: `export var x = $();`, errors: []position{{1, 12}}},
		{code: `var x = $(); export { x };`, output: `var x = $(); export { x };`, errors: []position{{1, 5}, {1, 23}}},
		{code: `var x = $(); export { x as y };`, output: `var $x = $(); export { $x as y };`, errors: []position{{1, 5}, {1, 23}}},
		{code: "var x = $();\nx.show(); // nolint:dollarsign", output: "var x = $();\nx.show(); // nolint:dollarsign", errors: []position{{1, 5}}},
		// redeclarations
		{code: `var x = 5; var x = $();`, output: `var x = 5; var x = $();`, errors: []position{{1, 16}}},
		{code: `x = 1; var x = $();`, output: `x = 1; var x = $();`, errors: []position{{1, 12}}},
		{code: `function x() {} var x = $();`, output: `function x() {} var x = $();`, errors: []position{{1, 21}}},
		{code: `if (a) { function x() {} } var x = $();`, output: `if (a) { function x() {} } var x = $();`, errors: []position{{1, 32}}},
		{code: `var x = $(); var x = $();`, output: `var $x = $(); var $x = $();`, errors: []position{{1, 5}, {1, 18}}},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()

			lintFn := lint(t, tt.code, tt.options)

			file, diagnostics, err := lintFn(t.Context(), []byte(tt.code))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			got := make([]position, 0, len(diagnostics))
			for _, d := range diagnostics {
				if d.Message != Message {
					t.Errorf("Expected message %q, got %q", Message, d.Message)
				}

				if d.Category != Name {
					t.Errorf("Expected category %q, got %q", Name, d.Category)
				}

				p := file.Position(d.Pos)
				got = append(got, position{p.Line, p.Column})
			}

			if !slices.Equal(got, tt.errors) {
				t.Errorf("Expected errors at %v, got %v", tt.errors, got)
			}

			result, err := fix.Converge(t.Context(), []byte(tt.code), lintFn, fix.DefaultMaxPasses)
			if err != nil {
				t.Fatalf("Fix failed: %v", err)
			}

			if output := string(result.Output); output != tt.output {
				t.Errorf("Expected output %q, got %q", tt.output, output)
			}

			_, remaining, err := lintFn(t.Context(), result.Output)
			if err != nil {
				t.Fatalf("Unexpected error linting fixed output: %v", err)
			}

			for _, d := range remaining {
				if len(d.SuggestedFixes) > 0 {
					t.Errorf("Expected no fixable diagnostics after fixing, got one at %d", d.Pos)
				}
			}
		})
	}
}

func TestParseOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options []string
		ignore  bool
		wantErr bool
	}{
		{"none", nil, false, false},
		{"ignoreProperties", []string{"ignoreProperties"}, true, false},
		{"unknown", []string{"ignoreMethods"}, false, true},
		{"too many", []string{"ignoreProperties", "ignoreProperties"}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			behavior, err := ParseOptions(tt.options)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidOption) {
					t.Errorf("Expected ErrInvalidOption, got %v", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if got := behavior.Enabled(config.IgnoreProperties); got != tt.ignore {
				t.Errorf("Expected IgnoreProperties %t, got %t", tt.ignore, got)
			}
		})
	}
}
