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

// Package testsource provides utilities for parsing JavaScript source code in tests.
//
// It handles the boilerplate of parsing a source fragment, registering it in a
// [token.FileSet] and locating nodes by their text.
package testsource

import (
	"go/token"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/dollarsign/internal/astutil"
	"fillmore-labs.com/dollarsign/internal/syntax"
)

// Filename is the name test sources are registered under.
const Filename = "test.js"

// Parse parses a JavaScript source fragment.
//
// The tree is closed when the test finishes.
//
// Returns:
//   - *token.FileSet: The file set containing the single source file.
//   - astutil.CurrentFile: The registered source file with its syntax tree.
func Parse(tb testing.TB, src string) (*token.FileSet, astutil.CurrentFile) {
	tb.Helper()

	content := []byte(src)

	tree, err := syntax.Parse(tb.Context(), content)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	tb.Cleanup(tree.Close)

	fset := token.NewFileSet()
	file := astutil.NewCurrentFile(fset, Filename, content, tree.RootNode())

	return fset, file
}

// Find returns the nth (0-based) named node of the given kind with the given text.
func Find(tb testing.TB, file astutil.CurrentFile, kind syntax.Kind, text string, nth int) *sitter.Node {
	tb.Helper()

	var found *sitter.Node

	var walk func(n *sitter.Node) bool
	walk = func(n *sitter.Node) bool {
		if syntax.KindOf(n) == kind && file.Text(n) == text {
			if nth == 0 {
				found = n

				return false
			}

			nth--
		}

		for c := range syntax.NamedChildren(n) {
			if !walk(c) {
				return false
			}
		}

		return true
	}

	walk(file.Root())

	if found == nil {
		tb.Fatalf("Can't find %s %q", kind, text)
	}

	return found
}
