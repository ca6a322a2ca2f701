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

// Package run executes the checking pipeline for a single JavaScript source.
package run

import (
	"cmp"
	"context"
	"fmt"
	"go/token"
	"runtime/trace"
	"slices"

	sitter "github.com/smacker/go-tree-sitter"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/dollarsign/internal/astutil"
	"fillmore-labs.com/dollarsign/internal/config"
	"fillmore-labs.com/dollarsign/internal/report"
	"fillmore-labs.com/dollarsign/internal/rule"
	"fillmore-labs.com/dollarsign/internal/scope"
	"fillmore-labs.com/dollarsign/internal/syntax"
)

// Check parses src, registers it as name in fset and reports the violations in source order.
//
// Sources that do not parse are returned as an error wrapping [syntax.ErrSyntax].
// Generated files (unless enabled) and files with a leading nolint comment are skipped.
func (o *Options) Check(ctx context.Context, fset *token.FileSet, name string, src []byte, report func(analysis.Diagnostic)) error {
	ctx, task := trace.NewTask(ctx, "DollarSign")
	defer task.End()

	trace.Log(ctx, "file", name)

	tree, err := syntax.Parse(ctx, src)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	defer tree.Close()

	currentFile := astutil.NewCurrentFile(fset, name, src, tree.RootNode())
	if !currentFile.Valid() {
		return fmt.Errorf("%s: file without valid info", name)
	}

	// Skip generated files
	if currentFile.Generated() && !o.Behavior.Enabled(config.IncludeGenerated) {
		return nil
	}

	// Skip files with nolint comment
	if currentFile.NoLint() {
		return nil
	}

	diagnostics := o.check(ctx, currentFile)

	for _, d := range diagnostics {
		report(d)
	}

	return nil
}

func (o *Options) check(ctx context.Context, currentFile astutil.CurrentFile) []analysis.Diagnostic {
	root := currentFile.Root()

	// Stage 1: Resolve declarations and references
	region := trace.StartRegion(ctx, "Scopes")
	scopes := scope.Analyze(root, currentFile.Source())
	region.End()

	var diagnostics []analysis.Diagnostic

	collect := func(d analysis.Diagnostic) { diagnostics = append(diagnostics, d) }

	// Stage 2: Visit all nodes with a rule handler
	fix := o.Fix && !currentFile.Generated()
	rctx := &rule.Context{
		File:   currentFile,
		Scopes: scopes,
		Report: report.New(currentFile, scopes, collect, fix),
	}

	r := rule.New(o.Behavior)

	region = trace.StartRegion(ctx, "Rule")
	_ = sitter.NewNamedIterator(root, sitter.DFSMode).ForEach(func(n *sitter.Node) error {
		r.Visit(rctx, n)

		return nil
	})
	region.End()

	// Stage 3: Order diagnostics by position
	slices.SortStableFunc(diagnostics, func(a, b analysis.Diagnostic) int {
		return cmp.Compare(a.Pos, b.Pos)
	})

	return diagnostics
}
