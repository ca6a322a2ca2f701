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

package analyzer

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"os"
	"path/filepath"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/dollarsign/internal/astutil"
	"fillmore-labs.com/dollarsign/internal/run"
	"fillmore-labs.com/dollarsign/internal/syntax"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// run executes the dollarsign analyzer's pipeline.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("dollarsign: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "DollarSign")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	checker := run.Options{Behavior: r.behavior, Fix: true}

	// Embedded files are checked once, even when embedded multiple times
	seen := make(map[string]struct{})

	for c := range in.Root().Preorder((*ast.File)(nil)) {
		file := c.Node().(*ast.File)

		handle := p.Fset.File(file.FileStart)
		if handle == nil {
			astutil.InternalError(p.Report, file, "File %s without file info", file.Name.Name)

			continue
		}

		dir := filepath.Dir(handle.Name())

		for _, directive := range embedDirectives(file) {
			paths, err := r.embeddedFiles(dir, directive.patterns)
			if err != nil {
				continue // reported by the compiler
			}

			for _, path := range paths {
				if _, ok := seen[path]; ok {
					continue
				}
				seen[path] = struct{}{}

				if err := r.checkFile(ctx, p, &checker, directive.comment, path); err != nil {
					return nil, err
				}
			}
		}
	}

	return nil, nil
}

// checkFile checks a single embedded file. Syntax errors are reported at the embedding directive.
func (r *runOptions) checkFile(ctx context.Context, p *analysis.Pass, checker *run.Options, directive *ast.Comment, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("dollarsign: %w", err)
	}

	err = checker.Check(ctx, p.Fset, path, src, p.Report)
	if errors.Is(err, syntax.ErrSyntax) {
		p.Report(analysis.Diagnostic{
			Pos:     directive.Pos(),
			End:     directive.End(),
			Message: fmt.Sprintf("Can't check embedded file: %v", err),
		})

		return nil
	}

	return err
}
