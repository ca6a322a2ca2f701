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

package cli

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/dollarsign/internal/fix"
	"fillmore-labs.com/dollarsign/internal/rule"
	"fillmore-labs.com/dollarsign/internal/run"
)

// Issue is a reported violation.
type Issue struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
	Rule    string `json:"rule"`
	Fixable bool   `json:"fixable"`
}

// Result is the outcome of linting a single file.
type Result struct {
	File   string
	Issues []Issue
	// Fixed marks a file rewritten by the fix command.
	Fixed bool
	Err   error
}

// linter lints JavaScript sources.
type linter struct {
	opts      *run.Options
	maxPasses int
	logger    *slog.Logger
}

// lint checks a single source and returns the diagnostics together with the file they refer to.
func (l *linter) lint(ctx context.Context, name string, src []byte) (*token.File, []analysis.Diagnostic, error) {
	fset := token.NewFileSet()

	var diagnostics []analysis.Diagnostic

	err := l.opts.Check(ctx, fset, name, src, func(d analysis.Diagnostic) {
		diagnostics = append(diagnostics, d)
	})
	if err != nil {
		return nil, nil, err
	}

	var file *token.File

	fset.Iterate(func(f *token.File) bool {
		file = f

		return false
	})

	return file, diagnostics, nil
}

// issues converts diagnostics to issues.
func issues(name string, file *token.File, diagnostics []analysis.Diagnostic) []Issue {
	if len(diagnostics) == 0 {
		return nil
	}

	result := make([]Issue, 0, len(diagnostics))

	for _, d := range diagnostics {
		pos := file.Position(d.Pos)

		result = append(result, Issue{
			File:    name,
			Line:    pos.Line,
			Column:  pos.Column,
			Message: d.Message,
			Rule:    rule.Name,
			Fixable: len(d.SuggestedFixes) > 0,
		})
	}

	return result
}

// checkFile lints the file at path.
func (l *linter) checkFile(ctx context.Context, path string) Result {
	src, err := os.ReadFile(path)
	if err != nil {
		return Result{File: path, Err: err}
	}

	file, diagnostics, err := l.lint(ctx, path, src)
	if err != nil {
		return Result{File: path, Err: err}
	}

	l.logger.DebugContext(ctx, "Checked file", slog.String("file", path), slog.Int("issues", len(diagnostics)))

	return Result{File: path, Issues: issues(path, file, diagnostics)}
}

// fixFile applies fixes to the file at path until no more edits apply.
// With write disabled the fixed source is returned but not stored.
func (l *linter) fixFile(ctx context.Context, path string, write bool) (Result, []byte, []byte) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Result{File: path, Err: err}, nil, nil
	}

	converged, err := fix.Converge(ctx, src, func(ctx context.Context, src []byte) (*token.File, []analysis.Diagnostic, error) {
		return l.lint(ctx, path, src)
	}, l.maxPasses)
	if err != nil {
		return Result{File: path, Err: err}, src, nil
	}

	result := Result{File: path, Issues: issues(path, converged.File, converged.Diagnostics)}

	if !converged.Changed() {
		return result, src, src
	}

	l.logger.DebugContext(ctx, "Fixed file",
		slog.String("file", path),
		slog.Int("passes", converged.Passes),
		slog.Int("skipped", converged.Skipped))

	if err := fix.Validate(path, converged.Output); err != nil {
		result.Err = err

		return result, src, nil
	}

	if write {
		if err := writeFile(path, converged.Output); err != nil {
			result.Err = err

			return result, src, nil
		}
	}

	result.Fixed = true

	return result, src, converged.Output
}

// writeFile replaces the file at path atomically, keeping its permissions.
func writeFile(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}

	name := tmp.Name()

	_, err = tmp.Write(data)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}

	if err == nil {
		err = os.Chmod(name, info.Mode().Perm())
	}

	if err == nil {
		err = os.Rename(name, path)
	}

	if err != nil {
		_ = os.Remove(name)

		return fmt.Errorf("can't write %s: %w", path, err)
	}

	return nil
}

// forEach runs fn for every file in parallel and returns the results in file order.
func forEach(ctx context.Context, files []string, fn func(ctx context.Context, path string) Result) ([]Result, error) {
	results := make([]Result, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = fn(ctx, path)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// ErrIssuesFound is returned when violations remain after checking or fixing.
var ErrIssuesFound = errors.New("issues found")

// ErrCheckFailed is returned when files could not be checked.
var ErrCheckFailed = errors.New("check failed")

// outcome summarizes results into the command error.
func outcome(results []Result) error {
	var failed, found int

	for _, r := range results {
		if r.Err != nil {
			failed++
		}

		found += len(r.Issues)
	}

	switch {
	case failed > 0:
		return fmt.Errorf("%w: %d files with errors", ErrCheckFailed, failed)

	case found > 0:
		return fmt.Errorf("%w: %d", ErrIssuesFound, found)

	default:
		return nil
	}
}
