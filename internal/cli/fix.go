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
	"fmt"
	"io"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
)

// FixOptions holds options for the fix command.
type FixOptions struct {
	Diff bool // Print a unified diff instead of writing files
}

// NewFixCommand creates the fix command.
func NewFixCommand() *cobra.Command {
	opts := &FixOptions{}
	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Rename jQuery identifiers to start with a $",
		Long: `Apply the suggested renames until no more fixes apply.

Files are only rewritten when their content changed and the result still
parses. Violations that can not be fixed safely are reported.`,
		Example: `  # Fix all files in src
  dollarsign fix src

  # Show the changes without writing them
  dollarsign fix --diff src`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Diff, "diff", false, "Print a unified diff instead of writing files")

	return cmd
}

func runFix(cmd *cobra.Command, paths []string, opts *FixOptions) error {
	cc, err := newCommandContext(cmd)
	if err != nil {
		return err
	}

	files, err := cc.filter.files(paths)
	if err != nil {
		return err
	}

	diffs := make([]string, len(files))
	index := make(map[string]int, len(files))

	for i, f := range files {
		index[f] = i
	}

	results, err := forEach(cmd.Context(), files, func(ctx context.Context, path string) Result {
		result, before, after := cc.linter.fixFile(ctx, path, !opts.Diff)
		if opts.Diff && result.Fixed {
			d, err := unifiedDiff(path, before, after)
			if err != nil {
				result.Err = err
			}

			diffs[index[path]] = d
		}

		return result
	})
	if err != nil {
		return err
	}

	fixed := 0

	for _, r := range results {
		if r.Fixed {
			fixed++
			cc.logger.Info("Fixed file", "file", r.File)
		}
	}

	if opts.Diff {
		writeDiffs(cmd.OutOrStdout(), diffs)
	}

	if err := cc.renderer.render(results); err != nil {
		return err
	}

	cc.logger.Info("Fix complete", "files", len(files), "fixed", fixed)

	return outcome(results)
}

func unifiedDiff(path string, before, after []byte) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  3,
	})
}

func writeDiffs(w io.Writer, diffs []string) {
	for _, d := range diffs {
		if d != "" {
			_, _ = fmt.Fprint(w, d)
		}
	}
}
