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

package fix

import (
	"context"
	"go/token"

	"golang.org/x/tools/go/analysis"
)

// DefaultMaxPasses bounds the number of fix passes.
const DefaultMaxPasses = 10

// Lint checks a source and returns its diagnostics together with the file they are positioned in.
type Lint func(ctx context.Context, src []byte) (*token.File, []analysis.Diagnostic, error)

// Result is the outcome of [Converge].
type Result struct {
	// Output is the fixed source.
	Output []byte

	// Passes is the number of passes that applied edits.
	Passes int

	// Skipped is the number of conflicting edits in the last pass that applied edits.
	Skipped int

	// File and Diagnostics hold the remaining diagnostics of Output.
	File        *token.File
	Diagnostics []analysis.Diagnostic
}

// Changed reports whether any edit has been applied.
func (r Result) Changed() bool {
	return r.Passes > 0
}

// Converge repeatedly lints src and applies the suggested fixes until a pass produces
// no edits or maxPasses passes have been applied.
func Converge(ctx context.Context, src []byte, lint Lint, maxPasses int) (Result, error) {
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}

	result := Result{Output: src}

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		file, diagnostics, err := lint(ctx, result.Output)
		if err != nil {
			return result, err
		}

		result.File, result.Diagnostics = file, diagnostics

		if result.Passes == maxPasses {
			return result, nil
		}

		edits, err := Edits(file, diagnostics)
		if err != nil {
			return result, err
		}

		if len(edits) == 0 {
			return result, nil
		}

		result.Output, result.Skipped = Apply(result.Output, edits)
		result.Passes++
	}
}
