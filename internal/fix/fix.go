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

// Package fix applies suggested fixes to source text.
package fix

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"
)

// ErrOutOfRange is returned for edits outside of the file they are positioned in.
var ErrOutOfRange = errors.New("edit out of range")

// Edit replaces the source bytes [Start, End) with NewText.
type Edit struct {
	Start, End int
	NewText    []byte
}

// Edits extracts the text edits of the first suggested fix of every diagnostic.
func Edits(file *token.File, diagnostics []analysis.Diagnostic) ([]Edit, error) {
	var edits []Edit

	for _, d := range diagnostics {
		if len(d.SuggestedFixes) == 0 {
			continue
		}

		for _, te := range d.SuggestedFixes[0].TextEdits {
			end := te.End
			if !end.IsValid() {
				end = te.Pos
			}

			if !inFile(file, te.Pos) || !inFile(file, end) || end < te.Pos {
				return nil, fmt.Errorf("%w: %s at %d-%d", ErrOutOfRange, file.Name(), te.Pos, end)
			}

			edits = append(edits, Edit{Start: file.Offset(te.Pos), End: file.Offset(end), NewText: te.NewText})
		}
	}

	return edits, nil
}

func inFile(file *token.File, pos token.Pos) bool {
	return pos.IsValid() && file.Base() <= int(pos) && int(pos) <= file.Base()+file.Size()
}

// Apply applies edits to src and returns the result with the number of edits skipped.
//
// Edits are applied in source order. An edit starting inside a previously applied edit
// or at the same position is skipped and left for a later pass. Exact duplicates are applied once.
func Apply(src []byte, edits []Edit) ([]byte, int) {
	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b Edit) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}

		return cmp.Compare(a.End, b.End)
	})

	var (
		out     bytes.Buffer
		last    = -1
		lastEnd = 0
		skipped = 0
		prev    *Edit
	)

	out.Grow(len(src))

	for i := range sorted {
		e := &sorted[i]

		if prev != nil && e.Start == prev.Start && e.End == prev.End && bytes.Equal(e.NewText, prev.NewText) {
			continue
		}

		if e.Start < lastEnd || e.Start == last {
			skipped++
			continue
		}

		out.Write(src[lastEnd:e.Start]) // ignore error
		out.Write(e.NewText)            // ignore error

		last, lastEnd, prev = e.Start, e.End, e
	}

	out.Write(src[lastEnd:]) // ignore error

	return out.Bytes(), skipped
}
