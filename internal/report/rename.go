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

package report

import (
	"slices"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/dollarsign/internal/astutil"
	"fillmore-labs.com/dollarsign/internal/scope"
)

// prefix is inserted in front of every occurrence of a renamed variable.
const prefix = "$"

// Renamer adds the jQuery prefix to variables.
//
// It ensures the prefixed name does not conflict with declarations in the variable's scope hierarchy
// and that the rename does not change object shapes or the exported interface of a module.
type Renamer struct {
	file   astutil.CurrentFile
	scopes *scope.Manager

	// renamed tracks variables that have already been processed to prevent duplicate renaming.
	renamed map[*scope.Variable]struct{}
}

// NewRenamer creates a new [Renamer] instance.
func NewRenamer(file astutil.CurrentFile, scopes *scope.Manager) *Renamer {
	return &Renamer{file: file, scopes: scopes}
}

// Renames generates one zero-width insertion of the prefix for every occurrence.
//
// The edits are returned in the order of the occurrences. The method returns nil if the
// variable can not be renamed safely or has already been renamed.
func (r *Renamer) Renames(v *scope.Variable, occurrences []scope.Occurrence) []analysis.TextEdit {
	if r == nil || len(occurrences) == 0 {
		return nil
	}

	// Has this variable already been renamed?
	if _, ok := r.renamed[v]; ok {
		return nil
	}

	if !r.renamable(v, occurrences) {
		return nil
	}

	edits := make([]analysis.TextEdit, 0, len(occurrences))
	for _, o := range occurrences {
		pos := r.file.Pos(o.Ident)
		edits = append(edits, analysis.TextEdit{Pos: pos, End: pos, NewText: []byte(prefix)})
	}

	// Mark this variable as renamed to prevent duplicate processing
	if r.renamed == nil {
		r.renamed = make(map[*scope.Variable]struct{})
	}
	r.renamed[v] = struct{}{}

	return edits
}

// renamable checks that no occurrence doubles as a property key or an exported name,
// none is suppressed, and the new name is free in the scope hierarchy.
// Variables sharing a declaration with a block function are left alone.
func (r *Renamer) renamable(v *scope.Variable, occurrences []scope.Occurrence) bool {
	if slices.ContainsFunc(v.Defs, func(d scope.Definition) bool { return d.Hoisted }) {
		return false
	}

	for _, o := range occurrences {
		if o.Shorthand || o.Exported {
			return false
		}

		if r.file.NoLintComment(r.file.Line(o.Ident)) {
			return false
		}
	}

	return !r.scopes.Conflicts(v, prefix+v.Name)
}
