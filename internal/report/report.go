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

// Package report converts rule violations into diagnostics with suggested fixes.
package report

import (
	sitter "github.com/smacker/go-tree-sitter"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/dollarsign/internal/astutil"
	"fillmore-labs.com/dollarsign/internal/rule"
	"fillmore-labs.com/dollarsign/internal/scope"
)

// Reporter emits diagnostics for the violations found in one file.
type Reporter struct {
	file    astutil.CurrentFile
	report  func(analysis.Diagnostic)
	renamer *Renamer
}

var _ rule.Reporter = (*Reporter)(nil)

// New creates a [Reporter] for file. When fix is false, no suggested fixes are attached.
func New(file astutil.CurrentFile, scopes *scope.Manager, report func(analysis.Diagnostic), fix bool) *Reporter {
	r := &Reporter{file: file, report: report}
	if fix {
		r.renamer = NewRenamer(file, scopes)
	}

	return r
}

// Site reports a violation at the anchor of a site, without suggested fix.
func (r *Reporter) Site(site rule.Site) {
	if site.Anchor == nil {
		astutil.InternalError(r.report, r.file.Span(site.Left), "%s site %q without anchor", site.Kind, site.Name)

		return
	}

	if r.file.NoLintComment(r.file.Line(site.Anchor)) {
		return
	}

	r.report(r.diagnostic(site.Anchor))
}

// Binding reports every occurrence of a variable, each with its own prefix insertion
// when the variable can be renamed.
func (r *Reporter) Binding(v *scope.Variable) {
	occurrences := v.Occurrences()
	edits := r.renamer.Renames(v, occurrences)

	for i, o := range occurrences {
		if r.file.NoLintComment(r.file.Line(o.Ident)) {
			continue
		}

		diagnostic := r.diagnostic(o.Ident)

		if edits != nil {
			diagnostic.SuggestedFixes = []analysis.SuggestedFix{{
				Message:   "Rename to " + prefix + v.Name,
				TextEdits: edits[i : i+1],
			}}
		}

		r.report(diagnostic)
	}
}

func (r *Reporter) diagnostic(n *sitter.Node) analysis.Diagnostic {
	return analysis.Diagnostic{
		Pos:      r.file.Pos(n),
		End:      r.file.End(n),
		Category: rule.Name,
		Message:  rule.Message,
	}
}
