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

// Package rule implements the jQuery naming rule: names receiving the result of a call
// to `$` must start with `$` or `_$`.
package rule

import (
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/dollarsign/internal/astutil"
	"fillmore-labs.com/dollarsign/internal/config"
	"fillmore-labs.com/dollarsign/internal/scope"
	"fillmore-labs.com/dollarsign/internal/syntax"
)

const (
	// Name is the rule identifier, used as diagnostic category.
	Name = "dollar-sign"

	// Message is the diagnostic message.
	Message = "jQuery identifiers must start with a $"

	// OptionIgnoreProperties is the only accepted rule option.
	OptionIgnoreProperties = "ignoreProperties"
)

// ErrInvalidOption is returned for rule options outside the schema.
var ErrInvalidOption = errors.New("invalid option")

// ParseOptions validates the positional rule options and converts them to a [config.Behavior].
// At most one option is accepted, and it must be [OptionIgnoreProperties].
func ParseOptions(options []string) (config.Behavior, error) {
	behavior := config.DefaultBehavior()

	switch len(options) {
	case 0:

	case 1:
		if options[0] != OptionIgnoreProperties {
			return behavior, fmt.Errorf("%w %q, expected %q", ErrInvalidOption, options[0], OptionIgnoreProperties)
		}

		behavior.Enable(config.IgnoreProperties)

	default:
		return behavior, fmt.Errorf("%w: got %d options, expected at most one", ErrInvalidOption, len(options))
	}

	return behavior, nil
}

// Reporter receives the violations found by the rule.
type Reporter interface {
	// Site reports a violation at the anchor of a site that can not be renamed.
	Site(site Site)

	// Binding reports every occurrence of a variable initialized with a jQuery call.
	Binding(v *scope.Variable)
}

// Context is the per-file state handlers operate on.
type Context struct {
	File   astutil.CurrentFile
	Scopes *scope.Manager
	Report Reporter
}

type handler func(ctx *Context, n *sitter.Node)

// Rule dispatches syntax nodes to the handlers of the naming rule.
type Rule struct {
	ignoreProperties bool
	handlers         map[syntax.Kind]handler
}

// New creates a [Rule] for the given behavior.
func New(behavior config.Behavior) *Rule {
	r := &Rule{ignoreProperties: behavior.Enabled(config.IgnoreProperties)}

	r.handlers = map[syntax.Kind]handler{
		syntax.KindVariableDeclarator:            r.declarator,
		syntax.KindAssignmentExpression:          r.assignment,
		syntax.KindAugmentedAssignmentExpression: r.assignment,
	}

	if !r.ignoreProperties {
		r.handlers[syntax.KindObject] = r.object
	}

	return r
}

// Visit checks a single node. Nodes without a handler are ignored.
func (r *Rule) Visit(ctx *Context, n *sitter.Node) {
	if h, ok := r.handlers[syntax.KindOf(n)]; ok {
		h(ctx, n)
	}
}

func (r *Rule) declarator(ctx *Context, n *sitter.Node) {
	if site, ok := DeclaratorSite(ctx.File.Source(), n); ok {
		check(ctx, site)
	}
}

func (r *Rule) assignment(ctx *Context, n *sitter.Node) {
	if site, ok := AssignmentSite(ctx.File.Source(), n, r.ignoreProperties); ok {
		check(ctx, site)
	}
}

func (r *Rule) object(ctx *Context, n *sitter.Node) {
	for _, site := range ObjectSites(ctx.File.Source(), n) {
		check(ctx, site)
	}
}

// check reports a site receiving a jQuery value under a name without prefix.
//
// A site binding a declared variable is reported as a whole variable when it is the first value
// written to it. A later declarator is reported on its own, without fix, unless the first value
// already was a jQuery call and the variable is reported anyway.
func check(ctx *Context, site Site) {
	src := ctx.File.Source()
	if !ShouldFlag(site.Name, site.Right != nil, IsJQueryCall(src, site.Right)) {
		return
	}

	if !site.IsIdentifier() {
		ctx.Report.Site(site)

		return
	}

	v := ctx.Scopes.VariableAt(site.Left)
	if v == nil { // implicit global
		ctx.Report.Site(site)

		return
	}

	first, ok := v.FirstAssignment()
	if ok && syntax.Same(first.Ident, site.Left) {
		ctx.Report.Binding(v)

		return
	}

	if site.Kind == PlainDeclaration && (!ok || !IsJQueryCall(src, first.Value)) {
		ctx.Report.Site(site)
	}
}
