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

// Package scope builds the lexical scope model of a JavaScript syntax tree.
//
// It resolves every identifier occurrence to the variable it binds or references,
// honoring var hoisting to function scopes and block scoping of let, const,
// class and block-level function declarations.
package scope

import (
	"cmp"
	"iter"
	"slices"

	sitter "github.com/smacker/go-tree-sitter"
)

// ScopeKind classifies scopes.
type ScopeKind uint8

//go:generate go tool stringer -type ScopeKind -linecomment
const (
	Global   ScopeKind = iota // global
	Function             // function
	Block                // block
	For                  // for
	Catch                // catch
	Class                // class
)

// Scope is a lexical scope.
type Scope struct {
	Kind     ScopeKind
	Node     *sitter.Node
	Parent   *Scope
	Children []*Scope

	variables map[string]*Variable
	order     []*Variable
}

func newScope(kind ScopeKind, node *sitter.Node, parent *Scope) *Scope {
	s := &Scope{Kind: kind, Node: node, Parent: parent}
	if parent != nil {
		parent.Children = append(parent.Children, s)
	}

	return s
}

// Lookup returns the variable declared with name in this scope, nil if none.
func (s *Scope) Lookup(name string) *Variable {
	return s.variables[name]
}

// Variables yields the variables declared in this scope in declaration order.
func (s *Scope) Variables() iter.Seq[*Variable] {
	return slices.Values(s.order)
}

// Contains reports whether inner is s or nested in s.
func (s *Scope) Contains(inner *Scope) bool {
	for p := inner; p != nil; p = p.Parent {
		if p == s {
			return true
		}
	}

	return false
}

// isVarScope reports whether var declarations bind in this scope.
func (s *Scope) isVarScope() bool {
	return s.Kind == Global || s.Kind == Function
}

// declare returns the variable for name in this scope, creating it if needed.
func (s *Scope) declare(name string) *Variable {
	if v, ok := s.variables[name]; ok {
		return v
	}

	if s.variables == nil {
		s.variables = make(map[string]*Variable)
	}

	v := &Variable{Name: name, Scope: s}
	s.variables[name] = v
	s.order = append(s.order, v)

	return v
}

// DefKind classifies variable definitions.
type DefKind uint8

const (
	DefVar DefKind = iota
	DefLet
	DefConst
	DefParameter
	DefFunction
	DefClass
	DefCatch
	DefImport
)

// Definition is a binding occurrence of a variable.
type Definition struct {
	Kind DefKind
	// Ident is the bound identifier token.
	Ident *sitter.Node
	// Node is the declaring construct (declarator, function, parameter list, ...).
	Node *sitter.Node
	// Shorthand marks a shorthand pattern `{ x }`, where the identifier is also a property key.
	Shorthand bool
	// Exported marks a definition inside an export declaration.
	Exported bool
	// Hoisted marks the var scope binding of a function declared in a block.
	// Its identifier is shared with the block binding.
	Hoisted bool
}

// Flags describe how a reference accesses its variable.
type Flags uint8

const (
	// Read marks a reference reading the variable.
	Read Flags = 1 << iota

	// Write marks a reference writing the variable.
	Write
)

// Reference is a non-binding occurrence of an identifier.
type Reference struct {
	Ident *sitter.Node
	Name  string
	Scope *Scope
	Flags Flags
	// Shorthand marks a shorthand property `{ x }` or shorthand pattern, where the identifier is also a key.
	Shorthand bool
	// Export marks a local name in an export clause `export { x }`.
	Export bool
	// Resolved is the referenced variable, nil for implicit globals.
	Resolved *Variable

	value *sitter.Node
}

// IsWrite reports whether the reference writes its variable.
func (r *Reference) IsWrite() bool { return r.Flags&Write != 0 }

// IsRead reports whether the reference reads its variable.
func (r *Reference) IsRead() bool { return r.Flags&Read != 0 }

// Assignment is a value written to a variable, either by a definition or a reference.
type Assignment struct {
	// Ident is the identifier receiving the value.
	Ident *sitter.Node
	// Value is the assigned expression, nil when the value is opaque
	// (functions, classes, imports, destructuring, compound assignment).
	Value *sitter.Node
}

// Variable is a named binding in a scope.
type Variable struct {
	Name       string
	Scope      *Scope
	Defs       []Definition
	References []*Reference

	writes []Assignment
}

// FirstAssignment returns the first value written to the variable in source order.
func (v *Variable) FirstAssignment() (Assignment, bool) {
	if len(v.writes) == 0 {
		return Assignment{}, false
	}

	return slices.MinFunc(v.writes, func(a, b Assignment) int {
		return cmp.Compare(a.Ident.StartByte(), b.Ident.StartByte())
	}), true
}

// Occurrence is a source occurrence of a variable.
type Occurrence struct {
	Ident *sitter.Node
	// Shorthand marks an occurrence that is also an object key.
	Shorthand bool
	// Exported marks an occurrence that determines an exported name.
	Exported bool
}

// Occurrences returns all definitions and references of the variable, ordered by position.
func (v *Variable) Occurrences() []Occurrence {
	occurrences := make([]Occurrence, 0, len(v.Defs)+len(v.References))

	for _, d := range v.Defs {
		occurrences = append(occurrences, Occurrence{Ident: d.Ident, Shorthand: d.Shorthand, Exported: d.Exported})
	}

	for _, r := range v.References {
		occurrences = append(occurrences, Occurrence{Ident: r.Ident, Shorthand: r.Shorthand, Exported: r.Export})
	}

	slices.SortFunc(occurrences, func(a, b Occurrence) int {
		return cmp.Compare(a.Ident.StartByte(), b.Ident.StartByte())
	})

	return slices.CompactFunc(occurrences, func(a, b Occurrence) bool {
		return a.Ident.StartByte() == b.Ident.StartByte()
	})
}
