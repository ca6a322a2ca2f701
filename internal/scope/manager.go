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

package scope

import (
	"slices"

	sitter "github.com/smacker/go-tree-sitter"
)

// Manager holds the scope model of one syntax tree.
type Manager struct {
	// Global is the outermost scope.
	Global *Scope

	byIdent map[uint32]*Variable
	refs    []*Reference
	through []*Reference
}

// Analyze builds the scope model of root, parsed from src.
func Analyze(root *sitter.Node, src []byte) *Manager {
	m := &Manager{byIdent: make(map[uint32]*Variable)}
	m.Global = newScope(Global, root, nil)

	b := builder{m: m, src: src, cur: m.Global}
	b.children(root)
	b.hoistBlockFunctions()

	m.resolve()

	return m
}

// resolve binds every reference to the innermost visible declaration of its name.
// This runs after the walk, so declarations hoisted past their first use are found.
func (m *Manager) resolve() {
	for _, r := range m.refs {
		for s := r.Scope; s != nil; s = s.Parent {
			v := s.Lookup(r.Name)
			if v == nil {
				continue
			}

			r.Resolved = v
			v.References = append(v.References, r)
			if r.IsWrite() {
				v.writes = append(v.writes, Assignment{Ident: r.Ident, Value: r.value})
			}

			m.byIdent[r.Ident.StartByte()] = v

			break
		}

		if r.Resolved == nil {
			m.through = append(m.through, r)
		}
	}
}

// VariableAt returns the variable an identifier node defines or references, nil for implicit globals.
func (m *Manager) VariableAt(ident *sitter.Node) *Variable {
	if ident == nil {
		return nil
	}

	return m.byIdent[ident.StartByte()]
}

// Through returns the references that resolved to no declaration.
func (m *Manager) Through() []*Reference {
	return slices.Clone(m.through)
}

// Conflicts reports whether renaming v to name could change the meaning of the program:
// name is declared in the scope of v, one of its parents or children, or referenced as an
// implicit global inside the scope of v.
func (m *Manager) Conflicts(v *Variable, name string) bool {
	return checkParents(v.Scope, name) || checkChildren(v.Scope, name) || m.usedAsGlobal(v.Scope, name)
}

// checkParents checks if the name is defined in the scope or any of its parent scopes.
func checkParents(scope *Scope, name string) bool {
	for parent := scope; parent != nil; parent = parent.Parent {
		if parent.Lookup(name) != nil {
			return true
		}
	}

	return false
}

// checkChildren recursively checks if the name is defined in any of the child scopes.
func checkChildren(scope *Scope, name string) bool {
	for _, child := range scope.Children {
		if child.Lookup(name) != nil {
			return true
		}

		if checkChildren(child, name) {
			return true
		}
	}

	return false
}

func (m *Manager) usedAsGlobal(scope *Scope, name string) bool {
	for _, r := range m.through {
		if r.Name == name && scope.Contains(r.Scope) {
			return true
		}
	}

	return false
}
