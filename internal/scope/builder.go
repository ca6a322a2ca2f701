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
	sitter "github.com/smacker/go-tree-sitter"

	. "fillmore-labs.com/dollarsign/internal/syntax"
)

// builder walks a syntax tree, creating scopes, definitions and unresolved references.
type builder struct {
	m   *Manager
	src []byte
	cur *Scope

	blockFunctions []blockFunction
}

// blockFunction is a function declared in a block, see [builder.hoistBlockFunctions].
type blockFunction struct {
	scope *Scope
	ident *sitter.Node
	node  *sitter.Node
}

// binding is the shared part of the definitions created by one declaration.
type binding struct {
	scope    *Scope
	kind     DefKind
	node     *sitter.Node
	exported bool
}

// push enters a new scope and returns the function to leave it.
func (b *builder) push(kind ScopeKind, n *sitter.Node) func() {
	s := newScope(kind, n, b.cur)
	b.cur = s

	return func() { b.cur = s.Parent }
}

// varScope returns the scope var declarations bind in.
func (b *builder) varScope() *Scope {
	s := b.cur
	for !s.isVarScope() {
		s = s.Parent
	}

	return s
}

func (b *builder) children(n *sitter.Node) {
	for c := range NamedChildren(n) {
		b.visit(c)
	}
}

func (b *builder) visit(n *sitter.Node) {
	switch KindOf(n) {
	case KindIdentifier:
		b.reference(n, Read, false, false)

	case KindShorthandPropertyIdentifier:
		b.reference(n, Read, true, false)

	case KindVariableDeclaration, KindLexicalDeclaration:
		b.declaration(n, false)

	case KindFunctionDeclaration, KindGeneratorFunctionDeclaration:
		b.functionDeclaration(n, false)

	case KindFunctionExpression, KindGeneratorFunction, KindArrowFunction, KindMethodDefinition:
		b.function(n)

	case KindClassDeclaration:
		b.classDeclaration(n, false)

	case KindClass:
		b.class(n)

	case KindStatementBlock, KindSwitchBody:
		defer b.push(Block, n)()
		b.children(n)

	case KindForStatement:
		defer b.push(For, n)()
		b.children(n)

	case KindForInStatement:
		b.forIn(n)

	case KindCatchClause:
		b.catch(n)

	case KindAssignmentExpression:
		right := Field(n, "right")
		b.target(Field(n, "left"), right, true)
		b.visit(right)

	case KindAugmentedAssignmentExpression:
		b.update(Field(n, "left"))
		b.visit(Field(n, "right"))

	case KindUpdateExpression:
		b.update(Field(n, "argument"))

	case KindImportStatement:
		b.importStatement(n)

	case KindExportStatement:
		b.exportStatement(n)

	case KindPropertyIdentifier, KindPrivatePropertyIdentifier, KindComment, KindString, KindNumber:
		// no identifiers

	default:
		b.children(n)
	}
}

// reference records an identifier occurrence to be resolved after the walk.
func (b *builder) reference(ident *sitter.Node, flags Flags, shorthand, export bool) *Reference {
	r := &Reference{
		Ident:     ident,
		Name:      Text(ident, b.src),
		Scope:     b.cur,
		Flags:     flags,
		Shorthand: shorthand,
		Export:    export,
	}
	b.m.refs = append(b.m.refs, r)

	return r
}

// define adds a definition of ident to the binding scope.
// assigned marks the definition as writing a value, value is nil when that value is opaque.
func (b *builder) define(bd binding, ident *sitter.Node, shorthand bool, value *sitter.Node, assigned bool) {
	v := bd.scope.declare(Text(ident, b.src))
	v.Defs = append(v.Defs, Definition{
		Kind:      bd.kind,
		Ident:     ident,
		Node:      bd.node,
		Shorthand: shorthand,
		Exported:  bd.exported,
	})

	if assigned {
		v.writes = append(v.writes, Assignment{Ident: ident, Value: value})
	}

	b.m.byIdent[ident.StartByte()] = v
}

// bind defines every identifier of a binding pattern.
// Only a top-level identifier receives the value; identifiers nested in patterns receive opaque values.
func (b *builder) bind(bd binding, p, value *sitter.Node, assigned, top bool) {
	switch KindOf(p) {
	case KindIdentifier:
		b.define(bd, p, false, value, assigned)

	case KindShorthandPropertyIdentifierPattern:
		b.define(bd, p, true, nil, assigned)

	case KindObjectPattern:
		for c := range NamedChildren(p) {
			switch KindOf(c) {
			case KindPairPattern:
				if key := Field(c, "key"); KindOf(key) == KindComputedPropertyName {
					b.visit(key)
				}

				b.bind(bd, Field(c, "value"), nil, assigned, false)

			case KindShorthandPropertyIdentifierPattern:
				b.define(bd, c, true, nil, assigned)

			case KindObjectAssignmentPattern:
				b.bind(bd, Field(c, "left"), nil, true, false)
				b.visit(Field(c, "right"))

			case KindRestPattern:
				for r := range NamedChildren(c) {
					b.bind(bd, r, nil, assigned, false)
				}

			default:
				b.visit(c)
			}
		}

	case KindArrayPattern:
		for c := range NamedChildren(p) {
			b.bind(bd, c, nil, assigned, false)
		}

	case KindAssignmentPattern:
		right := Field(p, "right")
		if top {
			b.bind(bd, Field(p, "left"), right, true, true)
		} else {
			b.bind(bd, Field(p, "left"), nil, true, false)
		}

		b.visit(right)

	case KindRestPattern:
		for r := range NamedChildren(p) {
			b.bind(bd, r, nil, assigned, false)
		}

	default:
		b.visit(p)
	}
}

// target records the writes of an assignment target.
// direct targets receive value, nested pattern targets receive opaque values.
func (b *builder) target(n, value *sitter.Node, direct bool) {
	t := Unparen(n)
	switch KindOf(t) {
	case KindIdentifier:
		r := b.reference(t, Write, false, false)
		if direct {
			r.value = value
		}

	case KindObjectPattern:
		for c := range NamedChildren(t) {
			switch KindOf(c) {
			case KindPairPattern:
				if key := Field(c, "key"); KindOf(key) == KindComputedPropertyName {
					b.visit(key)
				}

				b.target(Field(c, "value"), nil, false)

			case KindShorthandPropertyIdentifierPattern:
				b.reference(c, Write, true, false)

			case KindObjectAssignmentPattern:
				if left := Field(c, "left"); KindOf(left) == KindShorthandPropertyIdentifierPattern {
					b.reference(left, Write, true, false)
				} else {
					b.target(left, nil, false)
				}

				b.visit(Field(c, "right"))

			case KindRestPattern:
				for r := range NamedChildren(c) {
					b.target(r, nil, false)
				}

			default:
				b.visit(c)
			}
		}

	case KindArrayPattern, KindRestPattern:
		for c := range NamedChildren(t) {
			b.target(c, nil, false)
		}

	case KindAssignmentPattern:
		b.target(Field(t, "left"), nil, false)
		b.visit(Field(t, "right"))

	default:
		b.visit(t)
	}
}

// update records a read-modify-write of an identifier (`x += 1`, `x++`).
func (b *builder) update(n *sitter.Node) {
	if t := Unparen(n); KindOf(t) == KindIdentifier {
		b.reference(t, Read|Write, false, false)

		return
	}

	b.visit(n)
}

// declaration handles var, let and const declarations.
func (b *builder) declaration(n *sitter.Node, exported bool) {
	bd := binding{scope: b.varScope(), kind: DefVar, node: n, exported: exported}

	switch Keyword(n) {
	case "let":
		bd.scope, bd.kind = b.cur, DefLet

	case "const":
		bd.scope, bd.kind = b.cur, DefConst
	}

	for d := range NamedChildren(n) {
		if KindOf(d) != KindVariableDeclarator {
			b.visit(d)
			continue
		}

		value := Field(d, "value")
		declarator := bd
		declarator.node = d

		b.bind(declarator, Field(d, "name"), value, value != nil, true)
		b.visit(value)
	}
}

func (b *builder) functionDeclaration(n *sitter.Node, exported bool) {
	if name := Field(n, "name"); name != nil {
		b.define(binding{scope: b.cur, kind: DefFunction, node: n, exported: exported}, name, false, nil, true)

		if KindOf(n) == KindFunctionDeclaration && !b.cur.isVarScope() {
			b.blockFunctions = append(b.blockFunctions, blockFunction{scope: b.cur, ident: name, node: n})
		}
	}

	b.function(n)
}

// hoistBlockFunctions binds functions declared in blocks a second time in the enclosing
// var scope, as sloppy mode scripts do, unless a lexical declaration of the same name
// lies in between. The identifier keeps resolving to the block binding.
func (b *builder) hoistBlockFunctions() {
	for _, f := range b.blockFunctions {
		name := Text(f.ident, b.src)

		s := f.scope.Parent
		for ; !s.isVarScope(); s = s.Parent {
			if s.Lookup(name) != nil {
				break
			}
		}

		if !s.isVarScope() || lexical(s.Lookup(name)) {
			continue
		}

		v := s.declare(name)
		v.Defs = append(v.Defs, Definition{Kind: DefFunction, Ident: f.ident, Node: f.node, Hoisted: true})
		v.writes = append(v.writes, Assignment{Ident: f.ident})
	}
}

// lexical reports whether v has a let, const or class definition.
func lexical(v *Variable) bool {
	if v == nil {
		return false
	}

	for _, d := range v.Defs {
		switch d.Kind {
		case DefLet, DefConst, DefClass:
			return true
		}
	}

	return false
}

// function handles the parameters and body of every function form.
func (b *builder) function(n *sitter.Node) {
	kind := KindOf(n)

	if kind == KindMethodDefinition {
		if key := Field(n, "name"); KindOf(key) == KindComputedPropertyName {
			b.visit(key)
		}
	}

	defer b.push(Function, n)()

	if kind == KindFunctionExpression || kind == KindGeneratorFunction {
		if name := Field(n, "name"); name != nil {
			b.define(binding{scope: b.cur, kind: DefFunction, node: n}, name, false, nil, true)
		}
	}

	params := binding{scope: b.cur, kind: DefParameter, node: n}
	if p := Field(n, "parameter"); p != nil {
		b.bind(params, p, nil, false, true)
	}

	for p := range NamedChildren(Field(n, "parameters")) {
		b.bind(params, p, nil, false, true)
	}

	if body := Field(n, "body"); KindOf(body) == KindStatementBlock {
		b.children(body)
	} else {
		b.visit(body)
	}
}

func (b *builder) classDeclaration(n *sitter.Node, exported bool) {
	name := Field(n, "name")
	if name != nil {
		b.define(binding{scope: b.cur, kind: DefClass, node: n, exported: exported}, name, false, nil, true)
	}

	defer b.push(Class, n)()
	b.classBody(n, name)
}

func (b *builder) class(n *sitter.Node) {
	defer b.push(Class, n)()

	name := Field(n, "name")
	if name != nil {
		b.define(binding{scope: b.cur, kind: DefClass, node: n}, name, false, nil, true)
	}

	b.classBody(n, name)
}

func (b *builder) classBody(n, name *sitter.Node) {
	for c := range NamedChildren(n) {
		if Same(c, name) {
			continue
		}

		b.visit(c)
	}
}

func (b *builder) forIn(n *sitter.Node) {
	b.visit(Field(n, "right"))

	defer b.push(For, n)()

	left := Field(n, "left")

	switch Keyword(n) {
	case "var":
		b.bind(binding{scope: b.varScope(), kind: DefVar, node: n}, left, nil, true, false)

	case "let":
		b.bind(binding{scope: b.cur, kind: DefLet, node: n}, left, nil, true, false)

	case "const":
		b.bind(binding{scope: b.cur, kind: DefConst, node: n}, left, nil, true, false)

	default:
		switch KindOf(left) {
		case KindVariableDeclaration, KindLexicalDeclaration:
			b.declaration(left, false)

		default:
			b.target(left, nil, false)
		}
	}

	b.visit(Field(n, "body"))
}

func (b *builder) catch(n *sitter.Node) {
	defer b.push(Catch, n)()

	if p := Field(n, "parameter"); p != nil {
		b.bind(binding{scope: b.cur, kind: DefCatch, node: n}, p, nil, true, false)
	}

	b.children(Field(n, "body"))
}

func (b *builder) importStatement(n *sitter.Node) {
	bd := binding{scope: b.cur, kind: DefImport, node: n}

	for clause := range NamedChildren(n) {
		if KindOf(clause) != KindImportClause {
			continue
		}

		for c := range NamedChildren(clause) {
			switch KindOf(c) {
			case KindIdentifier:
				b.define(bd, c, false, nil, true)

			case KindNamespaceImport:
				for id := range NamedChildren(c) {
					if KindOf(id) == KindIdentifier {
						b.define(bd, id, false, nil, true)
					}
				}

			case KindNamedImports:
				for spec := range NamedChildren(c) {
					if KindOf(spec) != KindImportSpecifier {
						continue
					}

					// Without an alias the local name is also the imported name.
					local, shorthand := Field(spec, "alias"), false
					if local == nil {
						local, shorthand = Field(spec, "name"), true
					}

					if KindOf(local) == KindIdentifier {
						b.define(bd, local, shorthand, nil, true)
					}
				}
			}
		}
	}
}

func (b *builder) exportStatement(n *sitter.Node) {
	if decl := Field(n, "declaration"); decl != nil {
		switch KindOf(decl) {
		case KindVariableDeclaration, KindLexicalDeclaration:
			b.declaration(decl, true)

		case KindFunctionDeclaration, KindGeneratorFunctionDeclaration:
			b.functionDeclaration(decl, true)

		case KindClassDeclaration:
			b.classDeclaration(decl, true)

		default:
			b.visit(decl)
		}

		return
	}

	if Field(n, "source") != nil {
		return // re-export, no local names
	}

	for c := range NamedChildren(n) {
		if KindOf(c) != KindExportClause {
			b.visit(c)
			continue
		}

		for spec := range NamedChildren(c) {
			if KindOf(spec) != KindExportSpecifier {
				continue
			}

			// Without an alias the local name is also the exported name.
			if name := Field(spec, "name"); KindOf(name) == KindIdentifier {
				b.reference(name, Read, false, Field(spec, "alias") == nil)
			}
		}
	}
}
