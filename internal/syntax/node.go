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

package syntax

import (
	"iter"

	sitter "github.com/smacker/go-tree-sitter"
)

// NamedChildren yields the named children of a node, skipping comments.
func NamedChildren(n *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		if n == nil {
			return
		}

		for i := range int(n.NamedChildCount()) {
			c := n.NamedChild(i)
			if c == nil || KindOf(c) == KindComment {
				continue
			}

			if !yield(c) {
				return
			}
		}
	}
}

// Field returns the child for a field name, nil when absent.
func Field(n *sitter.Node, name string) *sitter.Node {
	if n == nil {
		return nil
	}

	return n.ChildByFieldName(name)
}

// Unparen strips enclosing parentheses from an expression.
func Unparen(n *sitter.Node) *sitter.Node {
	for KindOf(n) == KindParenthesizedExpression {
		var inner *sitter.Node
		for c := range NamedChildren(n) {
			inner = c
			break
		}

		if inner == nil {
			return n
		}

		n = inner
	}

	return n
}

// LastToken returns the last source token belonging to a node.
//
// For a member access `a.b.c` this is the property `c`.
func LastToken(n *sitter.Node) *sitter.Node {
	for n != nil {
		var last *sitter.Node
		for i := int(n.ChildCount()) - 1; i >= 0; i-- {
			if c := n.Child(i); c != nil && KindOf(c) != KindComment {
				last = c
				break
			}
		}

		if last == nil {
			return n
		}

		n = last
	}

	return nil
}

// Keyword returns the leading declaration keyword ("var", "let" or "const") of a declaration
// or for-in head, or the empty string when there is none.
func Keyword(n *sitter.Node) string {
	if n == nil {
		return ""
	}

	for i := range int(n.ChildCount()) {
		c := n.Child(i)
		if c == nil || c.IsNamed() {
			continue
		}

		switch t := c.Type(); t {
		case "var", "let", "const":
			return t
		}
	}

	return ""
}

// Text returns the source text of a node.
func Text(n *sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}

	return n.Content(src)
}

// Same reports whether two nodes denote the same syntax node.
func Same(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}
