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

package rule

import (
	sitter "github.com/smacker/go-tree-sitter"

	. "fillmore-labs.com/dollarsign/internal/syntax"
)

// SiteKind classifies the construct a [Site] was extracted from.
type SiteKind uint8

//go:generate go tool stringer -type SiteKind -linecomment
const (
	PlainDeclaration SiteKind = iota // declaration
	Assignment                       // assignment
	ObjectProperty                   // property
)

// Site is a place where a name receives a value.
type Site struct {
	Kind SiteKind
	// Left is the receiving node: an identifier, a member expression or an object key.
	Left *sitter.Node
	// Anchor is the last token of Left, where diagnostics are positioned.
	Anchor *sitter.Node
	// Right is the assigned value, nil for declarations without initializer.
	Right *sitter.Node
	// Name is the checked name, the property name for member targets.
	Name string
}

// IsIdentifier reports whether the site binds a plain identifier.
func (s Site) IsIdentifier() bool {
	return s.Kind != ObjectProperty && KindOf(s.Left) == KindIdentifier
}

// DeclaratorSite extracts the site of a variable declarator.
// Destructuring declarations yield no site.
func DeclaratorSite(src []byte, n *sitter.Node) (Site, bool) {
	name := Field(n, "name")
	if KindOf(name) != KindIdentifier {
		return Site{}, false
	}

	return Site{
		Kind:   PlainDeclaration,
		Left:   name,
		Anchor: name,
		Right:  Field(n, "value"),
		Name:   Text(name, src),
	}, true
}

// AssignmentSite extracts the site of an assignment expression.
//
// Subscript targets and destructuring patterns yield no site, member targets
// only when properties are checked.
func AssignmentSite(src []byte, n *sitter.Node, ignoreProperties bool) (Site, bool) {
	left := Unparen(Field(n, "left"))
	site := Site{Kind: Assignment, Left: left, Right: Field(n, "right")}

	switch KindOf(left) {
	case KindIdentifier:
		site.Name = Text(left, src)

	case KindMemberExpression:
		if ignoreProperties {
			return Site{}, false
		}

		property := Field(left, "property")
		if KindOf(property) != KindPropertyIdentifier {
			return Site{}, false
		}

		site.Name = Text(property, src)

	default:
		return Site{}, false
	}

	site.Anchor = LastToken(left)

	return site, true
}

// ObjectSites extracts the sites of an object literal's properties.
// Keys without a static identifier name are skipped.
func ObjectSites(src []byte, n *sitter.Node) []Site {
	var sites []Site

	for pair := range NamedChildren(n) {
		if KindOf(pair) != KindPair {
			continue
		}

		key := Field(pair, "key")
		if KindOf(key) != KindPropertyIdentifier {
			continue
		}

		sites = append(sites, Site{
			Kind:   ObjectProperty,
			Left:   key,
			Anchor: key,
			Right:  Field(pair, "value"),
			Name:   Text(key, src),
		})
	}

	return sites
}
