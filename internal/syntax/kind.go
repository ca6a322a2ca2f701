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

import sitter "github.com/smacker/go-tree-sitter"

// Kind is the tagged variant over the tree-sitter JavaScript node types the checker distinguishes.
//
// The line comments are the tree-sitter type names.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	KindOther Kind = iota // other

	KindProgram    // program
	KindComment    // comment
	KindIdentifier // identifier
	KindString     // string
	KindNumber     // number

	KindPropertyIdentifier                 // property_identifier
	KindPrivatePropertyIdentifier          // private_property_identifier
	KindShorthandPropertyIdentifier        // shorthand_property_identifier
	KindShorthandPropertyIdentifierPattern // shorthand_property_identifier_pattern

	KindVariableDeclaration // variable_declaration
	KindLexicalDeclaration  // lexical_declaration
	KindVariableDeclarator  // variable_declarator

	KindAssignmentExpression          // assignment_expression
	KindAugmentedAssignmentExpression // augmented_assignment_expression
	KindUpdateExpression              // update_expression
	KindMemberExpression              // member_expression
	KindSubscriptExpression           // subscript_expression
	KindCallExpression                // call_expression
	KindParenthesizedExpression       // parenthesized_expression

	KindObject               // object
	KindPair                 // pair
	KindComputedPropertyName // computed_property_name

	KindObjectPattern           // object_pattern
	KindArrayPattern            // array_pattern
	KindPairPattern             // pair_pattern
	KindAssignmentPattern       // assignment_pattern
	KindObjectAssignmentPattern // object_assignment_pattern
	KindRestPattern             // rest_pattern

	KindFunctionDeclaration          // function_declaration
	KindGeneratorFunctionDeclaration // generator_function_declaration
	KindFunctionExpression           // function_expression
	KindGeneratorFunction            // generator_function
	KindArrowFunction                // arrow_function
	KindMethodDefinition             // method_definition
	KindFormalParameters             // formal_parameters
	KindClassDeclaration             // class_declaration
	KindClass                        // class

	KindStatementBlock // statement_block
	KindForStatement   // for_statement
	KindForInStatement // for_in_statement
	KindCatchClause    // catch_clause
	KindSwitchBody     // switch_body

	KindImportStatement // import_statement
	KindImportClause    // import_clause
	KindNamespaceImport // namespace_import
	KindNamedImports    // named_imports
	KindImportSpecifier // import_specifier
	KindExportStatement // export_statement
	KindExportClause    // export_clause
	KindExportSpecifier // export_specifier

	numKinds int = iota
)

// kindByType maps tree-sitter type names to their [Kind].
var kindByType = func() map[string]Kind {
	m := make(map[string]Kind, numKinds+1)
	for k := range Kind(numKinds) {
		m[k.String()] = k
	}

	// Older grammar versions name function expressions "function".
	m["function"] = KindFunctionExpression

	return m
}()

// KindOf returns the [Kind] of a node, [KindOther] for types the checker does not distinguish.
func KindOf(n *sitter.Node) Kind {
	if n == nil {
		return KindOther
	}

	return kindByType[n.Type()]
}

// IsPattern reports whether the kind is a destructuring pattern.
func (i Kind) IsPattern() bool {
	return i == KindObjectPattern || i == KindArrayPattern
}

// IsFunction reports whether the kind introduces a function scope.
func (i Kind) IsFunction() bool {
	switch i {
	case KindFunctionDeclaration, KindGeneratorFunctionDeclaration,
		KindFunctionExpression, KindGeneratorFunction,
		KindArrowFunction, KindMethodDefinition:
		return true

	default:
		return false
	}
}
