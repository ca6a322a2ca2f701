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
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// ErrSyntax is returned when the source does not parse into an error-free tree.
var ErrSyntax = errors.New("syntax error")

// Parse parses JavaScript source into a tree-sitter tree.
//
// The caller owns the returned tree and must [sitter.Tree.Close] it.
// A tree containing error or missing nodes is closed and reported as [ErrSyntax],
// with the position of the first offending node.
func Parse(ctx context.Context, src []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}

	root := tree.RootNode()
	if !root.HasError() {
		return tree, nil
	}

	defer tree.Close()

	if bad := firstError(root); bad != nil {
		p := bad.StartPoint()

		return nil, fmt.Errorf("%w at %d:%d", ErrSyntax, p.Row+1, p.Column+1)
	}

	return nil, ErrSyntax
}

// firstError finds the first error or missing node in pre-order.
func firstError(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}

	for i := range int(n.ChildCount()) {
		c := n.Child(i)
		if c == nil || !c.HasError() && !c.IsMissing() {
			continue
		}

		if bad := firstError(c); bad != nil {
			return bad
		}
	}

	return nil
}
