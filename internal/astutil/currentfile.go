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

package astutil

import (
	"go/token"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/dollarsign/internal/syntax"
)

// dollarsign is the name of the linter.
const dollarsign = "dollarsign"

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	src       []byte
	root      *sitter.Node
	handle    *token.File
	generated bool
	nolint    bool
	noLines   map[int]struct{}
}

// NewCurrentFile registers a JavaScript source in the [token.FileSet] and creates a new [CurrentFile]
// for its parsed tree.
func NewCurrentFile(fset *token.FileSet, name string, src []byte, root *sitter.Node) CurrentFile {
	if fset == nil || root == nil {
		return CurrentFile{}
	}

	handle := fset.AddFile(name, -1, len(src))
	handle.SetLinesForContent(src)

	c := CurrentFile{src: src, root: root, handle: handle}
	c.scanComments()

	return c
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Name returns the file name.
func (c CurrentFile) Name() string {
	return c.handle.Name()
}

// Source returns the file content.
func (c CurrentFile) Source() []byte {
	return c.src
}

// Root returns the root of the syntax tree.
func (c CurrentFile) Root() *sitter.Node {
	return c.root
}

// Handle returns the [token.File] of this file.
func (c CurrentFile) Handle() *token.File {
	return c.handle
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// NoLint returns true if the file carries a leading nolint:dollarsign comment.
func (c CurrentFile) NoLint() bool {
	return c.nolint
}

// Pos returns the position of the first byte of a node.
func (c CurrentFile) Pos(n *sitter.Node) token.Pos {
	return c.handle.Pos(int(n.StartByte()))
}

// End returns the position immediately after a node.
func (c CurrentFile) End(n *sitter.Node) token.Pos {
	return c.handle.Pos(int(n.EndByte()))
}

// Text returns the source text of a node.
func (c CurrentFile) Text(n *sitter.Node) string {
	return syntax.Text(n, c.src)
}

// Span is a source range satisfying [analysis.Range].
type Span struct{ pos, end token.Pos }

// Pos implements [analysis.Range].
func (s Span) Pos() token.Pos { return s.pos }

// End implements [analysis.Range].
func (s Span) End() token.Pos { return s.end }

// Span returns the source range of a node.
func (c CurrentFile) Span(n *sitter.Node) Span {
	return Span{c.Pos(n), c.End(n)}
}

// Line returns the 1-based line of a node.
func (c CurrentFile) Line(n *sitter.Node) int {
	return int(n.StartPoint().Row) + 1
}

// NoLintComment checks if a line carries a nolint:dollarsign comment.
func (c CurrentFile) NoLintComment(line int) bool {
	_, ok := c.noLines[line]

	return ok
}

// scanComments records nolint comments and checks the leading comments for
// generated code markers and file-level nolint directives.
func (c *CurrentFile) scanComments() {
	leading := true

	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		for i := range int(n.NamedChildCount()) {
			child := n.NamedChild(i)
			if child == nil {
				continue
			}

			if syntax.KindOf(child) != syntax.KindComment {
				if n == c.root {
					leading = false
				}

				walk(child)

				continue
			}

			text := c.Text(child)

			if CommentHasNoLint(text) {
				if leading {
					c.nolint = true
				}

				if c.noLines == nil {
					c.noLines = make(map[int]struct{})
				}

				c.noLines[int(child.StartPoint().Row)+1] = struct{}{}
			}

			if leading && isGeneratedComment(text) {
				c.generated = true
			}
		}
	}

	walk(c.root)
}

var generatedPattern = regexp.MustCompile(`(?m)^\s*(?://|/?\*)?\s*Code generated .* DO NOT EDIT\.\s*(?:\*/)?\s*$`)

// isGeneratedComment follows the Go convention for generated-file headers.
func isGeneratedComment(text string) bool {
	return generatedPattern.MatchString(text)
}

var nolintPattern = regexp.MustCompile(`^(?://|/\*)\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `// nolint:dollarsign` directive.
func CommentHasNoLint(comment string) bool {
	matches := nolintPattern.FindStringSubmatch(comment)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		switch l := strings.ToLower(strings.TrimSpace(linter)); l {
		case dollarsign, "dollar-sign", "all":
			return true
		}
	}

	return false
}
