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
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/dollarsign/internal/syntax"
)

// jQuery is the name of the function whose results must be assigned to prefixed names.
const jQuery = "$"

// HasPrefix reports whether name already carries the jQuery prefix `$` or `_$`.
func HasPrefix(name string) bool {
	return strings.HasPrefix(strings.TrimPrefix(name, "_"), jQuery)
}

// IsJQueryCall reports whether n is a direct call to the bare identifier `$`.
//
// Only the outermost expression is inspected: `$(".a").val()` is a call to val and
// parenthesized calls are not unwrapped.
func IsJQueryCall(src []byte, n *sitter.Node) bool {
	if syntax.KindOf(n) != syntax.KindCallExpression {
		return false
	}

	callee := syntax.Field(n, "function")

	return syntax.KindOf(callee) == syntax.KindIdentifier && syntax.Text(callee, src) == jQuery
}

// ShouldFlag decides whether a name receiving a value violates the naming rule.
func ShouldFlag(name string, hasRight, rightIsJQueryCall bool) bool {
	if HasPrefix(name) {
		return false
	}

	return hasRight && rightIsJQueryCall
}
