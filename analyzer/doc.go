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

// Package analyzer implements the dollarsign static analysis pass.
//
// # Overview
//
// dollarsign checks JavaScript files embedded into Go packages with //go:embed
// directives. Names receiving the result of a call to the jQuery function `$`
// must start with `$` or `_$`.
//
// # Example
//
// Before:
//
//	var items = $(".item");
//	items.hide();
//
// After applying dollarsign's suggested fix:
//
//	var $items = $(".item");
//	$items.hide();
//
// The rename is applied to every occurrence of the variable in its scope. Property
// names (`this.items = $()`, `{ items: $() }`) and implicit globals are reported
// without a fix, since renaming them changes the shape of objects visible elsewhere.
//
// # Flags
//
//   - -ignore-properties: do not check property assignments and object literal keys
//   - -generated: also check generated files
//   - -extensions: comma separated extensions of embedded files to check (default .js,.mjs,.cjs)
package analyzer
