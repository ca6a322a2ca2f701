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

package analyzer

import (
	"flag"

	"fillmore-labs.com/dollarsign/internal/config"
)

// registerFlags binds the run options to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(r *runOptions, flags *flag.FlagSet) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(NewBehaviorValue(&r.behavior, config.IgnoreProperties), "ignore-properties", "do not check property assignments and object keys")
	flags.Var(NewBehaviorValue(&r.behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(extensionsValue{&r.extensions}, "extensions", "comma separated extensions of embedded files to check")
}
