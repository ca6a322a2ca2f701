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

package cli

import (
	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report jQuery identifiers without a $ prefix",
		Long: `Check JavaScript files for variables and properties initialized with
a jQuery call whose names do not start with a $.

Directories are walked recursively, skipping node_modules, vendor and
hidden directories.`,
		Example: `  # Check the current directory
  dollarsign check

  # Check specific files as JSON
  dollarsign check --format json app.js lib/

  # Ignore object keys and property assignments
  dollarsign check --ignore-properties src`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args)
		},
	}
}

func runCheck(cmd *cobra.Command, paths []string) error {
	cc, err := newCommandContext(cmd)
	if err != nil {
		return err
	}

	files, err := cc.filter.files(paths)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	cc.logger.InfoContext(ctx, "Checking files", "count", len(files))

	results, err := forEach(ctx, files, cc.linter.checkFile)
	if err != nil {
		return err
	}

	if err := cc.renderer.render(results); err != nil {
		return err
	}

	return outcome(results)
}
