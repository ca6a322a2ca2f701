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
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCommand creates the config command.
func NewConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration after merging defaults, the configuration file,
DOLLARSIGN_ environment variables and flags. The output is a valid
configuration file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := newCommandContext(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if cc.cfg.File != "" {
				_, _ = fmt.Fprintf(out, "# %s\n", cc.cfg.File)
			}

			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)

			if err := enc.Encode(cc.cfg); err != nil {
				return err
			}

			return enc.Close()
		},
	}
}
