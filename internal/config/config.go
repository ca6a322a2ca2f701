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

// Package config holds the rule options shared by the analyzer, the plugin and the command line.
package config

import "strings"

// Config represents configuration options for the checker.
type Config uint8

const (
	// IgnoreProperties exempts object literal keys and property assignment targets from checking.
	IgnoreProperties Config = 1 << iota

	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated
)

var names = [...]struct {
	flag Config
	name string
}{
	{IgnoreProperties, "ignoreProperties"},
	{IncludeGenerated, "generated"},
}

// Behavior holds the enabled [Config] options.
type Behavior struct {
	value Config
}

// DefaultBehavior returns the [Behavior] with default values.
func DefaultBehavior() Behavior {
	return Behavior{}
}

// Set enables or disables the option.
func (b *Behavior) Set(flag Config, value bool) {
	if value {
		b.Enable(flag)
	} else {
		b.Disable(flag)
	}
}

// Enable enables the option.
func (b *Behavior) Enable(flag Config) {
	b.value |= flag
}

// Disable disables the option.
func (b *Behavior) Disable(flag Config) {
	b.value &^= flag
}

// Enabled reports whether the option is enabled.
func (b Behavior) Enabled(flag Config) bool {
	return b.value&flag != 0
}

// String lists the enabled options, separated by "|".
func (b Behavior) String() string {
	var sb strings.Builder

	for _, n := range names {
		if !b.Enabled(n.flag) {
			continue
		}

		if sb.Len() > 0 {
			sb.WriteByte('|')
		}

		sb.WriteString(n.name)
	}

	if sb.Len() == 0 {
		return "default"
	}

	return sb.String()
}
