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

package gclplugin

import dollarsign "fillmore-labs.com/dollarsign/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// IgnoreProperties skips property assignments and object literal keys.
	IgnoreProperties *bool `json:"ignore-properties,omitzero"`
	// Generated enables checks of generated files.
	Generated *bool `json:"generated,omitzero"`
	// Extensions lists the file extensions of embedded files that are checked.
	Extensions *[]string `json:"extensions,omitzero"`
}

// Options converts [Settings] into a list of [dollarsign.Option] for the dollarsign analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []dollarsign.Option {
	var opts []dollarsign.Option

	opts = appendOption(opts, s.IgnoreProperties, dollarsign.WithIgnoreProperties)
	opts = appendOption(opts, s.Generated, dollarsign.WithGenerated)
	opts = appendOption(opts, s.Extensions, func(extensions []string) dollarsign.Option {
		return dollarsign.WithExtensions(extensions...)
	})

	return opts
}

// appendOption appends a non-nil setting to a [dollarsign.Option] list.
func appendOption[T any](opts []dollarsign.Option, value *T, constructor func(T) dollarsign.Option) []dollarsign.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
