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
	"log/slog"
	"slices"

	"fillmore-labs.com/dollarsign/internal/config"
)

// Option configures specific behavior of a [New] dollarsign analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithIgnoreProperties is an [Option] to skip property assignments and object literal keys.
func WithIgnoreProperties(ignore bool) Option { return ignorePropertiesOption{ignore: ignore} }

type ignorePropertiesOption struct{ ignore bool }

func (o ignorePropertiesOption) apply(r *runOptions) {
	r.behavior.Set(config.IgnoreProperties, o.ignore)
}

func (o ignorePropertiesOption) LogAttr() slog.Attr {
	return slog.Bool("ignoreProperties", o.ignore)
}

// WithExtensions is an [Option] to configure the file extensions of embedded files that are checked.
func WithExtensions(extensions ...string) Option { return extensionsOption{extensions: extensions} }

type extensionsOption struct{ extensions []string }

func (o extensionsOption) apply(r *runOptions) {
	r.extensions = slices.Clone(o.extensions)
}

func (o extensionsOption) LogAttr() slog.Attr {
	return slog.Any("extensions", o.extensions)
}
