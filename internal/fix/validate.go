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

package fix

import (
	"errors"
	"fmt"

	"github.com/evanw/esbuild/pkg/api"
)

// ErrInvalidOutput is returned when fixed source does not parse anymore.
var ErrInvalidOutput = errors.New("invalid output")

// Validate checks that src is still valid JavaScript.
func Validate(name string, src []byte) error {
	result := api.Transform(string(src), api.TransformOptions{
		Loader:     api.LoaderJS,
		Sourcefile: name,
		LogLevel:   api.LogLevelSilent,
	})

	if len(result.Errors) == 0 {
		return nil
	}

	msg := result.Errors[0]
	if loc := msg.Location; loc != nil {
		return fmt.Errorf("%w: %s:%d:%d: %s", ErrInvalidOutput, name, loc.Line, loc.Column+1, msg.Text)
	}

	return fmt.Errorf("%w: %s: %s", ErrInvalidOutput, name, msg.Text)
}
