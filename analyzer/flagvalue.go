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
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"fillmore-labs.com/dollarsign/internal/config"
)

// NewBehaviorValue returns a boolean [flag.Getter] enabling or disabling option in behavior.
func NewBehaviorValue(behavior *config.Behavior, option config.Config) flag.Getter {
	return behaviorValue{behavior: behavior, option: option}
}

type behaviorValue struct {
	behavior *config.Behavior
	option   config.Config
}

// Set implements [flag.Value].
func (v behaviorValue) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	v.behavior.Set(v.option, b)

	return nil
}

// String implements [flag.Value].
func (v behaviorValue) String() string {
	return strconv.FormatBool(v.enabled())
}

// Get implements [flag.Getter].
func (v behaviorValue) Get() any {
	return v.enabled()
}

// IsBoolFlag marks the value as a boolean flag, so it can be set without an argument.
func (v behaviorValue) IsBoolFlag() bool { return true }

// enabled is false for the zero value the flag package uses to detect defaults.
func (v behaviorValue) enabled() bool {
	return v.behavior != nil && v.behavior.Enabled(v.option)
}

// errExtension is returned for file extensions without a leading dot.
var errExtension = errors.New("extension must start with a dot")

// extensionsValue is a comma separated list of file extensions.
type extensionsValue struct {
	extensions *[]string
}

// Set implements [flag.Value].
func (v extensionsValue) Set(s string) error {
	var extensions []string

	for ext := range strings.SplitSeq(s, ",") {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: %q", errExtension, ext)
		}

		extensions = append(extensions, ext)
	}

	*v.extensions = extensions

	return nil
}

// String implements [flag.Value].
func (v extensionsValue) String() string {
	if v.extensions == nil {
		return ""
	}

	return strings.Join(*v.extensions, ",")
}

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On", "full", "Full":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
