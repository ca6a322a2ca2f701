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
	"fmt"
	"go/ast"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

const embedPrefix = "//go:embed"

var errBadPattern = errors.New("invalid //go:embed pattern")

// embedDirective is a //go:embed comment with its parsed patterns.
type embedDirective struct {
	comment  *ast.Comment
	patterns []string
}

// embedDirectives returns the //go:embed directives of a file.
// Malformed directives are skipped, the compiler reports them.
func embedDirectives(f *ast.File) []embedDirective {
	var directives []embedDirective

	for _, group := range f.Comments {
		for _, c := range group.List {
			args, ok := strings.CutPrefix(c.Text, embedPrefix)
			if !ok || args != "" && args[0] != ' ' && args[0] != '\t' {
				continue
			}

			patterns, err := parsePatterns(args)
			if err != nil || len(patterns) == 0 {
				continue
			}

			directives = append(directives, embedDirective{comment: c, patterns: patterns})
		}
	}

	return directives
}

// parsePatterns splits the arguments of a //go:embed directive.
// Patterns are separated by spaces and may be quoted as Go string literals.
func parsePatterns(args string) ([]string, error) {
	var patterns []string

	for args = strings.TrimSpace(args); args != ""; args = strings.TrimSpace(args) {
		var pattern string

		switch args[0] {
		case '`':
			end := strings.IndexByte(args[1:], '`')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated raw string", errBadPattern)
			}

			pattern, args = args[1:end+1], args[end+2:]

		case '"':
			end := 1
			for ; end < len(args) && args[end] != '"'; end++ {
				if args[end] == '\\' {
					end++
				}
			}

			if end >= len(args) {
				return nil, fmt.Errorf("%w: unterminated string", errBadPattern)
			}

			unquoted, err := strconv.Unquote(args[:end+1])
			if err != nil {
				return nil, fmt.Errorf("%w: %w", errBadPattern, err)
			}

			pattern, args = unquoted, args[end+1:]

		default:
			end := strings.IndexAny(args, " \t")
			if end < 0 {
				end = len(args)
			}

			pattern, args = args[:end], args[end:]
		}

		patterns = append(patterns, pattern)
	}

	return patterns, nil
}

// embeddedFiles expands embed patterns relative to dir to the checked files they embed.
//
// Directories are walked recursively, skipping names starting with '.' or '_'
// unless the pattern has the "all:" prefix.
func (r *runOptions) embeddedFiles(dir string, patterns []string) ([]string, error) {
	var files []string

	for _, pattern := range patterns {
		pattern, all := strings.CutPrefix(pattern, "all:")

		matches, err := filepath.Glob(filepath.Join(dir, filepath.FromSlash(pattern)))
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", errBadPattern, pattern, err)
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				return nil, err
			}

			if !info.IsDir() {
				if r.checked(match) {
					files = append(files, match)
				}

				continue
			}

			err = filepath.WalkDir(match, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}

				if path != match && !all && hidden(d.Name()) {
					if d.IsDir() {
						return filepath.SkipDir
					}

					return nil
				}

				if d.Type().IsRegular() && r.checked(path) {
					files = append(files, path)
				}

				return nil
			})
			if err != nil {
				return nil, err
			}
		}
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}

// checked reports whether a file has one of the checked extensions.
func (r *runOptions) checked(path string) bool {
	return slices.Contains(r.extensions, filepath.Ext(path))
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}
