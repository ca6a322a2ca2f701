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
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// skipDirs are never descended into.
var skipDirs = []string{"node_modules", "vendor"}

// fileFilter selects the files to lint.
type fileFilter struct {
	extensions []string
	exclude    []string
}

// source reports whether path has a linted extension and is not excluded.
func (f fileFilter) source(path string) bool {
	return slices.Contains(f.extensions, filepath.Ext(path)) && !f.excluded(path)
}

// excluded reports whether path or one of its elements matches an exclude pattern.
func (f fileFilter) excluded(path string) bool {
	slashed := filepath.ToSlash(filepath.Clean(path))

	for _, pattern := range f.exclude {
		if ok, _ := filepath.Match(pattern, slashed); ok {
			return true
		}

		for elem := range strings.SplitSeq(slashed, "/") {
			if ok, _ := filepath.Match(pattern, elem); ok {
				return true
			}
		}
	}

	return false
}

// skipDir reports whether a directory below the root is not walked.
func (f fileFilter) skipDir(path string) bool {
	name := filepath.Base(path)

	return slices.Contains(skipDirs, name) || strings.HasPrefix(name, ".") || f.excluded(path)
}

// files expands paths into the sorted list of files to lint. Files named
// explicitly are linted regardless of their extension.
func (f fileFilter) files(paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	seen := make(map[string]struct{})

	var files []string

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			add(filepath.Clean(root))

			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && f.skipDir(path) {
					return filepath.SkipDir
				}

				return nil
			}

			if d.Type().IsRegular() && f.source(path) {
				add(path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(files)

	return files, nil
}

// dirs returns the directories below paths that are watched for changes.
func (f fileFilter) dirs(paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var dirs []string

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			dirs = append(dirs, filepath.Dir(root))

			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() {
				return nil
			}

			if path != root && f.skipDir(path) {
				return filepath.SkipDir
			}

			dirs = append(dirs, path)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(dirs)

	return slices.Compact(dirs), nil
}
