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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// debounceDelay collects bursts of events for the same files.
const debounceDelay = 100 * time.Millisecond

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Check files again whenever they change",
		Long: `Check all files once, then watch the directories for changes and check
every written or created file again. Stop with Ctrl+C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args)
		},
	}
}

func runWatch(cmd *cobra.Command, paths []string) error {
	cc, err := newCommandContext(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	files, err := cc.filter.files(paths)
	if err != nil {
		return err
	}

	results, err := forEach(ctx, files, cc.linter.checkFile)
	if err != nil {
		return err
	}

	if err := cc.renderer.render(results); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dirs, err := cc.filter.dirs(paths)
	if err != nil {
		return err
	}

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	cc.logger.InfoContext(ctx, "Watching for changes", slog.Int("directories", len(dirs)))

	w := &watch{filter: cc.filter, logger: cc.logger, delay: debounceDelay}

	return w.loop(ctx, watcher, cc.recheck(ctx))
}

// recheck returns the callback checking changed files and rendering the results.
func (cc *commandContext) recheck(ctx context.Context) func(files []string) {
	return func(files []string) {
		results, err := forEach(ctx, files, cc.linter.checkFile)
		if err != nil {
			cc.logger.ErrorContext(ctx, "Can't check files", slog.Int("count", len(files)), slog.Any("error", err))

			return
		}

		if err := cc.renderer.render(results); err != nil {
			cc.logger.ErrorContext(ctx, "Can't render results", slog.Any("error", err))
		}
	}
}

// watch dispatches file system events.
type watch struct {
	filter fileFilter
	logger *slog.Logger
	delay  time.Duration
}

// loop handles file system events until the context is canceled.
// Changed files are passed to check in sorted batches.
func (w *watch) loop(ctx context.Context, watcher *fsnotify.Watcher, check func(files []string)) error {
	pending := make(map[string]struct{})

	timer := time.NewTimer(w.delay)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}

			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// Only handle write/create events
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if !w.filter.skipDir(event.Name) {
						if err := watcher.Add(event.Name); err != nil {
							w.logger.WarnContext(ctx, "Can't watch directory", slog.String("dir", event.Name), slog.Any("error", err))
						}
					}

					continue
				}
			}

			if !w.filter.source(event.Name) {
				continue
			}

			pending[event.Name] = struct{}{}
			timer.Reset(w.delay)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}

			files := slices.Sorted(maps.Keys(pending))
			clear(pending)

			w.logger.DebugContext(ctx, "Change detected", slog.Any("files", files))
			check(files)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			w.logger.WarnContext(ctx, "Watcher error", slog.Any("error", err))
		}
	}
}
