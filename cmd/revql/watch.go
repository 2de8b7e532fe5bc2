// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/AleutianAI/revql/cmd/revql/internal/search"
	"github.com/AleutianAI/revql/pkg/logging"
	"github.com/AleutianAI/revql/pkg/ux"
)

// watchDebounce is how long to wait for more writes before re-running.
// Editors often produce bursts of write and rename events per save.
const watchDebounce = 200 * time.Millisecond

// runWatch re-runs the search whenever the document file changes.
//
// The watch is placed on the parent directory, not the file itself:
// editors that save via rename-and-replace would otherwise drop the
// watch after the first save.
func runWatch(ctx context.Context, logger *logging.Logger, renderer *ux.Renderer, source string, opts search.Options) int {
	abs, err := filepath.Abs(source)
	if err != nil {
		outputError(renderer, "Failed to resolve path", err)
		return search.ExitError
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		outputError(renderer, "Failed to create watcher", err)
		return search.ExitError
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		outputError(renderer, "Failed to watch directory", err)
		return search.ExitError
	}

	code := executeSearch(ctx, logger, renderer, source, opts)
	logger.Info("watching for changes", "file", abs)

	var debounce *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return code

		case event, ok := <-watcher.Events:
			if !ok {
				return code
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(watchDebounce)
			} else {
				debounce.Reset(watchDebounce)
			}
			pending = debounce.C

		case <-pending:
			pending = nil
			fmt.Println()
			fmt.Println(renderer.Muted("--- file changed, re-running ---"))
			fmt.Println()
			code = executeSearch(ctx, logger, renderer, source, opts)

		case err, ok := <-watcher.Errors:
			if !ok {
				return code
			}
			logger.Warn("watch error", "error", err)
		}
	}
}
