// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the configuration whenever its file is written, and calls onChange if the content changed.
// The directory is watched, because editors often replace files instead of writing them.
// Watch blocks until the context is done.
func Watch(ctx context.Context, c Config, logger *log.Logger, onChange func()) error {
	path := c.Path()
	if path == "" {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	name := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != name || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			changed, err := c.Reload()
			if err != nil {
				// Keep the previous configuration, the file may be saved again.
				logger.Printf("Failed to reload %s: %v", path, err)
				continue
			}
			if changed {
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Printf("File watcher error: %v", err)
		}
	}
}
