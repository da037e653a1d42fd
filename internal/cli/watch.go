package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchTrace runs the trace once, then re-runs it whenever the scene file
// changes, until ctx is cancelled. The parent directory is watched rather
// than the file itself so that editors that replace the file on save keep
// triggering events.
func (c *CLI) watchTrace(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	rerun := func() {
		if err := c.runTrace(path); err != nil {
			c.logger.Error("trace failed", "err", err)
		}
	}
	rerun()
	c.logger.Info("watching for changes", "file", path)

	base := filepath.Base(path)

	// Editors often emit bursts of events per save; coalesce them with a
	// short settle timer.
	var settle *time.Timer
	var settleCh <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if settle == nil {
				settle = time.NewTimer(100 * time.Millisecond)
				settleCh = settle.C
			} else {
				settle.Reset(100 * time.Millisecond)
			}
		case <-settleCh:
			settle = nil
			settleCh = nil
			rerun()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.logger.Error("watch error", "err", err)
		}
	}
}
