package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce coalesces the burst of events an editor emits during one save.
const debounce = 200 * time.Millisecond

// Watch monitors the config file at path and calls onChange with the
// newly loaded Config after each successful reload. It blocks until ctx
// is cancelled.
//
// A reload that fails (invalid YAML, failed validation) is logged and
// skipped — onChange never sees a broken config. Atomic saves that
// replace the file's inode are handled by re-adding the path after each
// event.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("config: watch %q: %w", path, err)
	}

	slog.Info("config: watching for changes", "path", path)

	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Writes and creates carry new content; renames and removes
			// usually precede a create during an atomic save.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				_ = watcher.Add(path)
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil

			cfg, err := Load(path)
			if err != nil {
				slog.Error("config: reload failed — keeping previous config",
					"path", path, "err", err)
				continue
			}

			slog.Info("config: reloaded", "path", path, "sites", len(cfg.SiteList()))
			onChange(cfg)

			// The inode may have changed; make sure we still watch the path.
			_ = watcher.Add(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config: watcher error", "err", err)
		}
	}
}
