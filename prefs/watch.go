package prefs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce coalesces the burst of events an editor save produces
const reloadDebounce = 200 * time.Millisecond

// Watch reloads the store when the slot file is changed externally
// onChange runs on the watcher goroutine with the new value. Blocks until ctx is cancelled.
func (s *Store) Watch(ctx context.Context, logger *slog.Logger, onChange func(Audio)) error {
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create prefs watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: atomic saves replace the file inode
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %q: %w", dir, err)
	}

	name := filepath.Base(s.path)
	fire := make(chan struct{}, 1)
	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(reloadDebounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			a, err := s.reload()
			switch {
			case errors.Is(err, errUnchanged):
			case err != nil:
				logger.Warn("prefs reload failed", slog.Any("error", err))
			default:
				logger.Info("prefs reloaded", slog.Bool("enabled", a.Enabled), slog.Float64("volume", a.Volume))
				if onChange != nil {
					onChange(a)
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("prefs watcher error", slog.Any("error", err))
		}
	}
}
