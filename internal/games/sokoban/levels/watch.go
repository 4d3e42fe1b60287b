package levels

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// reloadDelay coalesces the burst of events editors emit on save.
const reloadDelay = 100 * time.Millisecond

// Watch reloads the pack at path whenever the file changes and calls fn
// with the new set or the load error. The parent directory is watched so
// that editors which replace the file on save are followed. Watch blocks
// until ctx is done and returns nil, or an error if watching fails.
func (l *Loader) Watch(ctx context.Context, path string, fn func(Set, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("levels: watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("levels: watch %s: %w", path, err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("levels: watch %s: %w", path, err)
	}

	timer := time.NewTimer(reloadDelay)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(reloadDelay)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("level watcher error", "path", path, "error", err)

		case <-timer.C:
			set, err := l.LoadFile(path)
			if err != nil {
				log.Warn("level reload failed", "path", path, "error", err)
			} else {
				log.Info("levels reloaded", "path", path, "levels", set.Len())
			}
			fn(set, err)
		}
	}
}
