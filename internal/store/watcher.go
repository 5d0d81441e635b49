package store

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeCallback is called with the affected key after a watcher-observed
// change to the data directory.
type ChangeCallback func(key string)

// Watch runs an fsnotify watcher on the file backend's data directory until
// ctx is cancelled, reporting external changes (a restored backup, a hand
// edit) so connected pages can refresh. Events for the same key are
// debounced, which also collapses the tmp-write-then-rename pair our own
// atomic writes produce.
func Watch(ctx context.Context, f *File, logger *slog.Logger, cb ChangeCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(f.Root()); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("root", f.Root()))

	const quiet = 200 * time.Millisecond
	pending := make(map[string]struct{})
	var flushTimer *time.Timer
	var flushCh <-chan time.Time

	scheduleFlush := func() {
		if flushTimer == nil {
			flushTimer = time.NewTimer(quiet)
			flushCh = flushTimer.C
		} else {
			flushTimer.Reset(quiet)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if flushTimer != nil {
				flushTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-flushCh:
			for key := range pending {
				logger.Debug("watcher: key changed", slog.String("key", key))
				if cb != nil {
					cb(key)
				}
			}
			pending = make(map[string]struct{})

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name := filepath.Base(ev.Name)
			if !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, ".") {
				continue
			}
			key := strings.TrimSuffix(name, ".json")
			if !keyRe.MatchString(key) {
				continue
			}
			pending[key] = struct{}{}
			scheduleFlush()

		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher: error", slog.String("error", werr.Error()))
		}
	}
}
