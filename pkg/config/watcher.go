package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/Wasted-Audio/Cardinal/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// reloadDebounce coalesces the burst of filesystem events editors emit
// when saving a file.
const reloadDebounce = 200 * time.Millisecond

// Watcher watches the configuration file for changes during a run and
// re-applies the reloadable subset (currently the logging settings).
//
// Design:
//   - fsnotify on the config file's parent directory, since editors
//     replace files via rename and a watch on the file itself is lost
//   - debounced reload: editors emit several events per save
//   - only one goroutine writes; OnReload callbacks run on it
type Watcher struct {
	path     string
	onReload func(*Config)
	stopCh   chan struct{}
	stopped  chan struct{}
}

// NewWatcher creates a watcher for the given config file path. onReload
// is invoked with the freshly loaded configuration after each change;
// it must not block.
func NewWatcher(path string, onReload func(*Config)) *Watcher {
	return &Watcher{
		path:     path,
		onReload: onReload,
		stopCh:   make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Start begins watching in a background goroutine. A watcher setup
// failure is logged and disables hot reload; it never fails the run.
func (w *Watcher) Start(ctx context.Context) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn("Config watcher unavailable, hot reload disabled", logger.KeyError, err)
		close(w.stopped)
		return
	}

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		logger.Warn("Config watcher unavailable, hot reload disabled",
			logger.KeyPath, w.path, logger.KeyError, err)
		_ = fsw.Close()
		close(w.stopped)
		return
	}

	go func() {
		defer close(w.stopped)
		defer fsw.Close()

		logger.Debug("Config watcher started", logger.KeyPath, w.path)

		var pending *time.Timer
		var pendingC <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stopCh:
				return

			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if pending == nil {
					pending = time.NewTimer(reloadDebounce)
					pendingC = pending.C
				} else {
					pending.Reset(reloadDebounce)
				}

			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				logger.Warn("Config watcher error", logger.KeyError, err)

			case <-pendingC:
				pending = nil
				pendingC = nil
				w.reload()
			}
		}
	}()
}

// Stop terminates the watch goroutine and waits for it to exit.
func (w *Watcher) Stop() {
	close(w.stopCh)
	<-w.stopped
}

// reload re-loads the config file and hands it to the callback.
func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		logger.Warn("Config reload failed, keeping previous settings",
			logger.KeyPath, w.path, logger.KeyError, err)
		return
	}

	logger.Info("Configuration reloaded", logger.KeyPath, w.path)
	if w.onReload != nil {
		w.onReload(cfg)
	}
}
