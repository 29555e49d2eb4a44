package library

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// A Watcher rescans a Library whenever material cards change on disk.
// Editors typically emit several filesystem events per save, so events
// are debounced into a single rescan after a quiet period.
type Watcher struct {
	lib      *Library
	logger   *slog.Logger
	config   *WatcherConfig
	debounce *Debouncer

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// WatcherConfig contains configuration for the card watcher.
type WatcherConfig struct {
	// Dirs are the directories to watch. Empty means the directories
	// of the library's last Scan.
	Dirs []string

	// DebounceInterval is the quiet period after the last event
	// before rescanning (default: 200ms).
	DebounceInterval time.Duration
}

// DefaultWatcherConfig returns the default watcher configuration.
func DefaultWatcherConfig() *WatcherConfig {
	return &WatcherConfig{
		DebounceInterval: 200 * time.Millisecond,
	}
}

// NewWatcher creates a watcher for lib. A nil config uses
// DefaultWatcherConfig, a nil logger falls back to slog.Default.
func NewWatcher(lib *Library, config *WatcherConfig, logger *slog.Logger) *Watcher {
	if config == nil {
		config = DefaultWatcherConfig()
	}
	if config.DebounceInterval <= 0 {
		config.DebounceInterval = DefaultWatcherConfig().DebounceInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		lib:      lib,
		logger:   logger.With("component", "fcmat.watcher"),
		config:   config,
		debounce: NewDebouncer(config.DebounceInterval),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Watch starts watching and blocks until the context is cancelled or
// Stop is called. After every debounced rescan it calls onReload with
// the refreshed library; a nil onReload just rescans.
func (w *Watcher) Watch(ctx context.Context, onReload func(*Library)) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("library: watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(w.doneCh)
	}()

	dirs := w.config.Dirs
	if len(dirs) == 0 {
		dirs = w.lib.Dirs()
	}
	if len(dirs) == 0 {
		return fmt.Errorf("library: no directories to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("library: creating watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("library: watching %s: %w", dir, err)
		}
	}

	w.logger.Info("watching material directories",
		"dirs", dirs,
		"debounce_ms", w.config.DebounceInterval.Milliseconds(),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("card watcher stopped (context cancelled)")
			return nil

		case <-w.stopCh:
			w.logger.Info("card watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("library: watcher events channel closed")
			}
			if !isCardEvent(event) {
				continue
			}
			w.logger.Debug("material card event", "path", event.Name, "op", event.Op.String())

			w.debounce.Trigger(func() {
				if err := w.lib.Scan(); err != nil {
					w.logger.Error("library rescan failed", "error", err)
					return
				}
				if onReload != nil {
					onReload(w.lib)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("library: watcher errors channel closed")
			}
			w.logger.Warn("card watcher error", "error", err)
			// Keep watching despite errors.
		}
	}
}

// Stop stops the watcher and waits for Watch to return.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	w.debounce.Stop()
}

// isCardEvent reports whether the event concerns a material card
// changing in a way that warrants a rescan.
func isCardEvent(event fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(event.Name), Ext) {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}

// A Debouncer collapses rapid event bursts into a single callback
// after a quiet period.
type Debouncer struct {
	interval time.Duration

	mu       sync.Mutex
	timer    *time.Timer
	callback func()
	stopped  bool
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger schedules callback to run after the quiet period. Another
// Trigger before then replaces the callback and restarts the period.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.callback = callback

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		cb := d.callback
		stopped := d.stopped
		d.mu.Unlock()

		if cb != nil && !stopped {
			cb()
		}
	})
}

// Stop cancels any pending callback. The debouncer cannot be reused
// afterwards.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.callback = nil
}
