package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"herbwala/internal/logging"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches the config file for changes and delivers reloaded configs
// on a channel. Contact endpoints and the promo deadline take effect without
// a restart. Editors save through temp-file renames, so the watcher monitors
// the parent directory and filters events down to the config file name.
type Watcher struct {
	mu          sync.RWMutex
	watcher     *fsnotify.Watcher
	configPath  string
	configDir   string
	debounceMap map[string]time.Time
	debounceDur time.Duration
	reloads     chan *Config
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool

	stats WatcherStats
}

// WatcherStats tracks watcher activity for debugging.
type WatcherStats struct {
	EventsSeen       int
	ReloadsTriggered int
	Errors           int
	LastEventTime    time.Time
	LastEventType    string
}

// NewWatcher creates a Watcher for the given config file path.
func NewWatcher(configPath string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:     watcher,
		configPath:  configPath,
		configDir:   filepath.Dir(configPath),
		debounceMap: make(map[string]time.Time),
		debounceDur: 500 * time.Millisecond, // Debounce rapid saves
		reloads:     make(chan *Config, 4),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Reloads returns the channel on which reloaded configs are delivered.
func (w *Watcher) Reloads() <-chan *Config {
	return w.reloads
}

// Start begins watching the config file's directory for changes.
// This method is non-blocking; it starts the watcher in a goroutine.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil // Already running
	}
	w.running = true
	w.mu.Unlock()

	if err := os.MkdirAll(w.configDir, 0755); err != nil {
		logging.ConfigWarn("watcher: failed to create config dir %s: %v (continuing anyway)", w.configDir, err)
	}

	if err := w.watcher.Add(w.configDir); err != nil {
		logging.ConfigWarn("watcher: initial watch failed (dir may not exist): %v", err)
	} else {
		logging.Config("watcher: watching %s for changes to %s", w.configDir, filepath.Base(w.configPath))
	}

	go w.run(ctx)

	return nil
}

// Stop stops the watcher and waits for cleanup.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		logging.ConfigError("watcher: error closing: %v", err)
	}
	logging.Config("watcher: stopped")
}

// run is the main event loop for the watcher.
func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	// Debounce timer for batching rapid changes
	debounceTicker := time.NewTicker(100 * time.Millisecond)
	defer debounceTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Config("watcher: context cancelled")
			return

		case <-w.stopCh:
			logging.Config("watcher: stop signal received")
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				logging.Config("watcher: event channel closed")
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				logging.Config("watcher: error channel closed")
				return
			}
			logging.ConfigError("watcher error: %v", err)
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-debounceTicker.C:
			w.processDebouncedEvents()
		}
	}
}

// handleEvent processes a single filesystem event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Only care about the config file itself
	if filepath.Base(event.Name) != filepath.Base(w.configPath) {
		return
	}

	var eventType string
	switch {
	case event.Op&fsnotify.Create != 0:
		eventType = "create"
	case event.Op&fsnotify.Write != 0:
		eventType = "modify"
	case event.Op&fsnotify.Rename != 0:
		eventType = "rename"
	case event.Op&fsnotify.Remove != 0:
		eventType = "remove"
	default:
		return // Ignore chmod, etc.
	}

	logging.ConfigDebug("watcher: %s event for %s", eventType, event.Name)

	w.mu.Lock()
	w.stats.EventsSeen++
	w.stats.LastEventTime = time.Now()
	w.stats.LastEventType = eventType

	// Debounce: record the event for later processing
	w.debounceMap[w.configPath] = time.Now()
	w.mu.Unlock()
}

// processDebouncedEvents reloads once events have settled past the debounce window.
func (w *Watcher) processDebouncedEvents() {
	w.mu.Lock()
	now := time.Now()
	settled := false

	for path, eventTime := range w.debounceMap {
		if now.Sub(eventTime) >= w.debounceDur {
			settled = true
			delete(w.debounceMap, path)
		}
	}
	w.mu.Unlock()

	if settled {
		w.reload()
	}
}

// reload re-reads the config file and delivers the result. A file that has
// been deleted loads as defaults, which is still an honest reload.
func (w *Watcher) reload() {
	cfg, err := Load(w.configPath)
	if err != nil {
		logging.ConfigError("watcher: reload failed: %v", err)
		w.mu.Lock()
		w.stats.Errors++
		w.mu.Unlock()
		return
	}

	// Keep the logging mirror in sync with the same file
	if err := logging.ReloadConfig(); err != nil {
		logging.ConfigWarn("watcher: logging reload failed: %v", err)
	}

	w.mu.Lock()
	w.stats.ReloadsTriggered++
	w.mu.Unlock()

	select {
	case w.reloads <- cfg:
		logging.Config("watcher: config reloaded")
	default:
		logging.ConfigWarn("watcher: reload dropped, receiver not keeping up")
	}
}

// GetStats returns the current watcher statistics.
func (w *Watcher) GetStats() WatcherStats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stats
}

// IsWatching returns true if the watcher is currently running.
func (w *Watcher) IsWatching() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}
