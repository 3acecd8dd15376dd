// Package watcher re-triggers golden runs when the corpus file changes.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces editor save bursts into one run.
const DefaultDebounce = 500 * time.Millisecond

// CorpusWatcher watches a single file. Editors usually replace files on save,
// so the parent directory is watched and events are filtered by name.
type CorpusWatcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger

	watcher *fsnotify.Watcher
	changes chan string

	pendingMu sync.Mutex
	pending   bool
	lastEvent time.Time
}

// New creates a watcher for path. A debounce <= 0 uses DefaultDebounce.
func New(path string, debounce time.Duration, logger *slog.Logger) (*CorpusWatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	return &CorpusWatcher{
		path:     abs,
		debounce: debounce,
		logger:   logger,
		watcher:  fw,
		changes:  make(chan string, 1),
	}, nil
}

// Changes delivers the watched path once per debounced burst of writes. It
// is closed when the watcher stops.
func (w *CorpusWatcher) Changes() <-chan string { return w.changes }

// Start processes events until ctx is cancelled or Stop is called.
func (w *CorpusWatcher) Start(ctx context.Context) {
	go w.processEvents(ctx)
}

// Stop releases the underlying fsnotify watcher.
func (w *CorpusWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *CorpusWatcher) processEvents(ctx context.Context) {
	defer close(w.changes)
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", "error", err)

		case <-ticker.C:
			w.flushPending()
		}
	}
}

func (w *CorpusWatcher) handleFSEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	w.pendingMu.Lock()
	w.pending = true
	w.lastEvent = time.Now()
	w.pendingMu.Unlock()

	w.logger.Debug("corpus change detected", "path", w.path, "op", event.Op.String())
}

// flushPending emits once the file has been quiet for the debounce window.
// A change that arrives while the consumer is still busy is dropped; the
// buffered value already guarantees a rerun.
func (w *CorpusWatcher) flushPending() {
	w.pendingMu.Lock()
	if !w.pending || time.Since(w.lastEvent) < w.debounce {
		w.pendingMu.Unlock()
		return
	}
	w.pending = false
	w.pendingMu.Unlock()

	select {
	case w.changes <- w.path:
	default:
	}
}
