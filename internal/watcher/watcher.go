// Package watcher observes a directory subtree for new or modified career
// documents and invokes the processing pipeline once a file appears stable.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/haysc/careerscan/internal/scanner"
)

// DefaultDebounce is the quiet period after the last detected change before
// a file is considered stable enough to process.
const DefaultDebounce = 2 * time.Second

// Callback processes one stable document path. Errors are logged by the
// watcher; they never stop the watch loop.
type Callback func(path string) error

// Watcher monitors a directory tree, debouncing change bursts per path.
type Watcher struct {
	root       string
	extensions []string
	callback   Callback
	debounce   *debouncer
	fsw        *fsnotify.Watcher
	log        *slog.Logger
}

// Config holds watcher construction parameters.
type Config struct {
	Root       string
	Extensions []string
	Debounce   time.Duration
	Logger     *slog.Logger
}

// New creates a watcher over cfg.Root. The root is created if absent.
func New(cfg Config, callback Callback) (*Watcher, error) {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	if err := os.MkdirAll(cfg.Root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create watch root %s: %w", cfg.Root, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		root:       cfg.Root,
		extensions: cfg.Extensions,
		callback:   callback,
		debounce:   newDebouncer(cfg.Debounce),
		fsw:        fsw,
		log:        cfg.Logger,
	}

	if err := w.addWatchDirs(cfg.Root); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to add watch dirs: %w", err)
	}

	return w, nil
}

// Run processes filesystem events until ctx is cancelled or the watcher is
// closed. Per-event failures are isolated: one bad document must not stop
// monitoring of the rest of the tree.
func (w *Watcher) Run(ctx context.Context) error {
	w.log.Info("watching for career documents", "root", w.root, "extensions", w.extensions)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watch error", "error", err)
		}
	}
}

// Close stops the event source and abandons any pending debounce timers.
func (w *Watcher) Close() error {
	w.debounce.Close()
	return w.fsw.Close()
}

// handleEvent filters an event and arms the per-path debounce timer.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		// Renamed-away or vanished mid-event.
		return
	}

	if info.IsDir() {
		// New subdirectories join the watch so the subtree stays covered.
		if event.Op&fsnotify.Create != 0 {
			if err := w.addWatchDirs(event.Name); err != nil {
				w.log.Warn("failed to watch new directory", "path", event.Name, "error", err)
			}
		}
		return
	}

	if !scanner.HasSupportedExtension(event.Name, w.extensions) {
		return
	}

	w.log.Debug("change detected", "path", event.Name, "op", event.Op.String())
	path := event.Name
	w.debounce.Trigger(path, func() {
		w.process(path)
	})
}

// process invokes the callback for a stable path, isolating panics and
// errors from the event loop.
func (w *Watcher) process(path string) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("processing panicked", "path", path, "panic", r)
		}
	}()

	if err := w.callback(path); err != nil {
		w.log.Error("processing failed", "path", path, "error", err)
	}
}

// addWatchDirs registers root and every non-hidden subdirectory with the
// event source.
func (w *Watcher) addWatchDirs(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if base := filepath.Base(path); strings.HasPrefix(base, ".") && path != root {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}
