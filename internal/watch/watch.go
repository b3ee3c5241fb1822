// Package watch reruns a build whenever its input files change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDelay is how long events must settle before a rebuild.
const DefaultDelay = 200 * time.Millisecond

// ErrNoFiles is returned when there is nothing to watch.
var ErrNoFiles = errors.New("no files to watch")

// BuildFunc rebuilds the outputs. An error is logged and watching continues.
type BuildFunc func(ctx context.Context) error

// Watcher watches a fixed set of files for changes.
//
// Directories are watched rather than the files themselves, since editors
// often save by renaming a temporary file over the original.
type Watcher struct {
	fsw    *fsnotify.Watcher
	files  map[string]bool
	delay  time.Duration
	logger *slog.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDelay sets the debounce delay.
func WithDelay(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.delay = d
		}
	}
}

// WithLogger sets the logger for rebuild results and watch errors.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		w.logger = l
	}
}

// New creates a watcher for the given files.
func New(files []string, opts ...Option) (*Watcher, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	w := &Watcher{
		files:  make(map[string]bool, len(files)),
		delay:  DefaultDelay,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	w.fsw = fsw

	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fsw.Close()
			return nil, err
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	return w, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run calls build once, then again after every settled change, until ctx is
// done. It returns ctx.Err() when cancelled.
func (w *Watcher) Run(ctx context.Context, build BuildFunc) error {
	return w.loop(ctx, w.fsw.Events, w.fsw.Errors, build)
}

func (w *Watcher) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, build BuildFunc) error {
	w.rebuild(ctx, build, "")

	// settle is nil while no change is pending.
	var settle <-chan time.Time
	var changed string

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			changed = ev.Name
			settle = time.After(w.delay)

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)

		case <-settle:
			settle = nil
			w.rebuild(ctx, build, changed)
		}
	}
}

// relevant reports whether ev touches a watched file's content.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}

func (w *Watcher) rebuild(ctx context.Context, build BuildFunc, changed string) {
	if changed != "" {
		w.logger.Info("change detected", "file", changed)
	}
	if err := build(ctx); err != nil {
		w.logger.Error("rebuild failed", "error", err)
	}
}
