package watcher

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Dicklesworthstone/restricted_input/pkg/config"
	"github.com/Dicklesworthstone/restricted_input/pkg/model"
)

// ReloadFunc receives the freshly loaded form, or the error that prevented loading it.
type ReloadFunc func(model.Form, error)

// Watcher reloads a form definition whenever its file changes on disk.
type Watcher struct {
	path      string
	onReload  ReloadFunc
	debouncer *Debouncer
	fsw       *fsnotify.Watcher

	closeOnce sync.Once
}

// New creates a Watcher for the form file at path.
// The parent directory is watched so that editors which replace the file
// on save are still observed.
func New(path string, onReload ReloadFunc, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:      abs,
		onReload:  onReload,
		debouncer: NewDebouncer(0),
		fsw:       fsw,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides the debounce window.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debouncer = NewDebouncer(d)
	}
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Start processes file events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Start(ctx context.Context) error {
	defer w.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.debouncer.Trigger(w.reload)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("Warning: file watcher error: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	form, err := config.LoadFile(w.path)
	if w.onReload != nil {
		w.onReload(form, err)
	}
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.debouncer.Cancel()
		err = w.fsw.Close()
	})
	return err
}
