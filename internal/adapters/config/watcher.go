package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/trafficlens/internal/core/domain"
	"go.trai.ch/trafficlens/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultDebounce is the quiet period after the last change before a reload.
const DefaultDebounce = 150 * time.Millisecond

var _ ports.SettingsWatcher = (*Watcher)(nil)

// Watcher reloads the settings file whenever it changes on disk.
type Watcher struct {
	loader   ports.SettingsLoader
	logger   ports.Logger
	debounce time.Duration
}

// NewWatcher creates a settings watcher that reloads through loader.
func NewWatcher(loader ports.SettingsLoader, logger ports.Logger) *Watcher {
	return &Watcher{loader: loader, logger: logger, debounce: DefaultDebounce}
}

// WithDebounce returns a copy of the watcher using the given quiet period.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	c := *w
	c.debounce = d
	return &c
}

// Watch blocks until ctx is cancelled. The parent directory is watched rather
// than the file so that atomic replace-on-save keeps working. A reload that
// fails is logged and the previous settings stay in effect.
func (w *Watcher) Watch(ctx context.Context, path string, apply func(*domain.Settings)) error {
	if path == "" {
		<-ctx.Done()
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve settings path"), "path", path)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create file watcher")
	}
	defer func() { _ = fsw.Close() }()

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch settings directory"), "path", abs)
	}

	reload := newDebouncer(w.debounce, func() {
		settings, err := w.loader.Load(abs)
		if err != nil {
			w.logger.Error(zerr.Wrap(err, "settings reload rejected"))
			return
		}
		if ctx.Err() == nil {
			apply(settings)
		}
	})
	defer reload.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				reload.Trigger()
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error(zerr.Wrap(err, "file watcher error"))
		}
	}
}
