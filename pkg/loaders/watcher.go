package loaders

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// DefaultDebounce coalesces the burst of events editors emit on save
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads a scene file whenever it changes on disk
type Watcher struct {
	Debounce time.Duration

	path   string
	fsw    *fsnotify.Watcher
	logger core.Logger
}

// NewWatcher starts watching the scene file at path. The parent directory is
// watched so editors that replace the file on save are still seen.
func NewWatcher(path string, logger core.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	if logger == nil {
		logger = core.NewNopLogger()
	}
	return &Watcher{
		Debounce: DefaultDebounce,
		path:     abs,
		fsw:      fsw,
		logger:   logger,
	}, nil
}

// Run blocks until ctx is done, calling onReload with each successfully
// reloaded scene. Files that fail to parse are logged and skipped.
func (w *Watcher) Run(ctx context.Context, onReload func(*scene.Scene)) error {
	defer w.fsw.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debugf("Scene file event: %s", event)
			if timer == nil {
				timer = time.NewTimer(w.Debounce)
			} else {
				timer.Reset(w.Debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnf("Scene watcher error: %v", err)

		case <-fire:
			fire = nil
			s, err := LoadSceneFile(w.path)
			if err != nil {
				w.logger.Errorf("Reload failed: %v", err)
				continue
			}
			w.logger.Infof("Reloaded scene %s (%d shapes)", s.Name, s.ShapeCount())
			onReload(s)
		}
	}
}

// Close stops watching
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
