// Package watch re-runs a callback when watched files change. It backs
// the CLI's --watch mode, where character sheets are re-profiled as
// their files (or the symbology document) are edited.
package watch

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/teranos/charsym/errors"
	"github.com/teranos/charsym/logger"
)

// Callback is invoked after a debounced change to any watched file.
type Callback func() error

// Watcher watches a fixed set of files and triggers a callback on change.
type Watcher struct {
	watcher        *fsnotify.Watcher
	callbacks      []Callback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
	done           chan struct{}
}

// New creates a watcher over the given file paths.
func New(paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	for _, path := range paths {
		if err := fsw.Add(path); err != nil {
			fsw.Close()
			return nil, errors.Wrapf(err, "failed to watch file %s", path)
		}
	}

	return &Watcher{
		watcher:        fsw,
		debouncePeriod: 500 * time.Millisecond, // Debounce rapid editor writes
		done:           make(chan struct{}),
	}, nil
}

// OnChange registers a callback to be called after file changes settle.
func (w *Watcher) OnChange(callback Callback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	go w.watchLoop()
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Editors commonly replace files, so Create counts as a change
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				logger.Debugw("Watcher detected change",
					logger.FieldFile, event.Name,
					"op", event.Op.String())
				w.scheduleRun()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("Watcher error", logger.FieldError, err.Error())

		case <-w.done:
			return
		}
	}
}

// scheduleRun debounces rapid file changes before firing callbacks.
func (w *Watcher) scheduleRun() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.debouncePeriod, w.run)
}

func (w *Watcher) run() {
	w.mu.RLock()
	callbacks := make([]Callback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(); err != nil {
			// Keep watching; a failed run is not fatal to the loop
			logger.Warnw("Watch callback error", logger.FieldError, err.Error())
		}
	}
}

// Stop stops watching and releases the underlying watcher.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}
