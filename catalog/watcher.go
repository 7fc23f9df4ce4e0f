package catalog

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/uzytkownik/patternfly-icongen/errors"
	"github.com/uzytkownik/patternfly-icongen/logger"
)

// Watcher watches the catalog file for changes and triggers regeneration
// callbacks. Editors tend to fire bursts of write events on save, so changes
// are debounced before the callbacks run.
type Watcher struct {
	catalogPath    string
	watcher        *fsnotify.Watcher
	callbacks      []ChangeCallback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// ChangeCallback is called after the catalog file changed and the debounce
// period elapsed.
type ChangeCallback func() error

// NewWatcher creates a new catalog file watcher
func NewWatcher(catalogPath string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	if err := watcher.Add(catalogPath); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "failed to watch catalog file %s", catalogPath)
	}

	return &Watcher{
		catalogPath:    catalogPath,
		watcher:        watcher,
		callbacks:      make([]ChangeCallback, 0),
		debouncePeriod: 500 * time.Millisecond,
	}, nil
}

// OnChange registers a callback to be called when the catalog changes
func (w *Watcher) OnChange(callback ChangeCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// SetDebouncePeriod overrides the default debounce period
func (w *Watcher) SetDebouncePeriod(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debouncePeriod = d
}

// Start begins watching for catalog file changes
func (w *Watcher) Start() {
	go w.watchLoop()
}

// watchLoop monitors file system events
func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only regenerate on Write or Create events. Create covers
			// editors that replace the file via rename-over.
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				logger.Infow("Catalog change detected",
					"file", event.Name,
					"op", event.Op.String())
				w.scheduleRegen()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("Catalog watcher error",
				"error", err)
		}
	}
}

// scheduleRegen debounces rapid file changes and triggers the callbacks
func (w *Watcher) scheduleRegen() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		if err := w.regen(); err != nil {
			logger.Errorw("Regeneration failed",
				"error", err)
		}
	})
}

// regen calls all registered callbacks
func (w *Watcher) regen() error {
	w.mu.RLock()
	callbacks := make([]ChangeCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(); err != nil {
			// An unknown style in the edited catalog must not kill watch
			// mode; report and keep watching.
			logger.Warnw("Regeneration callback error",
				"error", err)
		}
	}

	return nil
}

// Stop stops watching for catalog changes
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}
