package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ModelWatcher watches model files for changes and triggers reload
// callbacks once changes settle
type ModelWatcher struct {
	watcher   *fsnotify.Watcher
	mu        sync.Mutex
	callbacks map[string]func(string)
	debounce  time.Duration
	timers    map[string]*time.Timer
}

// New creates a model watcher with the given debounce interval
func New(debounce time.Duration) (*ModelWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &ModelWatcher{
		watcher:   watcher,
		callbacks: make(map[string]func(string)),
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
	}, nil
}

// Watch registers a file for change notifications. The parent directory
// is watched rather than the file itself, so the callback survives
// editors and exporters that replace the file on save.
func (w *ModelWatcher) Watch(path string, callback func(string)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	if err := w.watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	w.callbacks[absPath] = callback
	return nil
}

// Start begins watching for file changes
func (w *ModelWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}

				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					w.handleFileChange(event.Name)
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				fmt.Printf("Watcher error: %v\n", err)
			}
		}
	}()
}

// handleFileChange debounces a change event for a registered file.
// Events for unregistered files in a watched directory are ignored.
func (w *ModelWatcher) handleFileChange(filePath string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	callback, exists := w.callbacks[filePath]
	if !exists {
		return
	}

	if timer, exists := w.timers[filePath]; exists {
		timer.Stop()
	}

	w.timers[filePath] = time.AfterFunc(w.debounce, func() {
		callback(filePath)
	})
}

// RemoveAll unregisters every watched file
func (w *ModelWatcher) RemoveAll() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	dirs := make(map[string]bool)
	for file := range w.callbacks {
		dirs[filepath.Dir(file)] = true
	}
	for dir := range dirs {
		if err := w.watcher.Remove(dir); err != nil {
			return err
		}
	}

	w.callbacks = make(map[string]func(string))
	w.timers = make(map[string]*time.Timer)
	return nil
}

// Close stops the watcher
func (w *ModelWatcher) Close() error {
	return w.watcher.Close()
}
