package file

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/ladle-labs/ladle-cli/internal/logger"
)

// Watcher reloads a ConfigStore when its file changes on disk, so a
// long-running TUI picks up edits made from another terminal without
// restarting.
type Watcher struct {
	store    *ConfigStore
	watcher  *fsnotify.Watcher
	onReload func()
	done     chan struct{}
}

// NewWatcher starts watching the store's config file. The directory is
// watched rather than the file itself, which survives editors that
// replace the file on save. onReload, if non-nil, runs after every
// successful reload.
func NewWatcher(store *ConfigStore, onReload func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(store.Path())); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		store:    store,
		watcher:  fw,
		onReload: onReload,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// loop consumes filesystem events until the watcher closes.
func (w *Watcher) loop() {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Name != w.store.Path() {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := w.store.Load(); err != nil {
				logger.Warn("config reload failed: %v", err)
				continue
			}
			logger.Debug("config reloaded from %s", w.store.Path())
			if w.onReload != nil {
				w.onReload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("config watcher: %v", err)
		}
	}
}

// Close stops watching and waits for the event loop to drain.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
