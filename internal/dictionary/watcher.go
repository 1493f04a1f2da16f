package dictionary

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher serves the current Set for a word list file and refreshes it
// whenever the file is rewritten on disk. The containing directory is
// watched so editor rename-and-replace saves are picked up too.
type Watcher struct {
	path string
	log  *slog.Logger
	fw   *fsnotify.Watcher
	done chan struct{}

	mu      sync.RWMutex
	current Set
}

// NewWatcher loads path and starts watching it for changes.
func NewWatcher(path string, log *slog.Logger) (*Watcher, error) {
	if log == nil {
		log = slog.Default()
	}
	set, err := FromFile(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	w := &Watcher{
		path:    filepath.Clean(path),
		log:     log,
		fw:      fw,
		done:    make(chan struct{}),
		current: set,
	}
	go w.loop()
	return w, nil
}

// Set returns the most recently loaded word set.
func (w *Watcher) Set() Set {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Close stops the watcher. The last loaded Set stays readable.
func (w *Watcher) Close() error {
	err := w.fw.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			set, err := FromFile(w.path)
			if err != nil {
				w.log.Warn("dictionary reload failed", "path", w.path, "err", err)
				continue
			}
			w.mu.Lock()
			w.current = set
			w.mu.Unlock()
			w.log.Info("dictionary reloaded", "path", w.path, "words", set.Len())
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn("dictionary watcher error", "err", err)
		}
	}
}
