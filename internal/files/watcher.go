package files

import (
	"context"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher marks cached documents stale when their files change on disk,
// so the next read or refresh re-extracts them.
type Watcher struct {
	watcher *fsnotify.Watcher
	handler *Handler
}

func NewWatcher(h *Handler) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(h.Dir()); err != nil {
		w.Close()
		return nil, err
	}
	return &Watcher{watcher: w, handler: h}, nil
}

// Start consumes events until ctx is cancelled. Run it in its own goroutine.
func (w *Watcher) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			name := filepath.Base(event.Name)
			if _, supported := DetectType(name); !supported {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				w.handler.MarkStale(name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

func (w *Watcher) Stop() error {
	return w.watcher.Close()
}
