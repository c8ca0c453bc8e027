// Package files owns the tracked directory: scanning, per-format text
// extraction and the in-memory document cache the rest of the app reads.
package files

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/google/uuid"

	"docassist/internal/model"
	"docassist/internal/util"
)

// Handler tracks one directory of supported files. The cache is keyed by
// filename; a changed file replaces its entry wholesale. The mutex only
// guards against the fsnotify watcher goroutine touching stale flags while
// a request is being served.
type Handler struct {
	dir string

	mu    sync.RWMutex
	docs  map[string]*model.Document
	order []string
	stale map[string]bool
}

func NewHandler(dir string) (*Handler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &Handler{
		dir:   dir,
		docs:  make(map[string]*model.Document),
		stale: make(map[string]bool),
	}, nil
}

// Dir returns the tracked directory.
func (h *Handler) Dir() string { return h.dir }

// Scan enumerates supported files in the directory and rebuilds the cache.
// Extraction failures are recorded per file, never abort the scan.
func (h *Handler) Scan() ([]string, error) {
	entries, err := os.ReadDir(h.dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", h.dir, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	old := h.docs
	h.docs = make(map[string]*model.Document, len(entries))
	h.order = h.order[:0]
	h.stale = make(map[string]bool)

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		if _, ok := DetectType(name); !ok {
			continue
		}
		doc := h.load(name)
		if prev, ok := old[name]; ok {
			doc.ID = prev.ID
		}
		h.docs[name] = doc
		h.order = append(h.order, name)
		names = append(names, name)
	}
	return names, nil
}

// Read returns the cached document, extracting it first if the file is new
// or was marked stale by the watcher.
func (h *Handler) Read(name string) (*model.Document, error) {
	if _, ok := DetectType(name); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, name)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if doc, ok := h.docs[name]; ok && !h.stale[name] {
		return doc, nil
	}
	if _, err := os.Stat(util.SafeJoin(h.dir, name)); err != nil {
		delete(h.docs, name)
		h.removeFromOrder(name)
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	doc := h.load(name)
	if prev, ok := h.docs[name]; ok {
		doc.ID = prev.ID
	} else {
		h.order = append(h.order, name)
	}
	h.docs[name] = doc
	delete(h.stale, name)
	return doc, nil
}

// List returns tracked documents in scan order.
func (h *Handler) List() []*model.Document {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]*model.Document, 0, len(h.order))
	for _, name := range h.order {
		if doc, ok := h.docs[name]; ok {
			out = append(out, doc)
		}
	}
	return out
}

// Names returns tracked filenames in scan order.
func (h *Handler) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]string(nil), h.order...)
}

// Refresh re-stats every tracked file, re-extracts new or changed ones and
// drops entries whose files disappeared.
func (h *Handler) Refresh() (model.RefreshResult, error) {
	entries, err := os.ReadDir(h.dir)
	if err != nil {
		return model.RefreshResult{}, fmt.Errorf("refresh %s: %w", h.dir, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	var res model.RefreshResult
	onDisk := make(map[string]os.FileInfo)
	var diskOrder []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if _, ok := DetectType(e.Name()); !ok {
			continue
		}
		info, err := e.Info()
		if err != nil {
			log.Printf("refresh stat %s: %v", e.Name(), err)
			continue
		}
		onDisk[e.Name()] = info
		diskOrder = append(diskOrder, e.Name())
	}

	for _, name := range diskOrder {
		info := onDisk[name]
		prev, tracked := h.docs[name]
		switch {
		case !tracked:
			doc := h.load(name)
			h.docs[name] = doc
			h.order = append(h.order, name)
			res.Added++
		case h.stale[name] || prev.Size != info.Size() || !prev.ModTime.Equal(info.ModTime()):
			doc := h.load(name)
			doc.ID = prev.ID
			h.docs[name] = doc
			res.Updated++
		default:
			res.Unchanged++
		}
		delete(h.stale, name)
	}

	for name := range h.docs {
		if _, ok := onDisk[name]; !ok {
			delete(h.docs, name)
			h.removeFromOrder(name)
			res.Removed++
		}
	}
	return res, nil
}

// Upload writes data into the tracked directory and indexes it immediately.
// An existing name is kept intact by saving under a timestamped variant.
func (h *Handler) Upload(name string, data []byte) (*model.Document, error) {
	if _, ok := DetectType(name); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, name)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	path := util.SafeJoin(h.dir, name)
	if _, err := os.Stat(path); err == nil {
		name = util.Timestamped(name)
		path = util.SafeJoin(h.dir, name)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("save upload %s: %w", name, err)
	}

	doc := h.load(name)
	h.docs[name] = doc
	h.order = append(h.order, name)
	return doc, nil
}

// MarkStale flags a cached entry so the next Read or Refresh re-extracts it.
func (h *Handler) MarkStale(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.docs[name]; ok {
		h.stale[name] = true
	}
}

// load extracts one file. Callers hold the lock. Extraction errors become an
// unreadable placeholder so a broken file never aborts a scan.
func (h *Handler) load(name string) *model.Document {
	ft, _ := DetectType(name)
	doc := &model.Document{
		ID:       uuid.NewString(),
		Filename: name,
		Type:     ft,
	}
	path := util.SafeJoin(h.dir, name)
	if info, err := os.Stat(path); err == nil {
		doc.Size = info.Size()
		doc.ModTime = info.ModTime()
	}

	content, err := Extract(path, ft)
	if err != nil {
		log.Printf("extract %s: %v", name, err)
		doc.Content = fmt.Sprintf("[unreadable: %v]", err)
		doc.Unreadable = true
		return doc
	}
	doc.Content = content
	return doc
}

func (h *Handler) removeFromOrder(name string) {
	for i, n := range h.order {
		if n == name {
			h.order = append(h.order[:i], h.order[i+1:]...)
			return
		}
	}
}
