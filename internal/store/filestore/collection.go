package filestore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/Yasinefedemirrr/FinalizerDemoProject/internal/store"
)

// collection is one entity type persisted as a single JSON array file.
// Every mutation is a whole-collection read-modify-write, so the
// write lock serializes create/update/delete against the same file;
// reads share the read lock and always see a fully written document.
type collection[T any] struct {
	path string
	id   func(T) uint
	mu   sync.RWMutex
}

func newCollection[T any](dir, name string, id func(T) uint) *collection[T] {
	return &collection[T]{path: filepath.Join(dir, name), id: id}
}

// load reads the full collection. A file that does not exist yet reads
// as an empty collection; any other failure, including malformed JSON,
// propagates as a storage error. The caller must hold the lock.
func (c *collection[T]) load() ([]T, error) {
	b, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, store.Storagef("read "+filepath.Base(c.path), err)
	}
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, store.Storagef("decode "+filepath.Base(c.path), err)
	}
	return items, nil
}

// save rewrites the whole collection atomically: marshal to a temp
// file in the same directory, then rename over the target, so a crash
// can never leave a truncated document behind. The caller must hold
// the write lock.
func (c *collection[T]) save(items []T) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return store.Storagef("encode "+filepath.Base(c.path), err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".tmp-")
	if err != nil {
		return store.Storagef("write "+filepath.Base(c.path), err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return store.Storagef("write "+filepath.Base(c.path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return store.Storagef("write "+filepath.Base(c.path), err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return store.Storagef("write "+filepath.Base(c.path), err)
	}
	return nil
}

// nextID allocates max+1, or 1 for an empty collection. Deleted ids
// below the maximum leave gaps and are never reissued.
func (c *collection[T]) nextID(items []T) uint {
	var max uint
	for _, it := range items {
		if id := c.id(it); id > max {
			max = id
		}
	}
	return max + 1
}

// sortedDesc returns the items ordered by descending id, matching the
// relational backend's ordering contract. On-disk order stays
// insertion order.
func (c *collection[T]) sortedDesc(items []T) []T {
	out := append([]T(nil), items...)
	sort.Slice(out, func(a, b int) bool { return c.id(out[a]) > c.id(out[b]) })
	return out
}

// find returns the index of id, or -1.
func (c *collection[T]) find(items []T, id uint) int {
	for i, it := range items {
		if c.id(it) == id {
			return i
		}
	}
	return -1
}
