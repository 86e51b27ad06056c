// Package jsonfile keeps a collection of records as one pretty-printed JSON
// array on disk. Every mutation reads the whole file, changes it in memory and
// writes it back, so it is only meant for small data sets such as a menu or
// a day of orders.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/MikeMC777/comandas/internal/storage"
)

// Collection is a JSON array file of T. Writers are serialized.
type Collection[T any] struct {
	path string
	mu   sync.Mutex
}

func NewCollection[T any](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

func (c *Collection[T]) Path() string { return c.path }

// Load returns the records in file order. A missing file is an empty
// collection.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Mutate applies fn to the current records and persists its result. When fn
// returns an error nothing is written.
func (c *Collection[T]) Mutate(ctx context.Context, fn func([]T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.write(next)
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, storage.Wrap("read "+c.path, err)
	}
	if len(data) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, storage.Wrap("parse "+c.path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// write replaces the file atomically through a temp file and rename.
func (c *Collection[T]) write(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return storage.Wrap("encode "+c.path, err)
	}
	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return storage.Wrap("write "+c.path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return storage.Wrap("write "+c.path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return storage.Wrap("write "+c.path, err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		_ = os.Remove(tmpName)
		return storage.Wrap("write "+c.path, fmt.Errorf("replace: %w", err))
	}
	return nil
}
