package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/medcenter/portal-api/internal/repository"
)

// collection is an insertion-ordered, id-keyed record set. It is the
// backing structure for every in-memory repository: a slice preserves
// iteration order, a map gives O(1) lookup. All access goes through the
// RWMutex since the HTTP layer observes concurrent requests.
type collection[T any] struct {
	mu    sync.RWMutex
	order []uuid.UUID
	items map[uuid.UUID]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{
		items: make(map[uuid.UUID]T),
	}
}

func (c *collection[T]) insert(id uuid.UUID, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = item
}

func (c *collection[T]) get(id uuid.UUID) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	if !ok {
		var zero T
		return zero, repository.ErrNotFound
	}
	return item, nil
}

func (c *collection[T]) replace(id uuid.UUID, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return repository.ErrNotFound
	}
	c.items[id] = item
	return nil
}

func (c *collection[T]) remove(id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// snapshot returns the records in insertion order. Callers get copies of
// the stored values and may filter freely without affecting the store.
func (c *collection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

func (c *collection[T]) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}
