package store

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when no record carries the requested id.
var ErrNotFound = errors.New("record not found")

// Record is satisfied by pointers to entity types embedding entities.Model.
type Record[T any] interface {
	*T
	GetID() int
	SetID(id int)
}

// Cloner is implemented by records holding slices or maps. The collection
// hands out and stores deep copies of such records, so a caller mutating a
// returned value never reaches stored state.
type Cloner[T any] interface {
	Clone() T
}

// Collection is an ordered, mutex-guarded set of records keyed by integer id.
//
// New ids are max(existing)+1, so deleting the highest id and inserting again
// hands the same id out a second time.
type Collection[T any, P Record[T]] struct {
	mu    sync.RWMutex
	items []T
}

// NewCollection builds a collection holding a copy of seed, ids kept as given.
func NewCollection[T any, P Record[T]](seed ...T) *Collection[T, P] {
	items := make([]T, len(seed))
	for i, rec := range seed {
		items[i] = clone[T, P](rec)
	}
	return &Collection[T, P]{items: items}
}

func clone[T any, P Record[T]](rec T) T {
	if c, ok := any(P(&rec)).(Cloner[T]); ok {
		return c.Clone()
	}
	return rec
}

func (c *Collection[T, P]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	for i, rec := range c.items {
		out[i] = clone[T, P](rec)
	}
	return out
}

func (c *Collection[T, P]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T, P]) Get(id int) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(id); i >= 0 {
		return clone[T, P](c.items[i]), nil
	}
	var zero T
	return zero, ErrNotFound
}

// Filter returns the records matching keep, in collection order.
func (c *Collection[T, P]) Filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []T
	for _, item := range c.items {
		if keep(item) {
			out = append(out, clone[T, P](item))
		}
	}
	return out
}

// Insert assigns the next id to rec and appends it.
func (c *Collection[T, P]) Insert(rec T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	P(&rec).SetID(c.maxID() + 1)
	c.items = append(c.items, clone[T, P](rec))
	return rec
}

// InsertAll appends recs in order with ids max+1, max+2, ...
func (c *Collection[T, P]) InsertAll(recs []T) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	base := c.maxID()
	added := make([]T, len(recs))
	for i, rec := range recs {
		P(&rec).SetID(base + i + 1)
		added[i] = rec
		c.items = append(c.items, clone[T, P](rec))
	}
	return added
}

// Update applies mutate to a copy of the record and stores it if mutate succeeds.
// The record keeps its id whatever mutate does.
func (c *Collection[T, P]) Update(id int, mutate func(*T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	i := c.indexOf(id)
	if i < 0 {
		return zero, ErrNotFound
	}

	rec := clone[T, P](c.items[i])
	if err := mutate(&rec); err != nil {
		return zero, err
	}
	P(&rec).SetID(id)
	c.items[i] = clone[T, P](rec)
	return rec, nil
}

// UpdateAll applies mutate to every record; it reports how many were changed.
func (c *Collection[T, P]) UpdateAll(mutate func(*T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := 0
	for i := range c.items {
		if mutate(&c.items[i]) {
			changed++
		}
	}
	return changed
}

func (c *Collection[T, P]) Delete(id int) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	i := c.indexOf(id)
	if i < 0 {
		return zero, ErrNotFound
	}
	removed := c.items[i]
	c.items = append(c.items[:i], c.items[i+1:]...)
	return removed, nil
}

func (c *Collection[T, P]) indexOf(id int) int {
	for i := range c.items {
		if P(&c.items[i]).GetID() == id {
			return i
		}
	}
	return -1
}

func (c *Collection[T, P]) maxID() int {
	highest := 0
	for i := range c.items {
		if id := P(&c.items[i]).GetID(); id > highest {
			highest = id
		}
	}
	return highest
}
