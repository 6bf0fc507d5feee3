// Package integration implements the five integration resource services. Each service owns
// one collection held in memory, persists the whole collection on every mutation and answers
// after a simulated network delay with a deep copy of the result.
package integration

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"naraintegration/services/store"
)

// Result reports whether an update or delete matched a record. A miss is not an error.
type Result int

// Result values.
const (
	NotFound Result = iota
	Found
)

// OK reports whether the operation matched a record.
func (r Result) OK() bool {
	return r == Found
}

func (r Result) String() string {
	if r == Found {
		return "found"
	}
	return "not_found"
}

// Latency is the simulated round-trip delay, drawn uniformly from [Min, Max].
type Latency struct {
	Min time.Duration
	Max time.Duration
}

// DefaultLatency mirrors the delay of the portal's mocked backend.
var DefaultLatency = Latency{Min: 100 * time.Millisecond, Max: 150 * time.Millisecond}

func (l Latency) duration() time.Duration {
	if l.Max <= l.Min {
		return l.Min
	}
	return l.Min + rand.N(l.Max-l.Min+1)
}

// Wait blocks for one simulated round trip. Only a cancelled ctx ends it early; any
// mutation made before the call has already been applied.
func (l Latency) Wait(ctx context.Context) error {
	d := l.duration()
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Options configures every service.
type Options struct {
	Latency Latency
	// Now defaults to time.Now in UTC.
	Now func() time.Time
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now().UTC()
}

// respond waits one round trip, then hands back value. value must already be a copy.
func respond[T any](ctx context.Context, opts Options, value T) (T, error) {
	if err := opts.Latency.Wait(ctx); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

// collection is one named, persisted list of records, newest first.
// Mutations and their persistence are serialized by mu.
type collection[T any] struct {
	mu    sync.Mutex
	key   string
	items []T
	store *store.Store
	idOf  func(*T) string
}

func newCollection[T any](st *store.Store, key string, seed []T, idOf func(*T) string) *collection[T] {
	if seed == nil {
		seed = []T{}
	}
	items := store.Read(st, key, seed)
	if items == nil {
		items = []T{}
	}
	return &collection[T]{key: key, items: items, store: st, idOf: idOf}
}

func (c *collection[T]) snapshot() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return store.Clone(c.items)
}

func (c *collection[T]) find(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.idOf(&c.items[i]) == id {
			return store.Clone(c.items[i]), true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) prepend(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{item}, c.items...)
	c.persist()
	return store.Clone(item)
}

// update applies fn to the record with id and persists. Nothing is written on a miss.
func (c *collection[T]) update(id string, fn func(*T)) (Result, T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.idOf(&c.items[i]) == id {
			fn(&c.items[i])
			c.persist()
			return Found, store.Clone(c.items[i])
		}
	}
	var zero T
	return NotFound, zero
}

// remove drops the record with id and persists the collection either way.
func (c *collection[T]) remove(id string) Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := NotFound
	kept := c.items[:0:0]
	for i := range c.items {
		if c.idOf(&c.items[i]) == id {
			result = Found
			continue
		}
		kept = append(kept, c.items[i])
	}
	c.items = kept
	c.persist()
	return result
}

// reset replaces the collection with seed and clears the persisted blob.
func (c *collection[T]) reset(seed []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seed == nil {
		seed = []T{}
	}
	c.items = store.Clone(seed)
	c.store.Reset(c.key)
}

func (c *collection[T]) persist() {
	c.store.Write(c.key, c.items)
}
