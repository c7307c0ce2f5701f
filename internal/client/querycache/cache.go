// Package querycache is a keyed client-side cache of fetched collections.
//
// Values are cloned on the way in and out so callers never share backing
// arrays with the cache. Every key carries a generation that Cancel, Set and
// Restore advance; a fetch started under an older generation never
// overwrites the entry.
package querycache

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ErrSuperseded is returned by Fetch when the key was canceled, set or
// restored while the fetch was in flight.
var ErrSuperseded = errors.New("querycache: fetch superseded")

// Key is a cache key. String must be unique per key.
type Key interface {
	comparable
	String() string
}

// Fetcher loads the authoritative value of one key.
type Fetcher[V any] func(ctx context.Context) (V, error)

type entry[V any] struct {
	value   V
	present bool
	stale   bool
	gen     uint64
	cancel  context.CancelFunc
	fetcher Fetcher[V]
}

// Cache holds the last known value per key.
type Cache[K Key, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[V]
	group   singleflight.Group
	clone   func(V) V
	log     *slog.Logger

	base     context.Context
	stop     context.CancelFunc
	inflight sync.WaitGroup
}

// New creates a Cache. clone copies a value; nil means values are
// stored as is.
func New[K Key, V any](name string, clone func(V) V, logger *slog.Logger) *Cache[K, V] {
	if clone == nil {
		clone = func(v V) V { return v }
	}
	base, stop := context.WithCancel(context.Background())
	return &Cache[K, V]{
		entries: make(map[K]*entry[V]),
		clone:   clone,
		log:     logger.With("cache", name),
		base:    base,
		stop:    stop,
	}
}

func (c *Cache[K, V]) entry(key K) *entry[V] {
	e, ok := c.entries[key]
	if !ok {
		e = &entry[V]{}
		c.entries[key] = e
	}
	return e
}

// bump starts a new generation and aborts the in-flight fetch. Callers hold mu.
func (e *entry[V]) bump() {
	e.gen++
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

// Get returns a copy of the cached value.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !e.present {
		var zero V
		return zero, false
	}
	return c.clone(e.value), true
}

// Stale reports whether key was invalidated and not refetched since.
func (c *Cache[K, V]) Stale(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	return ok && e.stale
}

// Keys returns every key holding a value.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, len(c.entries))
	for k, e := range c.entries {
		if e.present {
			keys = append(keys, k)
		}
	}
	return keys
}

// Fetch loads key through fn and stores the result. Concurrent fetches of
// the same key and generation share one call. fn is remembered so that
// Invalidate can refetch in the background.
func (c *Cache[K, V]) Fetch(ctx context.Context, key K, fn Fetcher[V]) (V, error) {
	c.mu.Lock()
	e := c.entry(key)
	e.fetcher = fn
	gen := e.gen
	c.mu.Unlock()

	ch := c.group.DoChan(key.String()+"#"+strconv.FormatUint(gen, 10), func() (any, error) {
		return c.load(ctx, key, gen, fn)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			var zero V
			return zero, res.Err
		}
		return c.clone(res.Val.(V)), nil
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}

func (c *Cache[K, V]) load(ctx context.Context, key K, gen uint64, fn Fetcher[V]) (V, error) {
	var zero V

	fctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	defer cancel()

	c.mu.Lock()
	e := c.entry(key)
	if e.gen != gen {
		c.mu.Unlock()
		return zero, ErrSuperseded
	}
	e.cancel = cancel
	c.mu.Unlock()

	// Stop when either the cache closes or the key is bumped.
	stop := context.AfterFunc(c.base, cancel)
	defer stop()

	v, err := fn(fctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if e.gen != gen {
		c.log.DebugContext(ctx, "fetch result discarded", slog.String("key", key.String()))
		return zero, ErrSuperseded
	}
	e.cancel = nil
	if err != nil {
		return zero, err
	}
	e.value = c.clone(v)
	e.present = true
	e.stale = false
	return c.clone(v), nil
}

// Cancel aborts the in-flight fetch of each key and makes sure its result,
// should it still arrive, is dropped.
func (c *Cache[K, V]) Cancel(keys ...K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, k := range keys {
		if e, ok := c.entries[k]; ok {
			e.bump()
		}
	}
}

// Set installs v for key.
func (c *Cache[K, V]) Set(key K, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entry(key)
	e.bump()
	e.value = c.clone(v)
	e.present = true
}

// Update replaces the value of key with fn(current). current is the zero
// value and ok is false when key holds nothing.
func (c *Cache[K, V]) Update(key K, fn func(current V, ok bool) V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entry(key)
	cur := e.value
	if e.present {
		cur = c.clone(cur)
	}
	next := fn(cur, e.present)
	e.bump()
	e.value = next
	e.present = true
}

// UpdateIfPresent replaces the value of key with fn(current) only when key
// holds a value. It reports whether fn ran.
func (c *Cache[K, V]) UpdateIfPresent(key K, fn func(current V) V) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !e.present {
		return false
	}
	next := fn(c.clone(e.value))
	e.bump()
	e.value = next
	return true
}

// Remove forgets key.
func (c *Cache[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.bump()
		delete(c.entries, key)
	}
}

// Invalidate marks keys stale and refetches, in the background, those that
// were fetched before.
func (c *Cache[K, V]) Invalidate(keys ...K) {
	for _, k := range keys {
		c.invalidate(k)
	}
}

// InvalidateMatching invalidates every cached key for which match is true.
func (c *Cache[K, V]) InvalidateMatching(match func(K) bool) {
	for _, k := range c.Keys() {
		if match(k) {
			c.invalidate(k)
		}
	}
}

func (c *Cache[K, V]) invalidate(key K) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		return
	}
	e.stale = true
	fn := e.fetcher
	c.mu.Unlock()

	if fn == nil || c.base.Err() != nil {
		return
	}

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		if _, err := c.Fetch(c.base, key, fn); err != nil && !errors.Is(err, ErrSuperseded) && c.base.Err() == nil {
			c.log.Warn("background refetch failed",
				slog.String("key", key.String()),
				slog.String("error", err.Error()),
			)
		}
	}()
}

// Wait blocks until every background refetch has finished.
func (c *Cache[K, V]) Wait() {
	c.inflight.Wait()
}

// Close aborts all fetches and waits for background refetches to exit.
func (c *Cache[K, V]) Close() {
	c.stop()
	c.inflight.Wait()
}
