package querycache

type snapshotEntry[V any] struct {
	value   V
	present bool
}

// Snapshot is the state of a set of keys at one instant.
type Snapshot[K Key, V any] struct {
	entries map[K]snapshotEntry[V]
	order   []K
}

// Keys returns the captured keys in capture order.
func (s Snapshot[K, V]) Keys() []K {
	return append([]K(nil), s.order...)
}

// Value returns the captured value of key.
func (s Snapshot[K, V]) Value(key K) (V, bool) {
	se, ok := s.entries[key]
	return se.value, ok && se.present
}

// Snapshot captures keys together. Duplicate keys are captured once.
func (c *Cache[K, V]) Snapshot(keys ...K) Snapshot[K, V] {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot[K, V]{entries: make(map[K]snapshotEntry[V], len(keys))}
	for _, k := range keys {
		if _, dup := s.entries[k]; dup {
			continue
		}
		var se snapshotEntry[V]
		if e, ok := c.entries[k]; ok && e.present {
			se = snapshotEntry[V]{value: c.clone(e.value), present: true}
		}
		s.entries[k] = se
		s.order = append(s.order, k)
	}
	return s
}

// Restore puts every captured key back under one lock. Keys that held
// nothing at capture time are removed.
func (c *Cache[K, V]) Restore(s Snapshot[K, V]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, k := range s.order {
		se := s.entries[k]
		e := c.entry(k)
		e.bump()
		if !se.present {
			var zero V
			e.value = zero
			e.present = false
			continue
		}
		e.value = c.clone(se.value)
		e.present = true
	}
}
