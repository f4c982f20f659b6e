package cache

import (
	"errors"
	"sync"
)

// ErrPoisoned is the panic value raised by every access to a Memo whose
// compute function panicked while holding the lock.
var ErrPoisoned = errors.New("cache: poisoned by a panic during compute")

// Memo is a thread-safe, unbounded, write-once memo table.
// Entries are never evicted or replaced.
//
// Memo must not be copied after first use (has mutex).
type Memo[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]V
	hits     uint64
	misses   uint64
	poisoned bool
}

// New creates an empty memo table.
func New[K comparable, V any]() *Memo[K, V] {
	return &Memo[K, V]{entries: make(map[K]V)}
}

// GetOrCompute returns the stored value for key, or calls compute, stores
// its result and returns it.
//
// compute runs under the lock, so it is called at most once per key even
// under contention, and concurrent callers for any key wait for it. If
// compute panics the panic propagates and the Memo is poisoned.
func (m *Memo[K, V]) GetOrCompute(key K, compute func() V) V {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkPoison()

	if v, ok := m.entries[key]; ok {
		m.hits++
		return v
	}
	m.misses++

	// Cleared only if compute returns.
	m.poisoned = true
	v := compute()
	m.poisoned = false

	m.entries[key] = v
	return v
}

// Stats returns a snapshot of the counters. Stats never panics, so it can
// be used to inspect a poisoned Memo.
func (m *Memo[K, V]) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Stats{
		Len:      len(m.entries),
		Hits:     m.hits,
		Misses:   m.misses,
		Poisoned: m.poisoned,
	}
}

// checkPoison panics if a previous compute panicked.
// Caller must hold m.mu.
func (m *Memo[K, V]) checkPoison() {
	if m.poisoned {
		panic(ErrPoisoned)
	}
}

// Stats contains memo statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Hits counts GetOrCompute calls answered from the table.
	Hits uint64
	// Misses counts GetOrCompute calls that ran compute.
	Misses uint64
	// Poisoned reports whether a compute function panicked.
	Poisoned bool
}

// HitRate returns hits / (hits + misses), or 0 before the first lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
