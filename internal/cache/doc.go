// Package cache provides a generic write-once memo table.
//
// # Memo[K, V]
//
// A mutex-guarded map that computes each value at most once:
//
//	m := cache.New[string, int]()
//	v := m.GetOrCompute("key", func() int { return expensive() })
//
// The compute function runs while the lock is held. That serializes all
// misses, which is acceptable when misses are rare and each value is
// expensive enough that computing it twice would be the larger cost.
//
// # Poisoning
//
// If a compute function panics, the table is left poisoned: the panic
// propagates to the caller, and every later GetOrCompute panics with
// [ErrPoisoned]. Stats keeps working.
//
// # Thread Safety
//
// Memo is safe for concurrent use. It must not be copied after first use
// (it contains a mutex).
package cache
