package concurrency

import (
	"strconv"
	"sync"
)

// LockManager hands out one mutex per key so that operations on the same
// record serialize while operations on different records run in parallel.
// Locks are never evicted, so callers must only request locks for keys that
// refer to existing records.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key, creating it on first use
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// GetIDLock returns the mutex for a numeric record id
func (lm *LockManager) GetIDLock(id int64) *sync.Mutex {
	return lm.GetLock(strconv.FormatInt(id, 10))
}

// Len returns the number of keys holding a lock
func (lm *LockManager) Len() int {
	n := 0
	lm.locks.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// WithLock runs fn while holding the lock for key
func (lm *LockManager) WithLock(key string, fn func() error) error {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}
