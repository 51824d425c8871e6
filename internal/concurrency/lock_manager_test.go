package concurrency

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockManager_SameKeySameMutex(t *testing.T) {
	lm := NewLockManager()

	assert.Same(t, lm.GetLock("42"), lm.GetLock("42"))
	assert.Same(t, lm.GetLock("42"), lm.GetIDLock(42))
	assert.NotSame(t, lm.GetLock("42"), lm.GetLock("43"))
}

func TestLockManager_Len(t *testing.T) {
	lm := NewLockManager()
	assert.Equal(t, 0, lm.Len())

	lm.GetIDLock(1)
	lm.GetIDLock(1)
	lm.GetLock("2")
	assert.Equal(t, 2, lm.Len())
}

func TestLockManager_WithLockSerializes(t *testing.T) {
	lm := NewLockManager()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = lm.WithLock("shared", func() error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestLockManager_WithLockReturnsError(t *testing.T) {
	lm := NewLockManager()
	sentinel := errors.New("boom")

	err := lm.WithLock("k", func() error { return sentinel })
	assert.ErrorIs(t, err, sentinel)

	// lock must be released after an error
	mu := lm.GetLock("k")
	assert.True(t, mu.TryLock())
	mu.Unlock()
}
