package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_IsUTC(t *testing.T) {
	c := NewRealClock()
	assert.Equal(t, time.UTC, c.Now().Location())
	assert.True(t, c.Until(c.Now().Add(time.Hour)) > 0)
	assert.True(t, c.Since(c.Now().Add(-time.Hour)) > 0)
}

func TestSimulatedClock(t *testing.T) {
	start := time.Date(2025, 8, 27, 12, 0, 0, 0, time.UTC)
	c := NewSimulatedClock(start)

	assert.Equal(t, start, c.Now())

	c.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), c.Now())
	assert.Equal(t, 90*time.Minute, c.Since(start))
	assert.Equal(t, -90*time.Minute, c.Until(start))

	c.Set(start)
	assert.Equal(t, start, c.Now())
}

func TestSimulatedClock_ConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	c := NewSimulatedClock(time.Date(2025, 8, 27, 14, 0, 0, 0, loc))

	assert.Equal(t, time.Date(2025, 8, 27, 12, 0, 0, 0, time.UTC), c.Now())
}

func TestSimulatedClock_ConcurrentAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewSimulatedClock(start)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Advance(time.Second)
			_ = c.Now()
		}()
	}
	wg.Wait()

	assert.Equal(t, start.Add(50*time.Second), c.Now())
}
