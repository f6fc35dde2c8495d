package costs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestIsExpired(t *testing.T) {
	at := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	assert.False(t, IsExpired(at, at.Add(59*time.Minute), time.Hour))
	assert.True(t, IsExpired(at, at.Add(time.Hour), time.Hour))
	assert.True(t, IsExpired(at, at.Add(2*time.Hour), time.Hour))
}

func TestCacheTTL(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)}
	c := NewCache[float64](time.Hour, clock)

	_, ok := c.Get("mumbai|india")
	assert.False(t, ok)

	c.Put("mumbai|india", 3600, clock.Now())
	v, ok := c.Get("mumbai|india")
	assert.True(t, ok)
	assert.Equal(t, 3600.0, v)

	clock.Advance(30 * time.Minute)
	_, ok = c.Get("mumbai|india")
	assert.True(t, ok)

	clock.Advance(30 * time.Minute)
	_, ok = c.Get("mumbai|india")
	assert.False(t, ok)
}

func TestCacheClear(t *testing.T) {
	c := NewCache[string](time.Hour, nil)
	c.Put("a", "x", time.Now())
	c.Clear()

	_, ok := c.Get("a")
	assert.False(t, ok)
}
