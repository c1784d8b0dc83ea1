package lockout

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestGovernor(clock *fakeClock, opts ...Option) Governor {
	return NewGovernor(append([]Option{WithClock(clock.Now)}, opts...)...)
}

// TestRecordFailure_Scenario walks the threshold 5 / cooldown 30m sequence:
// five allowed failures, a lock on the sixth, no extension inside the
// window, and a fresh series after expiry.
func TestRecordFailure_Scenario(t *testing.T) {
	clock := newFakeClock()
	g := newTestGovernor(clock)
	const email = "a@x.io"

	for i := 1; i <= 5; i++ {
		d := g.RecordFailure(email)
		assert.False(t, d.Locked, "call %d", i)
		assert.Equal(t, i, d.Failures)
		clock.Advance(time.Second)
	}

	t6 := clock.Now()
	d := g.RecordFailure(email)
	require.True(t, d.Locked)
	assert.Equal(t, t6.Add(30*time.Minute), d.Until)
	assert.Equal(t, 30*time.Minute, d.RetryAfter)

	clock.Advance(10 * time.Minute)
	d7 := g.RecordFailure(email)
	require.True(t, d7.Locked)
	assert.Equal(t, d.Until, d7.Until, "window must not be extended")
	assert.Equal(t, 20*time.Minute, d7.RetryAfter)

	clock.Advance(21 * time.Minute)
	d8 := g.RecordFailure(email)
	assert.False(t, d8.Locked)
	assert.Equal(t, 1, d8.Failures)

	rec, ok := g.Snapshot(email)
	require.True(t, ok)
	assert.True(t, rec.LockedUntil.IsZero())
	assert.Equal(t, clock.Now(), rec.LastAttemptAt)
}

func TestRecordFailure_ExactExpiryIsUnlocked(t *testing.T) {
	clock := newFakeClock()
	g := newTestGovernor(clock, WithThreshold(0), WithCooldown(time.Minute))

	d := g.RecordFailure("id")
	require.True(t, d.Locked)

	clock.Advance(time.Minute)
	assert.False(t, g.IsLocked("id"))

	// threshold 0: the first failure of the new series locks again
	d = g.RecordFailure("id")
	assert.True(t, d.Locked)
	assert.Equal(t, 1, d.Failures)
	assert.Equal(t, clock.Now().Add(time.Minute), d.Until)
}

func TestRecordFailure_IdentifiersAreIndependent(t *testing.T) {
	clock := newFakeClock()
	g := newTestGovernor(clock, WithThreshold(1))

	g.RecordFailure("a")
	d := g.RecordFailure("a")
	require.True(t, d.Locked)

	d = g.RecordFailure("b")
	assert.False(t, d.Locked)
	assert.Equal(t, 1, d.Failures)
}

func TestIsLocked(t *testing.T) {
	clock := newFakeClock()
	g := newTestGovernor(clock, WithThreshold(1), WithCooldown(5*time.Minute))

	assert.False(t, g.IsLocked("unknown"))

	g.RecordFailure("id")
	assert.False(t, g.IsLocked("id"))

	g.RecordFailure("id")
	assert.True(t, g.IsLocked("id"))

	rec, _ := g.Snapshot("id")
	assert.Equal(t, 2, rec.FailedCount, "IsLocked must not count as an attempt")

	clock.Advance(5 * time.Minute)
	assert.False(t, g.IsLocked("id"))
}

func TestReset(t *testing.T) {
	clock := newFakeClock()
	g := newTestGovernor(clock, WithThreshold(2))

	for range 3 {
		g.RecordFailure("id")
	}
	require.True(t, g.IsLocked("id"))

	g.Reset("id")
	assert.False(t, g.IsLocked("id"))

	rec, ok := g.Snapshot("id")
	require.True(t, ok, "reset keeps the record")
	assert.Zero(t, rec.FailedCount)

	d := g.RecordFailure("id")
	assert.False(t, d.Locked)
	assert.Equal(t, 1, d.Failures)
}

func TestReset_UnknownIsNoop(t *testing.T) {
	g := NewGovernor()
	g.Reset("nobody")

	_, ok := g.Snapshot("nobody")
	assert.False(t, ok)
}

func TestStats(t *testing.T) {
	clock := newFakeClock()
	g := newTestGovernor(clock, WithThreshold(0), WithCooldown(time.Minute))

	g.RecordFailure("a")
	g.RecordFailure("b")
	clock.Advance(30 * time.Second)
	g.RecordFailure("c")

	assert.Equal(t, Stats{Tracked: 3, Locked: 3}, g.Stats())

	clock.Advance(31 * time.Second)
	assert.Equal(t, Stats{Tracked: 3, Locked: 1}, g.Stats())
}

func TestOptions_IgnoreInvalid(t *testing.T) {
	g := NewGovernor(WithThreshold(-1), WithCooldown(0), WithClock(nil)).(*governor)

	assert.Equal(t, DefaultThreshold, g.threshold)
	assert.Equal(t, DefaultCooldown, g.cooldown)
	assert.NotNil(t, g.now)
}

// TestRecordFailure_Concurrent checks that concurrent failures on one
// identifier are never lost and that exactly one of them opens the window.
func TestRecordFailure_Concurrent(t *testing.T) {
	clock := newFakeClock()
	const workers = 50
	g := newTestGovernor(clock, WithThreshold(workers))

	var wg sync.WaitGroup
	results := make(chan Decision, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- g.RecordFailure("shared")
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int]bool)
	locked := 0
	for d := range results {
		seen[d.Failures] = true
		if d.Locked {
			locked++
		}
	}

	assert.Len(t, seen, workers, "every call must observe a distinct count")
	assert.Equal(t, 0, locked)

	rec, _ := g.Snapshot("shared")
	assert.Equal(t, workers, rec.FailedCount)

	assert.True(t, g.RecordFailure("shared").Locked)
}

func TestRecordFailure_ConcurrentManyIdentifiers(t *testing.T) {
	g := NewGovernor(WithThreshold(100))

	var wg sync.WaitGroup
	for i := range 20 {
		id := fmt.Sprintf("user-%d@x.io", i)
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				g.RecordFailure(id)
				_ = g.IsLocked(id)
				_ = g.Stats()
			}()
		}
	}
	wg.Wait()

	for i := range 20 {
		rec, ok := g.Snapshot(fmt.Sprintf("user-%d@x.io", i))
		require.True(t, ok)
		assert.Equal(t, 10, rec.FailedCount)
	}
	assert.Equal(t, 20, g.Stats().Tracked)
}
