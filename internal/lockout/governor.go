// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lockout

import (
	"sync"
	"time"
)

const (
	// DefaultThreshold is the number of failures tolerated before a cooldown.
	DefaultThreshold = 5
	// DefaultCooldown is the length of a cooldown window.
	DefaultCooldown = 30 * time.Minute
)

// Record is the per-identifier failure state. A zero LockedUntil means no
// cooldown was ever opened or it was cleared.
type Record struct {
	FailedCount   int
	LastAttemptAt time.Time
	LockedUntil   time.Time
}

// Decision is the outcome of [Governor.RecordFailure].
type Decision struct {
	// Locked is true when id is inside a cooldown after this failure.
	Locked bool
	// Until is the end of the cooldown. Zero when not locked.
	Until time.Time
	// RetryAfter is Until minus the evaluation time. Zero when not locked.
	RetryAfter time.Duration
	// Failures is the counter value after this failure.
	Failures int
}

// Stats is a point-in-time summary of the governor table.
type Stats struct {
	// Tracked is the number of identifiers with a record.
	Tracked int
	// Locked is the number of identifiers with an active cooldown.
	Locked int
}

type entry struct {
	mu     sync.Mutex
	record Record
}

// governor is the private implementation of [Governor].
type governor struct {
	mu      sync.Mutex
	entries map[string]*entry

	threshold int
	cooldown  time.Duration
	now       func() time.Time
}

// Option configures a governor.
type Option func(*governor)

// WithThreshold sets the failure count above which a cooldown opens.
// 0 locks on the very first failure. Negative values are ignored.
func WithThreshold(n int) Option {
	return func(g *governor) {
		if n >= 0 {
			g.threshold = n
		}
	}
}

// WithCooldown sets the cooldown length. Non-positive values are ignored.
func WithCooldown(d time.Duration) Option {
	return func(g *governor) {
		if d > 0 {
			g.cooldown = d
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(g *governor) {
		if now != nil {
			g.now = now
		}
	}
}

// NewGovernor returns a [Governor] with [DefaultThreshold] and
// [DefaultCooldown] unless overridden by opts.
func NewGovernor(opts ...Option) Governor {
	g := &governor{
		entries:   make(map[string]*entry),
		threshold: DefaultThreshold,
		cooldown:  DefaultCooldown,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// RecordFailure implements [Governor].
func (g *governor) RecordFailure(id string) Decision {
	e := g.getOrCreate(id)

	e.mu.Lock()
	defer e.mu.Unlock()

	now := g.now()
	r := &e.record

	// expired window: start a new series
	if !r.LockedUntil.IsZero() && !now.Before(r.LockedUntil) {
		r.FailedCount = 0
		r.LockedUntil = time.Time{}
	}

	r.FailedCount++
	r.LastAttemptAt = now

	if !r.LockedUntil.IsZero() {
		return Decision{Locked: true, Until: r.LockedUntil, RetryAfter: r.LockedUntil.Sub(now), Failures: r.FailedCount}
	}

	if r.FailedCount > g.threshold {
		r.LockedUntil = now.Add(g.cooldown)
		return Decision{Locked: true, Until: r.LockedUntil, RetryAfter: g.cooldown, Failures: r.FailedCount}
	}

	return Decision{Failures: r.FailedCount}
}

// IsLocked implements [Governor].
func (g *governor) IsLocked(id string) bool {
	e, ok := g.get(id)
	if !ok {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return g.active(e.record)
}

// Reset implements [Governor].
func (g *governor) Reset(id string) {
	e, ok := g.get(id)
	if !ok {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.record.FailedCount = 0
	e.record.LockedUntil = time.Time{}
}

// Snapshot implements [Governor].
func (g *governor) Snapshot(id string) (Record, bool) {
	e, ok := g.get(id)
	if !ok {
		return Record{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.record, true
}

// Stats implements [Governor].
func (g *governor) Stats() Stats {
	g.mu.Lock()
	entries := make([]*entry, 0, len(g.entries))
	for _, e := range g.entries {
		entries = append(entries, e)
	}
	g.mu.Unlock()

	stats := Stats{Tracked: len(entries)}
	for _, e := range entries {
		e.mu.Lock()
		if g.active(e.record) {
			stats.Locked++
		}
		e.mu.Unlock()
	}

	return stats
}

func (g *governor) active(r Record) bool {
	return !r.LockedUntil.IsZero() && g.now().Before(r.LockedUntil)
}

func (g *governor) get(id string) (*entry, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.entries[id]
	return e, ok
}

func (g *governor) getOrCreate(id string) *entry {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.entries[id]
	if !ok {
		e = &entry{}
		g.entries[id] = e
	}

	return e
}
