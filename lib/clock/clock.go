// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source for testability.
// Production code injects Real(); tests inject Fake() with a pinned
// time so seed timestamps and rendered dates are deterministic.
package clock

import (
	"sync"
	"time"
)

// Clock abstracts the current-time lookup. Code that stamps tickets or
// renders timestamps accepts a Clock instead of calling time.Now
// directly.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// Real returns a Clock backed by the standard time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Fake returns a FakeClock pinned to the given time. Time stands still
// until Advance is called.
func Fake(initial time.Time) *FakeClock {
	return &FakeClock{current: initial}
}

// FakeClock is a deterministic Clock for testing. Safe for concurrent
// use.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
}

// Now returns the pinned time.
func (clock *FakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.current
}

// Advance moves the pinned time forward by d.
func (clock *FakeClock) Advance(d time.Duration) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.current = clock.current.Add(d)
}
