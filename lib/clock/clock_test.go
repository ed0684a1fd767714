// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"testing"
	"time"
)

func TestFakeNow(t *testing.T) {
	initial := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	fake := Fake(initial)

	if !fake.Now().Equal(initial) {
		t.Errorf("Now() = %v, want %v", fake.Now(), initial)
	}

	// Time stands still without Advance.
	if !fake.Now().Equal(initial) {
		t.Error("fake clock moved on its own")
	}

	fake.Advance(90 * time.Minute)
	want := initial.Add(90 * time.Minute)
	if !fake.Now().Equal(want) {
		t.Errorf("after Advance, Now() = %v, want %v", fake.Now(), want)
	}
}

func TestRealNow(t *testing.T) {
	before := time.Now()
	now := Real().Now()
	after := time.Now()
	if now.Before(before) || now.After(after) {
		t.Errorf("Real().Now() = %v outside [%v, %v]", now, before, after)
	}
}
