// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import "time"

// Seed returns the built-in sample collection: three tickets with ids
// 1-3, one of them already used. Each Time field is the creation
// instant passed by the caller — the collection is created once per
// session and there is no persistence, so "creation time" is simply
// process start.
//
// The exact field values are a compatibility contract: the viewer's
// first-run experience (counts 3 total / 1 used / 2 valid, "Theater B"
// as the sole used ticket) is pinned by tests.
func Seed(now time.Time) []Ticket {
	return []Ticket{
		{ID: 1, EventName: "DWP 2025", Location: "Jakarta", Time: now, Used: false},
		{ID: 2, EventName: "Theater B", Location: "Hall Y", Time: now, Used: true},
		{ID: 3, EventName: "Conference C", Location: "Center Z", Time: now, Used: false},
	}
}
