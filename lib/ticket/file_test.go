// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTicketFile writes lines to a temp JSONL file and returns the path.
func writeTicketFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tickets.jsonl")
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write ticket file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeTicketFile(t,
		`{"id": 1, "event_name": "DWP 2025", "location": "Jakarta", "time": "2025-01-01T15:04:00Z", "used": false}`,
		``,
		`{"id": 2, "event_name": "Theater B", "location": "Hall Y", "time": "2025-02-01T19:30:00Z", "used": true}`,
	)

	tickets, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(tickets) != 2 {
		t.Fatalf("expected 2 tickets (blank line skipped), got %d", len(tickets))
	}
	if tickets[0].ID != 1 || tickets[0].EventName != "DWP 2025" {
		t.Errorf("first ticket mismatch: %+v", tickets[0])
	}
	if !tickets[1].Used {
		t.Error("second ticket should be used")
	}
}

func TestLoadFileDuplicateID(t *testing.T) {
	path := writeTicketFile(t,
		`{"id": 1, "event_name": "A", "location": "X", "time": "2025-01-01T00:00:00Z"}`,
		`{"id": 1, "event_name": "B", "location": "Y", "time": "2025-01-02T00:00:00Z"}`,
	)

	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("duplicate id should be rejected")
	}
	if !strings.Contains(err.Error(), "duplicate ticket id 1") {
		t.Errorf("error should name the duplicate id, got: %v", err)
	}
}

func TestLoadFileMissingFields(t *testing.T) {
	for name, line := range map[string]string{
		"no id":    `{"event_name": "A", "location": "X", "time": "2025-01-01T00:00:00Z"}`,
		"no name":  `{"id": 1, "location": "X", "time": "2025-01-01T00:00:00Z"}`,
		"bad json": `{id: 1}`,
	} {
		path := writeTicketFile(t, line)
		if _, err := LoadFile(path); err == nil {
			t.Errorf("%s: expected error, got none", name)
		}
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.jsonl")); err == nil {
		t.Fatal("missing file should be an error")
	}
}
