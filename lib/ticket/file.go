// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads a ticket collection from a JSONL file: one JSON
// ticket object per line, blank lines ignored. The unique-ID invariant
// is enforced at the load boundary — a duplicate id is an error, not a
// silent overwrite, because every later operation (toggle, selection)
// addresses tickets by id.
func LoadFile(path string) ([]Ticket, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ticket file: %w", err)
	}
	defer file.Close()

	var tickets []Ticket
	seen := make(map[int]int)

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var entry Ticket
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		if entry.ID <= 0 {
			return nil, fmt.Errorf("line %d: missing or non-positive id", lineNumber)
		}
		if entry.EventName == "" {
			return nil, fmt.Errorf("line %d: missing event_name", lineNumber)
		}
		if firstLine, exists := seen[entry.ID]; exists {
			return nil, fmt.Errorf("line %d: duplicate ticket id %d (first seen on line %d)",
				lineNumber, entry.ID, firstLine)
		}
		seen[entry.ID] = lineNumber
		tickets = append(tickets, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ticket file: %w", err)
	}

	return tickets, nil
}
