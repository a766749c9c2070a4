// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"time"
)

// Task represents a single tracked unit of work.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created     time.Time `json:"created_at"`  // Creation time, immutable
	Updated     time.Time `json:"updated_at"`  // Refreshed on every mutation
	Description string    `json:"description"` // Description (required)
	Status      Status    `json:"status"`      // Current status
	ID          int       `json:"id"`          // Task ID, immutable once assigned
}

// NewTask constructs a task with status todo and both timestamps set to now.
// Description non-emptiness is validated by the engine before construction.
func NewTask(id int, description string, now time.Time) *Task {
	return &Task{
		ID:          id,
		Description: description,
		Status:      StatusTodo,
		Created:     now,
		Updated:     now,
	}
}

// Touch refreshes the updated timestamp after a mutation.
func (t *Task) Touch(now time.Time) {
	t.Updated = now
}

// DisplayDetails returns a single human-readable line suitable for listing.
func (t *Task) DisplayDetails() string {
	return fmt.Sprintf("[%d] (%s) %s  created: %s  updated: %s",
		t.ID,
		t.Status,
		t.Description,
		t.Created.Format(time.RFC3339),
		t.Updated.Format(time.RFC3339),
	)
}
