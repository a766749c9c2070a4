package domain

import (
	"strings"
	"testing"
	"time"
)

func TestNewTask(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	task := NewTask(3, "Buy milk", now)

	if task.ID != 3 {
		t.Errorf("ID = %d, want 3", task.ID)
	}
	if task.Description != "Buy milk" {
		t.Errorf("Description = %q, want %q", task.Description, "Buy milk")
	}
	if task.Status != StatusTodo {
		t.Errorf("Status = %q, want %q", task.Status, StatusTodo)
	}
	if !task.Created.Equal(now) {
		t.Errorf("Created = %v, want %v", task.Created, now)
	}
	if !task.Updated.Equal(now) {
		t.Errorf("Updated = %v, want %v", task.Updated, now)
	}
}

func TestTask_Touch(t *testing.T) {
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)

	task := NewTask(1, "Buy milk", created)
	task.Touch(later)

	if !task.Created.Equal(created) {
		t.Errorf("Touch changed Created to %v", task.Created)
	}
	if !task.Updated.Equal(later) {
		t.Errorf("Updated = %v, want %v", task.Updated, later)
	}
	if task.Updated.Before(task.Created) {
		t.Error("Updated is before Created")
	}
}

func TestTask_DisplayDetails(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	task := NewTask(7, "Buy eggs", now)
	task.Status = StatusInProgress
	task.Touch(now.Add(time.Minute))

	line := task.DisplayDetails()

	for _, want := range []string{"[7]", "(in-progress)", "Buy eggs", "2024-06-01T12:00:00Z", "2024-06-01T12:01:00Z"} {
		if !strings.Contains(line, want) {
			t.Errorf("DisplayDetails() = %q, missing %q", line, want)
		}
	}
	if strings.Contains(line, "\n") {
		t.Errorf("DisplayDetails() = %q, want a single line", line)
	}
}
