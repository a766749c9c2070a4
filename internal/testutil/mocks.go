// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"time"

	"github.com/ksuda/tracker/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward and returns the new time.
func (m *MockClock) Advance(d time.Duration) time.Time {
	m.NowTime = m.NowTime.Add(d)
	return m.NowTime
}

// MockTaskRepository is a slice-backed test double for domain.TaskRepository.
// The slice preserves insertion order like the real store. List returns deep
// copies so that in-memory mutation without a Replace does not leak into the
// stored state, matching load-from-disk semantics.
type MockTaskRepository struct {
	Tasks      []*domain.Task
	ListErr    error
	ReplaceErr error
	Replaced   int // count of successful Replace calls
}

// List loads a deep copy of the stored collection.
func (m *MockTaskRepository) List() ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]*domain.Task, len(m.Tasks))
	for i, t := range m.Tasks {
		clone := *t
		out[i] = &clone
	}
	return out, nil
}

// Replace stores the given collection.
func (m *MockTaskRepository) Replace(tasks []*domain.Task) error {
	if m.ReplaceErr != nil {
		return m.ReplaceErr
	}
	m.Tasks = tasks
	m.Replaced++
	return nil
}

// Seed replaces the stored collection with tasks built from the given
// descriptions, one per task, IDs assigned sequentially from 1.
func (m *MockTaskRepository) Seed(now time.Time, descriptions ...string) {
	m.Tasks = nil
	for i, d := range descriptions {
		m.Tasks = append(m.Tasks, domain.NewTask(i+1, d, now))
	}
}

// MockLogger is a no-op test double for domain.Logger that records messages.
type MockLogger struct {
	Lines []string
}

// Debug records a debug message.
func (m *MockLogger) Debug(_ int, _, msg string) { m.Lines = append(m.Lines, msg) }

// Info records an info message.
func (m *MockLogger) Info(_ int, _, msg string) { m.Lines = append(m.Lines, msg) }

// Warn records a warning message.
func (m *MockLogger) Warn(_ int, _, msg string) { m.Lines = append(m.Lines, msg) }

// Error records an error message.
func (m *MockLogger) Error(_ int, _, msg string) { m.Lines = append(m.Lines, msg) }

// Interface guards.
var (
	_ domain.Clock          = (*MockClock)(nil)
	_ domain.TaskRepository = (*MockTaskRepository)(nil)
	_ domain.Logger         = (*MockLogger)(nil)
)
