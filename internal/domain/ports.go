package domain

import "time"

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the store if it doesn't exist.
	Initialize() error
}

// TaskRepository persists the full task collection.
// The collection is ordered: insertion order equals creation order and must
// survive a round trip through the store.
type TaskRepository interface {
	// List loads the full collection. A missing store file yields an empty
	// collection; an unreadable or malformed file yields a *StorageError.
	List() ([]*Task, error)

	// Replace atomically rewrites the store with the given collection.
	Replace(tasks []*Task) error
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Logger records operational events.
// Implementations must never fail the calling operation.
type Logger interface {
	Debug(taskID int, category, msg string)
	Info(taskID int, category, msg string)
	Warn(taskID int, category, msg string)
	Error(taskID int, category, msg string)
}
