package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrInvalidStatus    = errors.New("invalid status")
)

// StorageError reports that the backing store file could not be read,
// parsed, or written. It is fatal for the current invocation and must
// never be reported as a missing task.
type StorageError struct {
	Err  error
	Op   string
	Path string
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
