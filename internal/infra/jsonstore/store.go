// Package jsonstore provides a JSON file-based implementation of TaskRepository.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/ksuda/tracker/internal/domain"
)

// Store implements domain.TaskRepository using a single JSON file holding an
// ordered array of tasks. Collection order in the file is insertion order.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; an absent file is an empty store.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// List loads the full collection in insertion order.
func (s *Store) List() ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := s.withLock(syscall.LOCK_SH, func() error {
		var readErr error
		tasks, readErr = s.read()
		return readErr
	})
	return tasks, err
}

// Replace atomically rewrites the store with the given collection.
func (s *Store) Replace(tasks []*domain.Task) error {
	return s.withLock(syscall.LOCK_EX, func() error {
		return s.write(tasks)
	})
}

// Initialize creates an empty store file if it doesn't exist.
func (s *Store) Initialize() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil // Already exists
	}
	return s.Replace(nil)
}

// withLock executes fn while holding a file lock, so concurrent invocations
// serialize their load-mutate-persist cycles.
func (s *Store) withLock(lockType int, fn func() error) error {
	lock, err := s.acquireLock(lockType)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	return fn()
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, &domain.StorageError{Op: "create directory for", Path: s.lockPath, Err: err}
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, &domain.StorageError{Op: "open lock file", Path: s.lockPath, Err: err}
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, &domain.StorageError{Op: "lock", Path: s.lockPath, Err: err}
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() ([]*domain.Task, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // Absent file is an empty store
		}
		return nil, &domain.StorageError{Op: "read", Path: s.path, Err: err}
	}

	var tasks []*domain.Task
	if err := json.Unmarshal(content, &tasks); err != nil {
		return nil, &domain.StorageError{Op: "parse", Path: s.path, Err: fmt.Errorf("malformed store file: %w", err)}
	}

	return tasks, nil
}

func (s *Store) write(tasks []*domain.Task) error {
	// Keep the file a JSON array even when the store is empty.
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	content, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return &domain.StorageError{Op: "marshal", Path: s.path, Err: err}
	}

	// Write to temp file first, then rename, so a failed write leaves the
	// prior on-disk state intact.
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return &domain.StorageError{Op: "write", Path: tmpPath, Err: err}
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return &domain.StorageError{Op: "rename", Path: tmpPath, Err: err}
	}

	return nil
}

// Interface guards.
var (
	_ domain.TaskRepository   = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
)
