package usecase

import (
	"strings"

	"github.com/ksuda/tracker/internal/domain"
)

// findTask returns the index of the task with the given ID, or -1.
func findTask(tasks []*domain.Task, id int) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// validateDescription rejects empty or whitespace-only descriptions.
func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return domain.ErrEmptyDescription
	}
	return nil
}
