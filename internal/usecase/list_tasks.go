package usecase

import (
	"context"
	"fmt"

	"github.com/ksuda/tracker/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Status *domain.Status // Filter by status (nil = all tasks)
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks []*domain.Task // Tasks in insertion order
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{
		tasks: tasks,
	}
}

// Execute lists tasks matching the given input criteria, preserving
// insertion order. An empty result is a valid outcome.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	all, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	if in.Status == nil {
		return &ListTasksOutput{Tasks: all}, nil
	}

	filtered := make([]*domain.Task, 0, len(all))
	for _, t := range all {
		if t.Status == *in.Status {
			filtered = append(filtered, t)
		}
	}

	return &ListTasksOutput{Tasks: filtered}, nil
}
