// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/ksuda/tracker/internal/domain"
)

// AddTaskInput contains the parameters for creating a new task.
type AddTaskInput struct {
	Description string // Task description (required)
}

// AddTaskOutput contains the result of creating a new task.
type AddTaskOutput struct {
	Task *domain.Task // The created task
}

// AddTask is the use case for creating a new task.
type AddTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *AddTask {
	return &AddTask{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute creates a new task with the given input.
// The new ID is one greater than the current maximum in the store.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	// The CLI validates first; guard here as well.
	if err := validateDescription(in.Description); err != nil {
		return nil, err
	}

	all, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	task := domain.NewTask(domain.NextID(all), in.Description, uc.clock.Now())
	all = append(all, task)

	if err := uc.tasks.Replace(all); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("added: %q", task.Description))
	}

	return &AddTaskOutput{Task: task}, nil
}
