package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/ksuda/tracker/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID int // Task ID to delete
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Task *domain.Task // The deleted task
}

// DeleteTask is the use case for removing a task.
type DeleteTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute removes the task with the given ID and returns it.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	all, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	i := findTask(all, in.TaskID)
	if i < 0 {
		return nil, domain.ErrTaskNotFound
	}

	task := all[i]
	all = slices.Delete(all, i, i+1)

	if err := uc.tasks.Replace(all); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("deleted: %q", task.Description))
	}

	return &DeleteTaskOutput{Task: task}, nil
}
