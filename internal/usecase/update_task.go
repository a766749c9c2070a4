package usecase

import (
	"context"
	"fmt"

	"github.com/ksuda/tracker/internal/domain"
)

// UpdateTaskInput contains the parameters for updating a task description.
type UpdateTaskInput struct {
	Description string // New description (required)
	TaskID      int    // Task ID to update (required)
}

// UpdateTaskOutput contains the result of updating a task.
type UpdateTaskOutput struct {
	Task *domain.Task // The updated task
}

// UpdateTask is the use case for replacing a task's description.
type UpdateTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewUpdateTask creates a new UpdateTask use case.
func NewUpdateTask(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *UpdateTask {
	return &UpdateTask{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute replaces the description of the task with the given ID.
func (uc *UpdateTask) Execute(_ context.Context, in UpdateTaskInput) (*UpdateTaskOutput, error) {
	if err := validateDescription(in.Description); err != nil {
		return nil, err
	}

	all, err := uc.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	i := findTask(all, in.TaskID)
	if i < 0 {
		return nil, domain.ErrTaskNotFound
	}

	task := all[i]
	task.Description = in.Description
	task.Touch(uc.clock.Now())

	if err := uc.tasks.Replace(all); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("updated: %q", task.Description))
	}

	return &UpdateTaskOutput{Task: task}, nil
}
