package usecase

import (
	"context"

	"github.com/ksuda/tracker/internal/domain"
)

// MarkInProgressInput contains the parameters for marking a task in-progress.
type MarkInProgressInput struct {
	TaskID int // Task ID to mark
}

// MarkInProgressOutput contains the result of marking a task in-progress.
type MarkInProgressOutput struct {
	Task *domain.Task // The updated task
}

// MarkInProgress is the use case for setting a task's status to in-progress.
type MarkInProgress struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewMarkInProgress creates a new MarkInProgress use case.
func NewMarkInProgress(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *MarkInProgress {
	return &MarkInProgress{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute sets the status of the task with the given ID to in-progress.
func (uc *MarkInProgress) Execute(_ context.Context, in MarkInProgressInput) (*MarkInProgressOutput, error) {
	task, err := markStatus(uc.tasks, uc.clock, uc.logger, in.TaskID, domain.StatusInProgress)
	if err != nil {
		return nil, err
	}
	return &MarkInProgressOutput{Task: task}, nil
}
