package usecase

import (
	"context"

	"github.com/ksuda/tracker/internal/domain"
)

// MarkDoneInput contains the parameters for marking a task done.
type MarkDoneInput struct {
	TaskID int // Task ID to mark
}

// MarkDoneOutput contains the result of marking a task done.
type MarkDoneOutput struct {
	Task *domain.Task // The updated task
}

// MarkDone is the use case for setting a task's status to done.
type MarkDone struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewMarkDone creates a new MarkDone use case.
func NewMarkDone(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *MarkDone {
	return &MarkDone{
		tasks:  tasks,
		clock:  clock,
		logger: logger,
	}
}

// Execute sets the status of the task with the given ID to done.
func (uc *MarkDone) Execute(_ context.Context, in MarkDoneInput) (*MarkDoneOutput, error) {
	task, err := markStatus(uc.tasks, uc.clock, uc.logger, in.TaskID, domain.StatusDone)
	if err != nil {
		return nil, err
	}
	return &MarkDoneOutput{Task: task}, nil
}
