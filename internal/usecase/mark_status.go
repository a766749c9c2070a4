package usecase

import (
	"fmt"

	"github.com/ksuda/tracker/internal/domain"
)

// markStatus loads the store, sets the status of the task with the given ID,
// refreshes its updated timestamp, and persists. Shared by MarkInProgress
// and MarkDone. Transitions are unrestricted; any status may follow any other.
func markStatus(tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger, id int, status domain.Status) (*domain.Task, error) {
	all, err := tasks.List()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	i := findTask(all, id)
	if i < 0 {
		return nil, domain.ErrTaskNotFound
	}

	task := all[i]
	task.Status = status
	task.Touch(clock.Now())

	if err := tasks.Replace(all); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	if logger != nil {
		logger.Info(task.ID, "task", fmt.Sprintf("marked %s", status))
	}

	return task, nil
}
