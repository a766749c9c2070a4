// Package app provides the dependency injection container for the application.
package app

import (
	"path/filepath"

	"github.com/ksuda/tracker/internal/domain"
	"github.com/ksuda/tracker/internal/infra/config"
	"github.com/ksuda/tracker/internal/infra/jsonstore"
	"github.com/ksuda/tracker/internal/infra/logging"
	"github.com/ksuda/tracker/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	Tasks  domain.TaskRepository
	Clock  domain.Clock
	Logger domain.Logger
	Config *config.Config

	log *logging.Logger
}

// New creates a new Container for the given working directory.
func New(workDir string) (*Container, error) {
	cfg, err := config.NewLoader(workDir).Load()
	if err != nil {
		return nil, err
	}

	storePath := cfg.Store.Path
	if !filepath.IsAbs(storePath) {
		storePath = filepath.Join(workDir, storePath)
	}

	log := logging.New(logging.DefaultDir(), logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Tasks:  jsonstore.New(storePath),
		Clock:  domain.RealClock{},
		Logger: log,
		Config: cfg,
		log:    log,
	}, nil
}

// Close releases resources held by the container.
func (c *Container) Close() {
	if c.log != nil {
		_ = c.log.Close()
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *config.Config, tasks domain.TaskRepository, clock domain.Clock, logger domain.Logger) *Container {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Container{
		Tasks:  tasks,
		Clock:  clock,
		Logger: logger,
		Config: cfg,
	}
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Clock, c.Logger)
}

// UpdateTaskUseCase returns a new UpdateTask use case.
func (c *Container) UpdateTaskUseCase() *usecase.UpdateTask {
	return usecase.NewUpdateTask(c.Tasks, c.Clock, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// MarkInProgressUseCase returns a new MarkInProgress use case.
func (c *Container) MarkInProgressUseCase() *usecase.MarkInProgress {
	return usecase.NewMarkInProgress(c.Tasks, c.Clock, c.Logger)
}

// MarkDoneUseCase returns a new MarkDone use case.
func (c *Container) MarkDoneUseCase() *usecase.MarkDone {
	return usecase.NewMarkDone(c.Tasks, c.Clock, c.Logger)
}
