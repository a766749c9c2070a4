package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ksuda/tracker/internal/app"
	"github.com/ksuda/tracker/internal/domain"
	"github.com/ksuda/tracker/internal/usecase"
	"github.com/spf13/cobra"
)

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a new task",
		Long: `Add a new task with the given description.

The task is created with status 'todo' and the next free ID: one greater
than the highest ID currently in the store.

Examples:
  tracker add "Buy milk"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(args[0]) == "" {
				return domain.ErrEmptyDescription
			}

			uc := c.AddTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AddTaskInput{Description: args[0]})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task added successfully (ID: %d).\n", out.Task.ID)
			return nil
		},
	}
	return cmd
}

// newUpdateCommand creates the update command for replacing a task description.
func newUpdateCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id> <description>",
		Short: "Update a task description",
		Long: `Replace the description of an existing task.

Examples:
  tracker update 1 "Buy oat milk"

  # Task ID may carry a leading #
  tracker update "#1" "Buy oat milk"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}
			if strings.TrimSpace(args[1]) == "" {
				return domain.ErrEmptyDescription
			}

			uc := c.UpdateTaskUseCase()
			_, err = uc.Execute(cmd.Context(), usecase.UpdateTaskInput{TaskID: id, Description: args[1]})
			if err != nil {
				return reportNotFound(cmd, id, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task (ID: %d) updated successfully.\n", id)
			return nil
		},
	}
	return cmd
}

// newDeleteCommand creates the delete command for removing tasks.
func newDeleteCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Long: `Delete a task from the store.

The freed ID is reused by the next add only if it was the highest.

Examples:
  tracker delete 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			uc := c.DeleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: id})
			if err != nil {
				return reportNotFound(cmd, id, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task (ID: %d) deleted successfully.\n", out.Task.ID)
			return nil
		},
	}
	return cmd
}

// newListCommand creates the list command for listing tasks.
func newListCommand(c *app.Container) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list [status]",
		Short: "List tasks",
		Long: `Display tasks in insertion order.

An optional status argument (todo, in-progress, done) limits the output
to tasks in that status.

Examples:
  # List all tasks
  tracker list

  # List only finished tasks
  tracker list done

  # Render as a table, or export
  tracker list --output table
  tracker list --output json
  tracker list --output yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.ListTasksInput{}
			if len(args) > 0 {
				status, ok := domain.ParseStatus(args[0])
				if !ok {
					return fmt.Errorf("%w %q (valid: %s)", domain.ErrInvalidStatus, args[0], validStatusList())
				}
				input.Status = &status
			}

			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "No tasks found.")
				return nil
			}

			format := output
			if format == "" {
				format = c.Config.List.Output
			}
			return printTasks(cmd.OutOrStdout(), out.Tasks, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output format: plain, table, json, or yaml")

	return cmd
}

// newMarkInProgressCommand creates the mark-in-progress command.
func newMarkInProgressCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mark-in-progress <id>",
		Short: "Mark a task as in-progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			uc := c.MarkInProgressUseCase()
			_, err = uc.Execute(cmd.Context(), usecase.MarkInProgressInput{TaskID: id})
			if err != nil {
				return reportNotFound(cmd, id, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task (ID: %d) marked as in-progress successfully.\n", id)
			return nil
		},
	}
	return cmd
}

// newMarkDoneCommand creates the mark-done command.
func newMarkDoneCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mark-done <id>",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			uc := c.MarkDoneUseCase()
			_, err = uc.Execute(cmd.Context(), usecase.MarkDoneInput{TaskID: id})
			if err != nil {
				return reportNotFound(cmd, id, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task (ID: %d) marked as done successfully.\n", id)
			return nil
		},
	}
	return cmd
}

// reportNotFound prints the not-found message to stderr and swallows the
// error so the process exits normally; other errors propagate unchanged.
func reportNotFound(cmd *cobra.Command, id int, err error) error {
	if errors.Is(err, domain.ErrTaskNotFound) {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Task (ID: %d) not found.\n", id)
		return nil
	}
	return err
}

// parseTaskID parses a task ID string to int. A leading # is accepted.
func parseTaskID(s string) (int, error) {
	s = strings.TrimPrefix(s, "#")
	var id int
	_, err := fmt.Sscanf(s, "%d", &id)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("task ID must be positive")
	}
	return id, nil
}

// validStatusList returns the valid statuses joined for error messages.
func validStatusList() string {
	statuses := domain.AllStatuses()
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
