package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/ksuda/tracker/internal/domain"
	"gopkg.in/yaml.v3"
)

// exportTask is the stable shape for json/yaml list output.
type exportTask struct {
	ID          int       `json:"id" yaml:"id"`
	Description string    `json:"description" yaml:"description"`
	Status      string    `json:"status" yaml:"status"`
	Created     time.Time `json:"created_at" yaml:"created_at"`
	Updated     time.Time `json:"updated_at" yaml:"updated_at"`
}

func exportTasks(tasks []*domain.Task) []exportTask {
	out := make([]exportTask, len(tasks))
	for i, t := range tasks {
		out[i] = exportTask{
			ID:          t.ID,
			Description: t.Description,
			Status:      string(t.Status),
			Created:     t.Created,
			Updated:     t.Updated,
		}
	}
	return out
}

// printTasks renders tasks in the requested format.
func printTasks(w io.Writer, tasks []*domain.Task, format string) error {
	switch format {
	case "", "plain":
		for _, t := range tasks {
			_, _ = fmt.Fprintln(w, t.DisplayDetails())
		}
		return nil
	case "table":
		printTaskTable(w, tasks)
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(exportTasks(tasks))
	case "yaml":
		return yaml.NewEncoder(w).Encode(exportTasks(tasks))
	default:
		return fmt.Errorf("invalid output format %q (valid: plain, table, json, yaml)", format)
	}
}

// printTaskTable prints tasks in TSV format with colored statuses.
func printTaskTable(w io.Writer, tasks []*domain.Task) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	// Header
	_, _ = fmt.Fprintln(tw, "ID\tSTATUS\tDESCRIPTION\tCREATED\tUPDATED")

	// Rows
	for _, task := range tasks {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			task.ID,
			renderStatus(task.Status),
			task.Description,
			task.Created.Format(time.RFC3339),
			task.Updated.Format(time.RFC3339),
		)
	}
}
