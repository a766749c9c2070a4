package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ksuda/tracker/internal/domain"
)

// Status colors for table output.
var statusStyles = map[domain.Status]lipgloss.Style{
	domain.StatusTodo:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // yellow
	domain.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("4")), // blue
	domain.StatusDone:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // green
}

// renderStatus returns the status string styled for terminal display.
func renderStatus(s domain.Status) string {
	if style, ok := statusStyles[s]; ok {
		return style.Render(string(s))
	}
	return string(s)
}
