package resolve

import (
	"github.com/charmbracelet/lipgloss"
)

// Status line styles. Tinting only; the emoji prefixes carry the meaning on
// terminals without color support.
var (
	headlineStyle = lipgloss.NewStyle().
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")) // Green

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Orange

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")) // Red

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")) // Grey
)
