package cmd

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color palette for terminal output.
var (
	colorGreen  = lipgloss.Color("#8ec07c")
	colorYellow = lipgloss.Color("#fabd2f")
	colorDim    = lipgloss.Color("#928374")
	colorHeader = lipgloss.Color("#fe8019")
)

var (
	styleRunning = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	styleIdle    = lipgloss.NewStyle().Foreground(colorYellow)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleHeader  = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	styleLabel   = lipgloss.NewStyle().Bold(true)
)

// colorEnabled decides whether styled output is produced. The --color flag
// wins over the config file; "auto" colors only when stdout is a terminal.
func colorEnabled() bool {
	mode := colorFlag
	if mode == "" {
		mode = cfg.Color
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}

// render applies style to s when colored output is enabled.
func render(style lipgloss.Style, s string) string {
	if !colorEnabled() {
		return s
	}
	return style.Render(s)
}
