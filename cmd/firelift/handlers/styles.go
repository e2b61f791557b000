package handlers

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	colorGreen = lipgloss.Color("#22c55e")
	colorRed   = lipgloss.Color("#ef4444")
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorAmber = lipgloss.Color("#f59e0b")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	okStyle = lipgloss.NewStyle().
		Foreground(colorGreen)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorAmber)

	errStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// styled applies a style only when writing to a terminal, keeping piped
// output plain.
func styled(style lipgloss.Style, s string) string {
	if !isInteractiveTTY() {
		return s
	}
	return style.Render(s)
}
