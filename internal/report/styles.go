package report

import "github.com/charmbracelet/lipgloss"

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	Positive = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff88"))

	Negative = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444"))

	Highlight = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffcc00"))

	Warning = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffaa00"))

	tableBorder = lipgloss.NewStyle().Foreground(lipgloss.Color("#444466"))
	tableHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Padding(0, 1)
	tableCell   = lipgloss.NewStyle().Padding(0, 1)
)

// Signed renders s in green or red depending on v.
func Signed(v float64, s string) string {
	if v < 0 {
		return Negative.Render(s)
	}
	return Positive.Render(s)
}
