package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/bizsim/internal/scenario"
)

var (
	barPositive = lipgloss.NewStyle().Foreground(lipgloss.Color("#87ceeb"))
	barNegative = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

// ProfitBars draws one horizontal bar per month, scaled to the largest
// absolute profit. Losses are drawn in red.
func ProfitBars(p scenario.Projection, width int) string {
	title := fmt.Sprintf("Monthly Profit - %s Scenario", p.Kind.Title())
	if msg, ok := unplottable(p.Result.Profit); !ok {
		return title + "\n" + msg
	}
	return title + "\n" + Bars(p.Result.Profit, width)
}

// Bars renders values as labelled horizontal bars of at most width cells.
func Bars(values []float64, width int) string {
	if width < 1 {
		width = 1
	}

	maxAbs := 0.0
	for _, v := range values {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		maxAbs = 1
	}

	labelWidth := len(fmt.Sprintf("%d", len(values)))

	lines := make([]string, len(values))
	for i, v := range values {
		n := BarLength(v, maxAbs, width)
		bar := strings.Repeat("█", n) + strings.Repeat(" ", width-n)
		style := barPositive
		if v < 0 {
			style = barNegative
		}
		lines[i] = fmt.Sprintf("%*d │%s %12.2f", labelWidth, i+1, style.Render(bar), v)
	}
	return strings.Join(lines, "\n")
}

// BarLength scales |v| against maxAbs to [0, width]. Any non-zero value
// gets at least one cell.
func BarLength(v, maxAbs float64, width int) int {
	if maxAbs <= 0 || v == 0 {
		return 0
	}
	n := int(math.Round(math.Abs(v) / maxAbs * float64(width)))
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	return n
}
