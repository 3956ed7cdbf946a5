package report

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/san-kum/bizsim/internal/metrics"
	"github.com/san-kum/bizsim/internal/scenario"
)

var comparisonHeaders = []string{
	"Scenario", "Growth", "Final customers", "Revenue", "Cost", "Profit", "Best month", "Break-even",
}

// ComparisonRows returns one row of totals per projection.
func ComparisonRows(ps []scenario.Projection) [][]string {
	rows := make([][]string, 0, len(ps))
	for _, p := range ps {
		s := Summarize(p.Result.Profit)

		final := 0.0
		if n := len(p.Customers); n > 0 {
			final = p.Customers[n-1]
		}

		rows = append(rows, []string{
			p.Kind.Title(),
			Percent(p.GrowthRate),
			Number(final, 1),
			Currency(metrics.Sum(p.Result.Revenue)),
			Currency(metrics.Sum(p.Result.Cost)),
			Currency(s.Total),
			monthNumber(s.PeakMonth),
			monthNumber(s.BreakEven),
		})
	}
	return rows
}

// ComparisonTable renders the per-scenario totals side by side.
func ComparisonTable(ps []scenario.Projection) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorder).
		BorderHeader(true).
		BorderRow(false).
		Headers(comparisonHeaders...).
		Rows(ComparisonRows(ps)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeader
			}
			if col == 0 {
				return tableCell.Bold(true)
			}
			return tableCell.Align(lipgloss.Right)
		})

	return t.Render()
}

func monthNumber(m int) string {
	if m <= 0 {
		return "-"
	}
	return strconv.Itoa(m)
}
