package report

import (
	"fmt"
	"io"

	"github.com/san-kum/bizsim/internal/metrics"
	"github.com/san-kum/bizsim/internal/scenario"
)

// InvalidInputMessage is shown when an assumption cannot be parsed.
const InvalidInputMessage = "Invalid input detected. Please enter numeric values."

// Summary is the base-scenario headline numbers.
type Summary struct {
	Total     float64
	PeakMonth int
	PeakValue float64
	BreakEven int
}

func Summarize(profit []float64) Summary {
	total := metrics.NewTotalProfit()
	peak := metrics.NewPeakProfit()
	be := metrics.NewBreakEven()
	metrics.Evaluate(profit, total, peak, be)

	return Summary{
		Total:     total.Value(),
		PeakMonth: peak.Month(),
		PeakValue: peak.Value(),
		BreakEven: be.Month(),
	}
}

// WriteConsole prints the month-by-month base profit followed by the total
// and the best month.
func WriteConsole(w io.Writer, base scenario.Projection) error {
	profit := base.Result.Profit
	title := fmt.Sprintf("Monthly Profit Projections (%s Scenario):", base.Kind.Title())

	lines := []string{
		"",
		Title.Render(title),
		Subtle.Render(rule(50)),
	}
	for i, p := range profit {
		lines = append(lines, fmt.Sprintf("Month %d: %s", i+1, Currency(p)))
	}

	s := Summarize(profit)
	lines = append(lines,
		Subtle.Render(rule(50)),
		fmt.Sprintf("Estimated Total Profit (%s): %s", base.Kind.Title(), Currency(s.Total)),
	)
	if s.PeakMonth > 0 {
		lines = append(lines, fmt.Sprintf("Month with Highest Profit (%s): %s - %s",
			base.Kind.Title(), Highlight.Render(monthLabel(s.PeakMonth)), Currency(s.PeakValue)))
	} else {
		lines = append(lines, fmt.Sprintf("Month with Highest Profit (%s): n/a", base.Kind.Title()))
	}
	lines = append(lines, Subtle.Render(rule(50)))

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
