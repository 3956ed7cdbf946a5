package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/san-kum/bizsim/internal/metrics"
	"github.com/san-kum/bizsim/internal/scenario"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Markdown builds a standalone report: assumptions, a scenario comparison
// and the base scenario month by month.
func Markdown(a scenario.Assumptions, ps []scenario.Projection) string {
	var sb strings.Builder

	sb.WriteString("# Business Scenario Projection\n\n")

	sb.WriteString("## Assumptions\n\n")
	sb.WriteString("| Assumption | Value |\n|---|---:|\n")
	fmt.Fprintf(&sb, "| Months | %d |\n", a.Months)
	fmt.Fprintf(&sb, "| Initial customers | %s |\n", Number(a.InitialCustomers, 0))
	fmt.Fprintf(&sb, "| Monthly fee | %s |\n", Currency(a.MonthlyFee))
	fmt.Fprintf(&sb, "| Churn rate | %s |\n", Percent(a.ChurnRate))
	fmt.Fprintf(&sb, "| Fixed costs | %s |\n", Currency(a.FixedCosts))
	fmt.Fprintf(&sb, "| Variable cost per customer | %s |\n", Currency(a.VariableCostPerCustomer))
	for _, k := range scenario.Kinds {
		fmt.Fprintf(&sb, "| %s growth rate | %s |\n", k.Title(), Percent(a.Growth.For(k)))
	}

	sb.WriteString("\n## Scenario comparison\n\n")
	sb.WriteString("| " + strings.Join(comparisonHeaders, " | ") + " |\n")
	sb.WriteString("|---" + strings.Repeat("|---:", len(comparisonHeaders)-1) + "|\n")
	for _, row := range ComparisonRows(ps) {
		sb.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}

	base, ok := scenario.Find(ps, scenario.Base)
	if !ok {
		return sb.String()
	}

	sb.WriteString("\n## Base scenario by month\n\n")
	sb.WriteString("| Month | Customers | Revenue | Cost | Profit | Cumulative profit |\n")
	sb.WriteString("|---:|---:|---:|---:|---:|---:|\n")
	cum := metrics.Cumulative(base.Result.Profit)
	for i := range base.Result.Profit {
		fmt.Fprintf(&sb, "| %d | %s | %s | %s | %s | %s |\n",
			i+1,
			Number(base.Customers[i], 2),
			Currency(base.Result.Revenue[i]),
			Currency(base.Result.Cost[i]),
			Currency(base.Result.Profit[i]),
			Currency(cum[i]),
		)
	}

	s := Summarize(base.Result.Profit)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "- **Estimated total profit:** %s\n", Currency(s.Total))
	if s.PeakMonth > 0 {
		fmt.Fprintf(&sb, "- **Month with highest profit:** %s (%s)\n", monthLabel(s.PeakMonth), Currency(s.PeakValue))
	}
	if s.BreakEven > 0 {
		fmt.Fprintf(&sb, "- **Break-even:** %s\n", monthLabel(s.BreakEven))
	} else {
		sb.WriteString("- **Break-even:** not reached\n")
	}

	return sb.String()
}

var md = goldmark.New(goldmark.WithExtensions(extension.Table))

// HTML renders the markdown report to an HTML fragment.
func HTML(a scenario.Assumptions, ps []scenario.Projection) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(a, ps)), &buf); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}
