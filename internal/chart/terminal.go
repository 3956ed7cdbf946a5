package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bizsim/internal/metrics"
	"github.com/san-kum/bizsim/internal/scenario"
)

type Options struct {
	Width  int
	Height int
}

func DefaultOptions() Options {
	return Options{Width: 80, Height: 12}
}

// series colours, shared by the asciigraph lines and the lipgloss legend.
var palette = map[scenario.Kind]struct {
	graph  asciigraph.AnsiColor
	legend lipgloss.Color
}{
	scenario.Base:        {asciigraph.Blue, lipgloss.Color("12")},
	scenario.Optimistic:  {asciigraph.Green, lipgloss.Color("10")},
	scenario.Pessimistic: {asciigraph.Red, lipgloss.Color("9")},
}

var (
	revenueColor = lipgloss.Color("10")
	costColor    = lipgloss.Color("9")
	noData       = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
)

// MonthlyProfit plots each scenario's profit by month.
func MonthlyProfit(ps []scenario.Projection, opts Options) string {
	data := make([][]float64, len(ps))
	for i, p := range ps {
		data[i] = p.Result.Profit
	}
	return plotScenarios(ps, data, "Monthly Profit Projections (USD)", opts)
}

// CumulativeProfit plots the running profit total of each scenario.
func CumulativeProfit(ps []scenario.Projection, opts Options) string {
	data := make([][]float64, len(ps))
	for i, p := range ps {
		data[i] = metrics.Cumulative(p.Result.Profit)
	}
	return plotScenarios(ps, data, "Cumulative Profit Over Time (USD)", opts)
}

// Customers plots the trajectory from month 0 to the end of the horizon.
func Customers(p scenario.Projection, opts Options) string {
	caption := fmt.Sprintf("Customer Growth (%s Scenario), months 0-%d", p.Kind.Title(), len(p.Customers)-1)
	if msg, ok := unplottable(p.Customers); !ok {
		return caption + "\n" + msg
	}
	graph := asciigraph.Plot(p.Customers,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(palette[p.Kind].graph),
		asciigraph.Caption(caption),
	)
	return graph
}

// RevenueVsCost plots revenue and cost of one scenario together.
func RevenueVsCost(p scenario.Projection, opts Options) string {
	caption := fmt.Sprintf("Revenue vs Costs (%s Scenario)", p.Kind.Title())
	data := [][]float64{p.Result.Revenue, p.Result.Cost}
	for _, d := range data {
		if msg, ok := unplottable(d); !ok {
			return caption + "\n" + msg
		}
	}
	graph := asciigraph.PlotMany(data,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
		asciigraph.Caption(caption),
	)
	return graph + "\n" + legend([]string{"Revenue", "Costs"}, []lipgloss.Color{revenueColor, costColor})
}

// All renders the five charts in report order.
func All(ps []scenario.Projection, opts Options) string {
	charts := []string{
		MonthlyProfit(ps, opts),
		CumulativeProfit(ps, opts),
	}
	if base, ok := scenario.Find(ps, scenario.Base); ok {
		charts = append(charts,
			Customers(base, opts),
			RevenueVsCost(base, opts),
			ProfitBars(base, opts.Width/2),
		)
	}
	return strings.Join(charts, "\n\n")
}

func plotScenarios(ps []scenario.Projection, data [][]float64, caption string, opts Options) string {
	if len(data) == 0 {
		return caption + "\n" + noData.Render("(no scenarios)")
	}
	for _, d := range data {
		if msg, ok := unplottable(d); !ok {
			return caption + "\n" + msg
		}
	}

	colors := make([]asciigraph.AnsiColor, len(ps))
	names := make([]string, len(ps))
	legendColors := make([]lipgloss.Color, len(ps))
	for i, p := range ps {
		colors[i] = palette[p.Kind].graph
		legendColors[i] = palette[p.Kind].legend
		names[i] = p.Kind.Title()
	}

	graph := asciigraph.PlotMany(data,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(caption),
	)
	return graph + "\n" + legend(names, legendColors)
}

// unplottable reports why a series cannot be drawn. asciigraph needs at
// least one finite value and cannot scale around infinities.
func unplottable(data []float64) (string, bool) {
	if len(data) == 0 {
		return noData.Render("(no data)"), false
	}
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return noData.Render("(skipped: series contains non-finite values)"), false
		}
	}
	return "", true
}

func legend(names []string, colors []lipgloss.Color) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = lipgloss.NewStyle().Foreground(colors[i]).Render("■ " + n)
	}
	return "  " + strings.Join(parts, "   ")
}
