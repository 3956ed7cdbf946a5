package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/bizsim/internal/scenario"
)

func testAssumptions(months int) scenario.Assumptions {
	return scenario.Assumptions{
		Months:                  months,
		InitialCustomers:        100,
		MonthlyFee:              50,
		ChurnRate:               0.05,
		FixedCosts:              5000,
		VariableCostPerCustomer: 10,
		Growth:                  scenario.GrowthRates{Base: 0.10, Optimistic: 0.15, Pessimistic: 0.05},
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{-1000, "$-1,000.00"},
		{-590, "$-590.00"},
		{1234567.891, "$1,234,567.89"},
	}

	for _, tt := range tests {
		if got := Currency(tt.in); got != tt.want {
			t.Errorf("Currency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{-1000, -800, -590})
	if math.Abs(s.Total-(-2390)) > 1e-9 {
		t.Errorf("expected total -2390, got %f", s.Total)
	}
	if s.PeakMonth != 3 {
		t.Errorf("expected peak month 3, got %d", s.PeakMonth)
	}
	if s.BreakEven != 0 {
		t.Errorf("expected no break-even, got %d", s.BreakEven)
	}

	empty := Summarize(nil)
	if empty.Total != 0 || empty.PeakMonth != 0 {
		t.Errorf("unexpected summary of empty series: %+v", empty)
	}
}

func TestWriteConsole(t *testing.T) {
	base := scenario.Project(scenario.Base, testAssumptions(3))

	var buf bytes.Buffer
	if err := WriteConsole(&buf, base); err != nil {
		t.Fatalf("WriteConsole: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Monthly Profit Projections (Base Scenario):",
		"Month 1: $-1,000.00\n",
		"Month 2: $-800.00\n",
		"Month 3: $-590.00\n",
		"Estimated Total Profit (Base): $-2,390.00",
		"Month with Highest Profit (Base):",
		"- $-590.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Month 4:") {
		t.Errorf("unexpected fourth month:\n%s", out)
	}
}

func TestWriteConsole_ZeroHorizon(t *testing.T) {
	base := scenario.Project(scenario.Base, testAssumptions(0))

	var buf bytes.Buffer
	if err := WriteConsole(&buf, base); err != nil {
		t.Fatalf("WriteConsole: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Estimated Total Profit (Base): $0.00") {
		t.Errorf("expected zero total:\n%s", out)
	}
	if !strings.Contains(out, "Month with Highest Profit (Base): n/a") {
		t.Errorf("expected n/a best month:\n%s", out)
	}
}

func TestComparisonRows(t *testing.T) {
	ps := scenario.Run(testAssumptions(3))
	rows := ComparisonRows(ps)

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "Base" || rows[1][0] != "Optimistic" || rows[2][0] != "Pessimistic" {
		t.Errorf("unexpected scenario column: %v", rows)
	}
	if rows[0][1] != "10.0%" {
		t.Errorf("expected base growth 10.0%%, got %s", rows[0][1])
	}
	if rows[0][5] != "$-2,390.00" {
		t.Errorf("expected base profit $-2,390.00, got %s", rows[0][5])
	}
	if rows[0][7] != "-" {
		t.Errorf("expected no break-even, got %s", rows[0][7])
	}

	rendered := ComparisonTable(ps)
	for _, want := range []string{"Scenario", "Optimistic", "$-2,390.00"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("table missing %q:\n%s", want, rendered)
		}
	}
}

func TestMarkdownAndHTML(t *testing.T) {
	a := testAssumptions(3)
	ps := scenario.Run(a)

	md := Markdown(a, ps)
	for _, want := range []string{
		"# Business Scenario Projection",
		"| 1 | 100.00 | $5,000.00 | $6,000.00 | $-1,000.00 | $-1,000.00 |",
		"| 3 | 110.25 | $5,512.50 | $6,102.50 | $-590.00 | $-2,390.00 |",
		"**Break-even:** not reached",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}

	html, err := HTML(a, ps)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	for _, want := range []string{"<h1>Business Scenario Projection</h1>", "<table>", "<td"} {
		if !strings.Contains(html, want) {
			t.Errorf("html missing %q", want)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	ps := scenario.Run(testAssumptions(3))

	var buf bytes.Buffer
	if err := WriteCSV(&buf, ps); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 1+3*3 {
		t.Fatalf("expected 10 records, got %d", len(records))
	}
	if strings.Join(records[0], ",") != "scenario,month,customers,revenue,cost,profit,cumulative_profit" {
		t.Errorf("unexpected header: %v", records[0])
	}
	want := []string{"base", "2", "105.000000", "5250.000000", "6050.000000", "-800.000000", "-1800.000000"}
	if strings.Join(records[2], ",") != strings.Join(want, ",") {
		t.Errorf("row 2 = %v, want %v", records[2], want)
	}
}

func TestWriteJSON(t *testing.T) {
	a := testAssumptions(3)
	e := NewExport(a, scenario.Run(a))

	var buf bytes.Buffer
	if err := WriteJSON(&buf, e); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded Export
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.ID == "" || decoded.ID != e.ID {
		t.Errorf("run id not preserved: %q", decoded.ID)
	}
	if len(decoded.Scenarios) != 3 {
		t.Fatalf("expected 3 scenarios, got %d", len(decoded.Scenarios))
	}
	base := decoded.Scenarios[0]
	if base.Scenario != "base" || len(base.Profit) != 3 || len(base.Customers) != 4 {
		t.Errorf("unexpected base export: %+v", base)
	}
	if base.Metrics["peak_profit"] != base.Profit[2] {
		t.Errorf("peak_profit = %f, want %f", base.Metrics["peak_profit"], base.Profit[2])
	}
}

func TestNewExport_UniqueIDs(t *testing.T) {
	a := testAssumptions(1)
	ps := scenario.Run(a)
	if NewExport(a, ps).ID == NewExport(a, ps).ID {
		t.Error("expected distinct run ids")
	}
}
