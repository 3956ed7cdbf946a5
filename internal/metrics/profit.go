package metrics

import "math"

type TotalProfit struct {
	name  string
	total float64
}

func NewTotalProfit() *TotalProfit {
	return &TotalProfit{name: "total_profit"}
}

func (m *TotalProfit) Name() string { return m.name }

func (m *TotalProfit) Observe(month int, profit float64) {
	m.total += profit
}

func (m *TotalProfit) Value() float64 { return m.total }

func (m *TotalProfit) Reset() { m.total = 0 }

// PeakProfit tracks the month with the highest profit. The first month wins
// ties, and a NaN profit is treated as the maximum.
type PeakProfit struct {
	name  string
	best  float64
	month int
}

func NewPeakProfit() *PeakProfit {
	return &PeakProfit{name: "peak_profit"}
}

func (m *PeakProfit) Name() string { return m.name }

func (m *PeakProfit) Observe(month int, profit float64) {
	switch {
	case m.month == 0:
	case math.IsNaN(m.best):
		return
	case math.IsNaN(profit):
	case profit > m.best:
	default:
		return
	}
	m.best = profit
	m.month = month
}

func (m *PeakProfit) Value() float64 { return m.best }

// Month is the 1-based month of the peak, or 0 before any observation.
func (m *PeakProfit) Month() int { return m.month }

func (m *PeakProfit) Reset() {
	m.best = 0
	m.month = 0
}

// BreakEven finds the first month whose cumulative profit is non-negative.
type BreakEven struct {
	name       string
	cumulative float64
	month      int
}

func NewBreakEven() *BreakEven {
	return &BreakEven{name: "break_even_month"}
}

func (m *BreakEven) Name() string { return m.name }

func (m *BreakEven) Observe(month int, profit float64) {
	m.cumulative += profit
	if m.month == 0 && m.cumulative >= 0 {
		m.month = month
	}
}

// Value is the break-even month, or 0 if cumulative profit never reached zero.
func (m *BreakEven) Value() float64 { return float64(m.month) }

func (m *BreakEven) Month() int { return m.month }

func (m *BreakEven) Reset() {
	m.cumulative = 0
	m.month = 0
}
