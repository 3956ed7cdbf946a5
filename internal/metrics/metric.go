package metrics

// Metric accumulates a statistic over a profit series one month at a time.
// Months are 1-based.
type Metric interface {
	Name() string
	Observe(month int, profit float64)
	Value() float64
	Reset()
}

// Evaluate resets each metric, feeds it the series and collects the values
// by name.
func Evaluate(profit []float64, ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		for i, p := range profit {
			m.Observe(i+1, p)
		}
		out[m.Name()] = m.Value()
	}
	return out
}

// Defaults returns a fresh set of the metrics every report shows.
func Defaults() []Metric {
	return []Metric{NewTotalProfit(), NewPeakProfit(), NewBreakEven()}
}

// Cumulative returns the running sum of profit.
func Cumulative(profit []float64) []float64 {
	out := make([]float64, len(profit))
	sum := 0.0
	for i, p := range profit {
		sum += p
		out[i] = sum
	}
	return out
}

// Sum adds up a series in order.
func Sum(xs []float64) float64 {
	total := 0.0
	for _, x := range xs {
		total += x
	}
	return total
}
