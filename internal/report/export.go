package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/bizsim/internal/metrics"
	"github.com/san-kum/bizsim/internal/scenario"
)

type Export struct {
	ID          string           `json:"id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Assumptions AssumptionsData  `json:"assumptions"`
	Scenarios   []ScenarioExport `json:"scenarios"`
}

type AssumptionsData struct {
	Months                  int     `json:"months"`
	InitialCustomers        float64 `json:"initial_customers"`
	MonthlyFee              float64 `json:"monthly_fee"`
	ChurnRate               float64 `json:"churn_rate"`
	FixedCosts              float64 `json:"fixed_costs"`
	VariableCostPerCustomer float64 `json:"variable_cost_per_customer"`
	GrowthBase              float64 `json:"growth_base"`
	GrowthOptimistic        float64 `json:"growth_optimistic"`
	GrowthPessimistic       float64 `json:"growth_pessimistic"`
}

type ScenarioExport struct {
	Scenario         string             `json:"scenario"`
	GrowthRate       float64            `json:"growth_rate"`
	Customers        []float64          `json:"customers"`
	Revenue          []float64          `json:"revenue"`
	Cost             []float64          `json:"cost"`
	Profit           []float64          `json:"profit"`
	CumulativeProfit []float64          `json:"cumulative_profit"`
	Metrics          map[string]float64 `json:"metrics"`
}

// NewExport assembles the export document with a fresh run id.
func NewExport(a scenario.Assumptions, ps []scenario.Projection) Export {
	e := Export{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Assumptions: AssumptionsData{
			Months:                  a.Months,
			InitialCustomers:        a.InitialCustomers,
			MonthlyFee:              a.MonthlyFee,
			ChurnRate:               a.ChurnRate,
			FixedCosts:              a.FixedCosts,
			VariableCostPerCustomer: a.VariableCostPerCustomer,
			GrowthBase:              a.Growth.Base,
			GrowthOptimistic:        a.Growth.Optimistic,
			GrowthPessimistic:       a.Growth.Pessimistic,
		},
		Scenarios: make([]ScenarioExport, len(ps)),
	}

	for i, p := range ps {
		e.Scenarios[i] = ScenarioExport{
			Scenario:         p.Kind.String(),
			GrowthRate:       p.GrowthRate,
			Customers:        p.Customers,
			Revenue:          p.Result.Revenue,
			Cost:             p.Result.Cost,
			Profit:           p.Result.Profit,
			CumulativeProfit: metrics.Cumulative(p.Result.Profit),
			Metrics:          metrics.Evaluate(p.Result.Profit, metrics.Defaults()...),
		}
	}

	return e
}

// WriteJSON encodes the export. encoding/json rejects NaN and Inf, so
// non-finite projections fail here; use WriteCSV for those.
func WriteJSON(w io.Writer, e Export) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

var csvHeader = []string{"scenario", "month", "customers", "revenue", "cost", "profit", "cumulative_profit"}

// WriteCSV writes one row per scenario and month. Months are 1-based.
func WriteCSV(w io.Writer, ps []scenario.Projection) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, p := range ps {
		cum := metrics.Cumulative(p.Result.Profit)
		for i := range p.Result.Profit {
			row := []string{
				p.Kind.String(),
				strconv.Itoa(i + 1),
				formatFloat(p.Customers[i]),
				formatFloat(p.Result.Revenue[i]),
				formatFloat(p.Result.Cost[i]),
				formatFloat(p.Result.Profit[i]),
				formatFloat(cum[i]),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
