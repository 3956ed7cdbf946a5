package scenario

import (
	"fmt"
	"math"
)

type Kind int

const (
	Base Kind = iota
	Optimistic
	Pessimistic
)

// Kinds lists the scenarios in report order.
var Kinds = []Kind{Base, Optimistic, Pessimistic}

func (k Kind) String() string {
	switch k {
	case Base:
		return "base"
	case Optimistic:
		return "optimistic"
	case Pessimistic:
		return "pessimistic"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Title is the capitalised name used in headings and legends.
func (k Kind) Title() string {
	switch k {
	case Base:
		return "Base"
	case Optimistic:
		return "Optimistic"
	case Pessimistic:
		return "Pessimistic"
	default:
		return k.String()
	}
}

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown scenario: %q", s)
}

type GrowthRates struct {
	Base        float64
	Optimistic  float64
	Pessimistic float64
}

func (g GrowthRates) For(k Kind) float64 {
	switch k {
	case Optimistic:
		return g.Optimistic
	case Pessimistic:
		return g.Pessimistic
	default:
		return g.Base
	}
}

// Assumptions are the inputs of one run. Plausibility is never checked:
// a churn above 1 or a negative fee is simulated as given.
type Assumptions struct {
	Months                  int
	InitialCustomers        float64
	MonthlyFee              float64
	ChurnRate               float64
	FixedCosts              float64
	VariableCostPerCustomer float64
	Growth                  GrowthRates
}

// Horizon is the number of simulated months; negative values count as zero.
func (a Assumptions) Horizon() int {
	if a.Months < 0 {
		return 0
	}
	return a.Months
}

// Result holds one scenario's monthly series. Index i is month i+1.
type Result struct {
	Revenue []float64
	Cost    []float64
	Profit  []float64
}

func (r Result) Len() int { return len(r.Profit) }

// IsFinite reports whether every value in the result is finite.
func (r Result) IsFinite() bool {
	for _, series := range [][]float64{r.Revenue, r.Cost, r.Profit} {
		for _, v := range series {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// Projection is one scenario's result together with the customer
// trajectory that produced it.
type Projection struct {
	Kind       Kind
	GrowthRate float64
	Result     Result
	// Customers has Len()+1 entries: the count entering each month plus
	// the count after the last month.
	Customers []float64
}
