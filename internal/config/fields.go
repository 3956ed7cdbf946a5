package config

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind int

const (
	Integer Kind = iota
	Real
)

func (k Kind) String() string {
	if k == Integer {
		return "integer"
	}
	return "real"
}

// Field describes one of the nine assumptions as it is prompted for and
// read from the environment.
type Field struct {
	Key     string
	Prompt  string
	Default string
	Kind    Kind
	Env     string
}

var fields = []Field{
	{Key: "months", Prompt: "Number of months to simulate", Default: "12", Kind: Integer},
	{Key: "initial_customers", Prompt: "Initial number of customers", Default: "100", Kind: Integer},
	{Key: "monthly_fee", Prompt: "Monthly subscription fee in USD", Default: "50", Kind: Real},
	{Key: "churn_rate", Prompt: "Monthly churn rate (0.0 - 1.0)", Default: "0.05", Kind: Real},
	{Key: "fixed_costs", Prompt: "Monthly fixed costs in USD", Default: "5000", Kind: Real},
	{Key: "variable_cost_per_customer", Prompt: "Variable cost per customer in USD", Default: "10", Kind: Real},
	{Key: "growth_base", Prompt: "Base growth rate (0.0 - 1.0)", Default: "0.10", Kind: Real},
	{Key: "growth_optimistic", Prompt: "Optimistic growth rate", Default: "0.15", Kind: Real},
	{Key: "growth_pessimistic", Prompt: "Pessimistic growth rate", Default: "0.05", Kind: Real},
}

func init() {
	for i := range fields {
		fields[i].Env = "BIZSIM_" + strings.ToUpper(fields[i].Key)
	}
}

// Fields returns the assumptions in prompt order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

func LookupField(key string) (Field, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Set parses raw for the named field. Blank input falls back to the field's
// documented default, not to the current value.
func (c *Config) Set(key, raw string) error {
	f, ok := LookupField(key)
	if !ok {
		return fmt.Errorf("config: unknown field %q", key)
	}

	s := strings.TrimSpace(raw)
	if s == "" {
		s = f.Default
	}

	var v float64
	switch f.Kind {
	case Integer:
		n, err := strconv.Atoi(s)
		if err != nil {
			return &FieldError{Field: key, Value: raw, Err: ErrInvalidInput}
		}
		v = float64(n)
	default:
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return &FieldError{Field: key, Value: raw, Err: ErrInvalidInput}
		}
		v = x
	}

	c.assign(key, v)
	return nil
}

// SetAll applies every entry of values, stopping at the first failure.
// Keys are applied in prompt order so the reported failure is deterministic.
func (c *Config) SetAll(values map[string]string) error {
	for _, f := range fields {
		raw, ok := values[f.Key]
		if !ok {
			continue
		}
		if err := c.Set(f.Key, raw); err != nil {
			return err
		}
	}
	return nil
}

// Get formats the current value of a field.
func (c *Config) Get(key string) string {
	switch key {
	case "months":
		return strconv.Itoa(c.Months)
	case "initial_customers":
		return strconv.FormatFloat(c.InitialCustomers, 'g', -1, 64)
	case "monthly_fee":
		return strconv.FormatFloat(c.MonthlyFee, 'g', -1, 64)
	case "churn_rate":
		return strconv.FormatFloat(c.ChurnRate, 'g', -1, 64)
	case "fixed_costs":
		return strconv.FormatFloat(c.FixedCosts, 'g', -1, 64)
	case "variable_cost_per_customer":
		return strconv.FormatFloat(c.VariableCostPerCustomer, 'g', -1, 64)
	case "growth_base":
		return strconv.FormatFloat(c.Growth.Base, 'g', -1, 64)
	case "growth_optimistic":
		return strconv.FormatFloat(c.Growth.Optimistic, 'g', -1, 64)
	case "growth_pessimistic":
		return strconv.FormatFloat(c.Growth.Pessimistic, 'g', -1, 64)
	}
	return ""
}

func (c *Config) assign(key string, v float64) {
	switch key {
	case "months":
		c.Months = int(v)
	case "initial_customers":
		c.InitialCustomers = v
	case "monthly_fee":
		c.MonthlyFee = v
	case "churn_rate":
		c.ChurnRate = v
	case "fixed_costs":
		c.FixedCosts = v
	case "variable_cost_per_customer":
		c.VariableCostPerCustomer = v
	case "growth_base":
		c.Growth.Base = v
	case "growth_optimistic":
		c.Growth.Optimistic = v
	case "growth_pessimistic":
		c.Growth.Pessimistic = v
	}
}
