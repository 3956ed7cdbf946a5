package config

import "sort"

var Presets = map[string]*Config{
	"saas-seed": {
		Months: 12, InitialCustomers: 100, MonthlyFee: 50, ChurnRate: 0.05,
		FixedCosts: 5000, VariableCostPerCustomer: 10,
		Growth: GrowthConfig{Base: 0.10, Optimistic: 0.15, Pessimistic: 0.05},
	},
	"steady-state": {
		Months: 24, InitialCustomers: 2000, MonthlyFee: 30, ChurnRate: 0.03,
		FixedCosts: 40000, VariableCostPerCustomer: 6,
		Growth: GrowthConfig{Base: 0.03, Optimistic: 0.05, Pessimistic: 0.01},
	},
	"declining": {
		Months: 18, InitialCustomers: 800, MonthlyFee: 40, ChurnRate: 0.08,
		FixedCosts: 15000, VariableCostPerCustomer: 8,
		Growth: GrowthConfig{Base: 0.04, Optimistic: 0.07, Pessimistic: 0.00},
	},
	"hypergrowth": {
		Months: 36, InitialCustomers: 50, MonthlyFee: 99, ChurnRate: 0.04,
		FixedCosts: 25000, VariableCostPerCustomer: 20,
		Growth: GrowthConfig{Base: 0.20, Optimistic: 0.30, Pessimistic: 0.10},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
