package config

import (
	"fmt"
	"os"

	"github.com/san-kum/bizsim/internal/scenario"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMonths                  = 12
	DefaultInitialCustomers        = 100
	DefaultMonthlyFee              = 50.0
	DefaultChurnRate               = 0.05
	DefaultFixedCosts              = 5000.0
	DefaultVariableCostPerCustomer = 10.0
	DefaultGrowthBase              = 0.10
	DefaultGrowthOptimistic        = 0.15
	DefaultGrowthPessimistic       = 0.05
)

type Config struct {
	Months                  int          `yaml:"months"`
	InitialCustomers        float64      `yaml:"initial_customers"`
	MonthlyFee              float64      `yaml:"monthly_fee"`
	ChurnRate               float64      `yaml:"churn_rate"`
	FixedCosts              float64      `yaml:"fixed_costs"`
	VariableCostPerCustomer float64      `yaml:"variable_cost_per_customer"`
	Growth                  GrowthConfig `yaml:"growth"`
}

type GrowthConfig struct {
	Base        float64 `yaml:"base"`
	Optimistic  float64 `yaml:"optimistic"`
	Pessimistic float64 `yaml:"pessimistic"`
}

func DefaultConfig() *Config {
	return &Config{
		Months:                  DefaultMonths,
		InitialCustomers:        DefaultInitialCustomers,
		MonthlyFee:              DefaultMonthlyFee,
		ChurnRate:               DefaultChurnRate,
		FixedCosts:              DefaultFixedCosts,
		VariableCostPerCustomer: DefaultVariableCostPerCustomer,
		Growth: GrowthConfig{
			Base:        DefaultGrowthBase,
			Optimistic:  DefaultGrowthOptimistic,
			Pessimistic: DefaultGrowthPessimistic,
		},
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := cfg.Merge(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Merge decodes YAML over the current values.
func (c *Config) Merge(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Assumptions() scenario.Assumptions {
	return scenario.Assumptions{
		Months:                  c.Months,
		InitialCustomers:        c.InitialCustomers,
		MonthlyFee:              c.MonthlyFee,
		ChurnRate:               c.ChurnRate,
		FixedCosts:              c.FixedCosts,
		VariableCostPerCustomer: c.VariableCostPerCustomer,
		Growth: scenario.GrowthRates{
			Base:        c.Growth.Base,
			Optimistic:  c.Growth.Optimistic,
			Pessimistic: c.Growth.Pessimistic,
		},
	}
}

func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
