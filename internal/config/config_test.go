package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Months != 12 {
		t.Errorf("expected 12 months, got %d", cfg.Months)
	}
	if cfg.InitialCustomers != 100 {
		t.Errorf("expected 100 customers, got %f", cfg.InitialCustomers)
	}
	if cfg.Growth.Optimistic != 0.15 {
		t.Errorf("expected optimistic growth 0.15, got %f", cfg.Growth.Optimistic)
	}
}

func TestDefaultsMatchFields(t *testing.T) {
	fromDefaults := DefaultConfig()
	fromFields := &Config{}
	for _, f := range Fields() {
		if err := fromFields.Set(f.Key, ""); err != nil {
			t.Fatalf("Set(%s, \"\"): %v", f.Key, err)
		}
	}
	if *fromFields != *fromDefaults {
		t.Errorf("field defaults %+v differ from DefaultConfig %+v", fromFields, fromDefaults)
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		raw     string
		want    string
		wantErr bool
	}{
		{"integer months", "months", "24", "24", false},
		{"padded integer", "months", "  6 ", "6", false},
		{"blank uses default", "months", "", "12", false},
		{"fractional months rejected", "months", "1.5", "", true},
		{"word rejected", "monthly_fee", "fifty", "", true},
		{"real fee", "monthly_fee", "49.99", "49.99", false},
		{"exponent", "fixed_costs", "1e4", "10000", false},
		{"churn above one accepted", "churn_rate", "1.5", "1.5", false},
		{"negative growth accepted", "growth_pessimistic", "-0.2", "-0.2", false},
		{"integer customers only", "initial_customers", "10.5", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.Set(tt.key, tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				var fe *FieldError
				if !errors.As(err, &fe) || fe.Field != tt.key {
					t.Errorf("expected FieldError for %s, got %v", tt.key, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := cfg.Get(tt.key); got != tt.want {
				t.Errorf("Get(%s) = %s, want %s", tt.key, got, tt.want)
			}
		})
	}
}

func TestSet_UnknownField(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Set("tax_rate", "0.2")
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	if errors.Is(err, ErrInvalidInput) {
		t.Error("unknown field should not be reported as invalid input")
	}
}

func TestSetAll_StopsAtFirstFailure(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.SetAll(map[string]string{
		"months":      "6",
		"monthly_fee": "x",
		"fixed_costs": "y",
	})

	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldError, got %v", err)
	}
	if fe.Field != "monthly_fee" {
		t.Errorf("expected monthly_fee to fail first, got %s", fe.Field)
	}
	if cfg.Months != 6 {
		t.Errorf("expected months applied before the failure, got %d", cfg.Months)
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bizsim.yaml")

	cfg := DefaultConfig()
	cfg.Months = 36
	cfg.Growth.Base = 0.2
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("months: 6\ngrowth:\n  base: 0.3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Months != 6 || cfg.Growth.Base != 0.3 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.MonthlyFee != DefaultMonthlyFee || cfg.Growth.Optimistic != DefaultGrowthOptimistic {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_NonNumeric(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("monthly_fee: fifty\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAssumptions(t *testing.T) {
	cfg := DefaultConfig()
	a := cfg.Assumptions()

	if a.Months != cfg.Months || a.ChurnRate != cfg.ChurnRate {
		t.Errorf("assumptions do not mirror config: %+v", a)
	}
	if a.Growth.Pessimistic != cfg.Growth.Pessimistic {
		t.Errorf("expected pessimistic growth %f, got %f", cfg.Growth.Pessimistic, a.Growth.Pessimistic)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("steady-state")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Months != 24 {
		t.Errorf("expected 24 months, got %d", cfg.Months)
	}

	cfg.Months = 1
	if Presets["steady-state"].Months != 24 {
		t.Error("GetPreset should return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
}
