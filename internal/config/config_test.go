package config

import (
	"os"
	"testing"
)

func TestDefaults(t *testing.T) {
	os.Unsetenv("PRICING_DEFAULT_NUM_STEPS")
	os.Unsetenv("PRICING_DEFAULT_NUM_SIMS")
	os.Unsetenv("MARKET_DATA_PROVIDER")

	cfg := Load()

	if cfg.Pricing.DefaultNumSteps != 252 {
		t.Errorf("Expected default num steps 252, got %d", cfg.Pricing.DefaultNumSteps)
	}
	if cfg.Pricing.DefaultNumSims != 5000 {
		t.Errorf("Expected default num sims 5000, got %d", cfg.Pricing.DefaultNumSims)
	}
	if cfg.Pricing.DefaultMethod != "standard" {
		t.Errorf("Expected default method standard, got %s", cfg.Pricing.DefaultMethod)
	}
	if cfg.MarketData.Provider != "yahoo" {
		t.Errorf("Expected default provider yahoo, got %s", cfg.MarketData.Provider)
	}
}

func TestEnvOverride(t *testing.T) {
	os.Setenv("PRICING_DEFAULT_NUM_SIMS", "20000")
	defer os.Unsetenv("PRICING_DEFAULT_NUM_SIMS")

	cfg := Load()

	if cfg.Pricing.DefaultNumSims != 20000 {
		t.Errorf("Expected num sims 20000 from env, got %d", cfg.Pricing.DefaultNumSims)
	}
}

func TestEnvFloatOverride(t *testing.T) {
	os.Setenv("PRICING_FALLBACK_RISK_FREE_RATE", "0.03")
	defer os.Unsetenv("PRICING_FALLBACK_RISK_FREE_RATE")

	cfg := Load()

	if cfg.Pricing.FallbackRiskFreeRate != 0.03 {
		t.Errorf("Expected fallback rate 0.03 from env, got %v", cfg.Pricing.FallbackRiskFreeRate)
	}
}

func TestBadEnvValueFallsBackToDefault(t *testing.T) {
	os.Setenv("PRICING_DEFAULT_NUM_STEPS", "not-a-number")
	defer os.Unsetenv("PRICING_DEFAULT_NUM_STEPS")

	cfg := Load()

	if cfg.Pricing.DefaultNumSteps != 252 {
		t.Errorf("Expected default 252 for unparseable env value, got %d", cfg.Pricing.DefaultNumSteps)
	}
}
