package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// PricingConfig holds the default simulation settings applied when a request
// leaves them out.
type PricingConfig struct {
	DefaultNumSteps      int     `yaml:"default_num_steps"`
	DefaultNumSims       int     `yaml:"default_num_sims"`
	DefaultMethod        string  `yaml:"default_method"`
	FallbackRiskFreeRate float64 `yaml:"fallback_risk_free_rate"`
}

// MarketDataConfig controls the market data provider layer.
type MarketDataConfig struct {
	Provider    string `yaml:"provider"`
	HistoryDays int    `yaml:"history_days"` // trading days of closes for realized vol
}

type Config struct {
	// Server settings
	Port string

	Logging    LoggingConfig    `yaml:"logging"`
	Pricing    PricingConfig    `yaml:"pricing"`
	MarketData MarketDataConfig `yaml:"market_data"`
}

// YAMLConfig mirrors the optional config.yaml file
type YAMLConfig struct {
	Port       string           `yaml:"port"`
	Logging    LoggingConfig    `yaml:"logging"`
	Pricing    PricingConfig    `yaml:"pricing"`
	MarketData MarketDataConfig `yaml:"market_data"`
}

// Load builds the configuration from environment variables, then overlays any
// values present in config.yaml.
func Load() *Config {
	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Logging: LoggingConfig{
			LogLevel: getEnv("LOG_LEVEL", "info"),
			LogFile:  getEnv("LOG_FILE", "finback.log"),
		},
		Pricing: PricingConfig{
			DefaultNumSteps:      getEnvInt("PRICING_DEFAULT_NUM_STEPS", 252),
			DefaultNumSims:       getEnvInt("PRICING_DEFAULT_NUM_SIMS", 5000),
			DefaultMethod:        getEnv("PRICING_DEFAULT_METHOD", "standard"),
			FallbackRiskFreeRate: getEnvFloat("PRICING_FALLBACK_RISK_FREE_RATE", 0.045),
		},
		MarketData: MarketDataConfig{
			Provider:    getEnv("MARKET_DATA_PROVIDER", "yahoo"),
			HistoryDays: getEnvInt("MARKET_DATA_HISTORY_DAYS", 252),
		},
	}

	if yamlCfg := loadYAMLConfig(); yamlCfg != nil {
		if yamlCfg.Port != "" {
			cfg.Port = yamlCfg.Port
		}
		if yamlCfg.Logging.LogLevel != "" {
			cfg.Logging.LogLevel = yamlCfg.Logging.LogLevel
		}
		if yamlCfg.Logging.LogFile != "" {
			cfg.Logging.LogFile = yamlCfg.Logging.LogFile
		}
		if yamlCfg.Pricing.DefaultNumSteps > 0 {
			cfg.Pricing.DefaultNumSteps = yamlCfg.Pricing.DefaultNumSteps
		}
		if yamlCfg.Pricing.DefaultNumSims > 0 {
			cfg.Pricing.DefaultNumSims = yamlCfg.Pricing.DefaultNumSims
		}
		if yamlCfg.Pricing.DefaultMethod != "" {
			cfg.Pricing.DefaultMethod = yamlCfg.Pricing.DefaultMethod
		}
		if yamlCfg.Pricing.FallbackRiskFreeRate > 0 {
			cfg.Pricing.FallbackRiskFreeRate = yamlCfg.Pricing.FallbackRiskFreeRate
		}
		if yamlCfg.MarketData.Provider != "" {
			cfg.MarketData.Provider = yamlCfg.MarketData.Provider
		}
		if yamlCfg.MarketData.HistoryDays > 0 {
			cfg.MarketData.HistoryDays = yamlCfg.MarketData.HistoryDays
		}
	}

	return cfg
}

func loadYAMLConfig() *YAMLConfig {
	data, err := os.ReadFile("config.yaml")
	if err != nil {
		// Could not read config.yaml - silently return nil
		return nil
	}

	var yamlCfg YAMLConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		// Could not parse config.yaml - silently return nil
		return nil
	}

	return &yamlCfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
