// Package config loads the application configuration from a YAML or JSON
// file with optional environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/fleettco/infra/metrics"
)

type Config struct {
	Dataset  DatasetConfig        `json:"dataset"`
	Analysis AnalysisConfig       `json:"analysis"`
	Metrics  []metrics.SinkConfig `json:"metrics"`
}

// DatasetConfig points at the directory of input CSV tables.
type DatasetConfig struct {
	Dir string `json:"dir"`
}

// AnalysisConfig carries the scenario scalars of a calculation run.
type AnalysisConfig struct {
	AnnualKMs       float64 `json:"annual_kms"`
	TruckLifeYears  int     `json:"truck_life_years"`
	DiscountRate    float64 `json:"discount_rate"`
	FleetSize       int     `json:"fleet_size"`
	ApplyIncentives bool    `json:"apply_incentives"`

	SelectedChargingID       string             `json:"selected_charging_id"`
	ChargingMix              map[string]float64 `json:"charging_mix"`
	SelectedInfrastructureID string             `json:"selected_infrastructure_id"`
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("K_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "k_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Analysis.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults fills the scenario scalars a config file may omit.
func (c *AnalysisConfig) SetDefaults() {
	if c.AnnualKMs == 0 {
		c.AnnualKMs = 40000
	}
	if c.TruckLifeYears == 0 {
		c.TruckLifeYears = 10
	}
	if c.DiscountRate == 0 {
		c.DiscountRate = 0.07
	}
	if c.FleetSize == 0 {
		c.FleetSize = 1
	}
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if c.Dataset.Dir == "" {
		return fmt.Errorf("dataset.dir is required")
	}
	if c.Analysis.AnnualKMs <= 0 {
		return fmt.Errorf("analysis.annual_kms must be positive")
	}
	if c.Analysis.TruckLifeYears <= 0 {
		return fmt.Errorf("analysis.truck_life_years must be positive")
	}
	if c.Analysis.DiscountRate < 0 {
		return fmt.Errorf("analysis.discount_rate must not be negative")
	}
	if c.Analysis.FleetSize <= 0 {
		return fmt.Errorf("analysis.fleet_size must be positive")
	}
	return nil
}
