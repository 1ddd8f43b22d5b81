package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
dataset:
  dir: ./data
analysis:
  annual_kms: 100000
  truck_life_years: 10
  discount_rate: 0.07
  fleet_size: 2
  apply_incentives: true
  selected_charging_id: depot
  selected_infrastructure_id: dc-80
  charging_mix:
    depot: 0.8
    fast: 0.2
metrics:
  - type: prometheus
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./data", cfg.Dataset.Dir)
	assert.Equal(t, 100000.0, cfg.Analysis.AnnualKMs)
	assert.Equal(t, 10, cfg.Analysis.TruckLifeYears)
	assert.True(t, cfg.Analysis.ApplyIncentives)
	assert.Equal(t, 0.8, cfg.Analysis.ChargingMix["depot"])
	require.Len(t, cfg.Metrics, 1)
	assert.Equal(t, "prometheus", cfg.Metrics[0].Type)
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
  "dataset": {"dir": "./data"},
  "analysis": {"annual_kms": 50000, "truck_life_years": 8, "discount_rate": 0.05, "fleet_size": 1}
}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50000.0, cfg.Analysis.AnnualKMs)
	assert.Equal(t, 8, cfg.Analysis.TruckLifeYears)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
dataset:
  dir: ./data
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40000.0, cfg.Analysis.AnnualKMs)
	assert.Equal(t, 10, cfg.Analysis.TruckLifeYears)
	assert.Equal(t, 0.07, cfg.Analysis.DiscountRate)
	assert.Equal(t, 1, cfg.Analysis.FleetSize)
}

func TestLoadRejectsMissingDatasetDir(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
analysis:
  annual_kms: 100000
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeConfig(t, "config.toml", "dataset = 1")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
dataset:
  dir: ./data
`)
	t.Setenv("K_DATASET__DIR", "/srv/tables")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/tables", cfg.Dataset.Dir)
}
