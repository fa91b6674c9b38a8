package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"schelling/internal/sims/schelling"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schelling.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, schelling.DefaultConfig(), cfg.Model)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFileOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
model:
  width: 30
  density: 0.9
  homophily: 5
run:
  steps: 25
sweep:
  densities: [0.5, 0.95]
  workers: 2
logging:
  level: debug
`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, 30, cfg.Model.Width)
	require.Equal(t, 20, cfg.Model.Height, "unset fields keep defaults")
	require.Equal(t, 0.9, cfg.Model.Density)
	require.Equal(t, 0.2, cfg.Model.MinorityFraction)
	require.Equal(t, 5, cfg.Model.Homophily)
	require.Equal(t, 25, cfg.Run.Steps)
	require.Equal(t, []float64{0.5, 0.95}, cfg.Sweep.Densities)
	require.Equal(t, []int{2, 3, 4, 5}, cfg.Sweep.Homophily)
	require.Equal(t, 2, cfg.SweepWorkers())
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromFileErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := writeFile(t, "model: [not, a, map]\n")
	_, err = LoadFromFile(path)
	require.Error(t, err)
}

func TestLoadAppliesEnv(t *testing.T) {
	t.Setenv("SCHELLING_LOG_LEVEL", "trace")
	t.Setenv("SCHELLING_SEED", "99")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "trace", cfg.Logging.Level)
	require.Equal(t, int64(99), cfg.Model.Seed)

	t.Setenv("SCHELLING_SEED", "ninety")
	_, err = Load("")
	require.Error(t, err)
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"model", func(c *Config) { c.Model.Density = 2 }},
		{"run steps", func(c *Config) { c.Run.Steps = -1 }},
		{"sweep steps", func(c *Config) { c.Sweep.Steps = -1 }},
		{"replicates", func(c *Config) { c.Sweep.Replicates = 0 }},
		{"workers", func(c *Config) { c.Sweep.Workers = -2 }},
		{"sweep density", func(c *Config) { c.Sweep.Densities = []float64{1.2} }},
		{"sweep homophily", func(c *Config) { c.Sweep.Homophily = []int{9} }},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestSweepWorkersDefaultsToCPUs(t *testing.T) {
	cfg := Default()
	require.Positive(t, cfg.SweepWorkers())
}
