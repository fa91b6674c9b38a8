// Package config loads the CLI configuration: model parameters, run length,
// sweep grid and logging, from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"schelling/internal/sims/schelling"
)

// Config contains every setting the schelling CLI reads.
type Config struct {
	// Model is the configuration used by `run` and as the sweep base.
	Model schelling.Config `json:"model" yaml:"model"`

	// Run contains settings for single runs.
	Run RunConfig `json:"run" yaml:"run"`

	// Sweep contains settings for parameter sweeps.
	Sweep SweepConfig `json:"sweep" yaml:"sweep"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// RunConfig configures a single run.
type RunConfig struct {
	// Steps is the number of steps to take.
	Steps int `json:"steps" yaml:"steps"`
	// ModelID names the model in the registry; empty generates one.
	ModelID string `json:"model_id,omitempty" yaml:"model_id,omitempty"`
}

// SweepConfig configures a parameter sweep over density and homophily.
type SweepConfig struct {
	Densities  []float64 `json:"densities" yaml:"densities"`
	Homophily  []int     `json:"homophily" yaml:"homophily"`
	Replicates int       `json:"replicates" yaml:"replicates"`
	Steps      int       `json:"steps" yaml:"steps"`
	// Workers bounds concurrent runs; 0 means one per CPU.
	Workers int `json:"workers" yaml:"workers"`
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug" or "trace".
	Level string `json:"level" yaml:"level"`
}

// Default returns a Config with the standard model and modest run lengths.
func Default() *Config {
	return &Config{
		Model: schelling.DefaultConfig(),
		Run: RunConfig{
			Steps: 10,
		},
		Sweep: SweepConfig{
			Densities:  []float64{0.6, 0.7, 0.8, 0.9},
			Homophily:  []int{2, 3, 4, 5},
			Replicates: 3,
			Steps:      50,
			Workers:    0,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load returns defaults overlaid with path (when non-empty) and then with
// environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file. Fields absent
// from the file keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.Model.Validate(); err != nil {
		return err
	}
	if c.Run.Steps < 0 {
		return fmt.Errorf("run.steps must be non-negative, got %d", c.Run.Steps)
	}
	if c.Sweep.Steps < 0 {
		return fmt.Errorf("sweep.steps must be non-negative, got %d", c.Sweep.Steps)
	}
	if c.Sweep.Replicates < 1 {
		return fmt.Errorf("sweep.replicates must be at least 1, got %d", c.Sweep.Replicates)
	}
	if c.Sweep.Workers < 0 {
		return fmt.Errorf("sweep.workers must be non-negative, got %d", c.Sweep.Workers)
	}
	for _, d := range c.Sweep.Densities {
		if !(d >= 0 && d <= 1) {
			return fmt.Errorf("sweep density %v outside [0,1]", d)
		}
	}
	for _, h := range c.Sweep.Homophily {
		if h < 0 || h > schelling.MaxHomophily {
			return fmt.Errorf("sweep homophily %d outside [0,%d]", h, schelling.MaxHomophily)
		}
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true, "warn": true, "error": true}
	if c.Logging.Level != "" && !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, warn, error, or empty for default)", c.Logging.Level)
	}
	return nil
}

// SweepWorkers resolves the worker count, defaulting to the CPU count.
func (c *Config) SweepWorkers() int {
	if c.Sweep.Workers > 0 {
		return c.Sweep.Workers
	}
	return runtime.NumCPU()
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("SCHELLING_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SCHELLING_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("SCHELLING_SEED=%q: %w", v, err)
		}
		cfg.Model.Seed = seed
	}
	return nil
}
