package schelling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 320, cfg.AgentCount())
	require.InDelta(t, 0.375, cfg.Threshold(), 1e-12)
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -2 }},
		{"density above one", func(c *Config) { c.Density = 1.01 }},
		{"negative density", func(c *Config) { c.Density = -0.1 }},
		{"NaN density", func(c *Config) { c.Density = math.NaN() }},
		{"minority above one", func(c *Config) { c.MinorityFraction = 2 }},
		{"NaN minority", func(c *Config) { c.MinorityFraction = math.NaN() }},
		{"homophily above eight", func(c *Config) { c.Homophily = 9 }},
		{"negative homophily", func(c *Config) { c.Homophily = -1 }},
		{"too many cells", func(c *Config) { c.Width, c.Height = MaxCells, 2 }},
		{"overflowing dimensions", func(c *Config) { c.Width, c.Height = math.MaxInt, math.MaxInt }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

			_, err := New(cfg)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestValidateBoundaries(t *testing.T) {
	for _, cfg := range []Config{
		{Width: 1, Height: 1, Density: 0, MinorityFraction: 0, Homophily: 0},
		{Width: 3, Height: 3, Density: 1, MinorityFraction: 1, Homophily: 8},
		{Width: 1 << 12, Height: 1 << 12, Density: 0.5},
	} {
		require.NoError(t, cfg.Validate())
	}
}

func TestAgentCountFloors(t *testing.T) {
	cfg := Config{Width: 3, Height: 3, Density: 0.5}
	require.Equal(t, 4, cfg.AgentCount())
	cfg.Density = 1
	require.Equal(t, 9, cfg.AgentCount())
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"w":         "12",
		"h":         "8",
		"density":   "0.5",
		"minority":  "0.3",
		"homophily": "5",
		"seed":      "-7",
		"unknown":   "ignored",
	})
	require.NoError(t, err)
	require.Equal(t, Config{Width: 12, Height: 8, Density: 0.5, MinorityFraction: 0.3, Homophily: 5, Seed: -7}, cfg)

	cfg, err = FromMap(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestFromMapErrors(t *testing.T) {
	for _, m := range []map[string]string{
		{"w": "wide"},
		{"density": "lots"},
		{"homophily": "3.5"},
		{"seed": "x"},
		{"homophily": "12"},
	} {
		_, err := FromMap(m)
		require.ErrorIs(t, err, ErrInvalidConfig, "input %v", m)
	}
}
