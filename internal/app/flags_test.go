package app

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"schelling/internal/sims/schelling"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	require.Equal(t, schelling.DefaultConfig(), cfg.Model)
	require.Positive(t, cfg.Scale)
	require.Positive(t, cfg.SPS)
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-w", "80", "-h", "60", "-density", "0.7", "-minority", "0.3",
		"-homophily", "5", "-seed", "7", "-scale", "6", "-sps", "4", "-hud", "0"})
	require.NoError(t, err)

	require.Equal(t, 80, cfg.Model.Width)
	require.Equal(t, 60, cfg.Model.Height)
	require.Equal(t, 0.7, cfg.Model.Density)
	require.Equal(t, 0.3, cfg.Model.MinorityFraction)
	require.Equal(t, 5, cfg.Model.Homophily)
	require.Equal(t, int64(7), cfg.Model.Seed)
	require.Equal(t, 6, cfg.Scale)
	require.Equal(t, 4, cfg.SPS)
	require.Equal(t, 0, cfg.HUDWidth)
	require.NoError(t, cfg.Model.Validate())
}
