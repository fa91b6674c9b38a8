package app

import (
	"flag"

	"schelling/internal/sims/schelling"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Scale    int
	TPS      int
	SPS      int
	HUDWidth int
	LogLevel string
	Model    schelling.Config
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scale:    16,
		TPS:      60,
		SPS:      10,
		HUDWidth: 220,
		LogLevel: "info",
		Model:    schelling.DefaultConfig(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.SPS, "sps", c.SPS, "model steps per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels (0 hides it)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: info, debug, trace")
	fs.IntVar(&c.Model.Width, "w", c.Model.Width, "grid width")
	fs.IntVar(&c.Model.Height, "h", c.Model.Height, "grid height")
	fs.Float64Var(&c.Model.Density, "density", c.Model.Density, "fraction of cells occupied")
	fs.Float64Var(&c.Model.MinorityFraction, "minority", c.Model.MinorityFraction, "fraction of agents of the minority type")
	fs.IntVar(&c.Model.Homophily, "homophily", c.Model.Homophily, "similar neighbours wanted, out of 8")
	fs.Int64Var(&c.Model.Seed, "seed", c.Model.Seed, "seed for model reset")
}
