package schelling

import (
	"fmt"
	"strconv"
)

// MaxHomophily is the size of the Moore neighbourhood; homophily is expressed
// as a count of similar neighbours out of this many.
const MaxHomophily = 8

// MaxCells bounds width*height.
const MaxCells = 1 << 24

// Config controls the Schelling model. It is immutable once a model is built.
type Config struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`

	// Density is the fraction of cells occupied by agents.
	Density float64 `json:"density" yaml:"density"`
	// MinorityFraction is the probability that an agent is of the minority type.
	MinorityFraction float64 `json:"minority_fraction" yaml:"minority_fraction"`
	// Homophily is the number of similar neighbours (out of 8) an agent wants.
	Homophily int `json:"homophily" yaml:"homophily"`

	Seed int64 `json:"seed" yaml:"seed"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:            20,
		Height:           20,
		Density:          0.8,
		MinorityFraction: 0.2,
		Homophily:        3,
		Seed:             42,
	}
}

// Threshold converts the homophily count into the similar-neighbour fraction
// an agent needs to stay put.
func (c Config) Threshold() float64 {
	return float64(c.Homophily) / MaxHomophily
}

// Cells returns the total number of grid cells.
func (c Config) Cells() int { return c.Width * c.Height }

// AgentCount returns floor(width*height*density).
func (c Config) AgentCount() int {
	return int(float64(c.Cells()) * c.Density)
}

// Validate checks every field and the resulting population size.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d must have positive dimensions", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Width > MaxCells/c.Height {
		return fmt.Errorf("%w: grid %dx%d exceeds %d cells", ErrInvalidConfig, c.Width, c.Height, MaxCells)
	}
	if !(c.Density >= 0 && c.Density <= 1) {
		return fmt.Errorf("%w: density %v outside [0,1]", ErrInvalidConfig, c.Density)
	}
	if !(c.MinorityFraction >= 0 && c.MinorityFraction <= 1) {
		return fmt.Errorf("%w: minority fraction %v outside [0,1]", ErrInvalidConfig, c.MinorityFraction)
	}
	if c.Homophily < 0 || c.Homophily > MaxHomophily {
		return fmt.Errorf("%w: homophily %d outside [0,%d]", ErrInvalidConfig, c.Homophily, MaxHomophily)
	}
	if n := c.AgentCount(); n > c.Cells() {
		return fmt.Errorf("%w: %d agents exceed %d cells", ErrInvalidConfig, n, c.Cells())
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unknown keys are ignored; malformed values are reported.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: w=%q: %v", ErrInvalidConfig, v, err)
		}
		c.Width = parsed
	}
	if v, ok := cfg["h"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: h=%q: %v", ErrInvalidConfig, v, err)
		}
		c.Height = parsed
	}
	if v, ok := cfg["density"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("%w: density=%q: %v", ErrInvalidConfig, v, err)
		}
		c.Density = parsed
	}
	if v, ok := cfg["minority"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("%w: minority=%q: %v", ErrInvalidConfig, v, err)
		}
		c.MinorityFraction = parsed
	}
	if v, ok := cfg["homophily"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: homophily=%q: %v", ErrInvalidConfig, v, err)
		}
		c.Homophily = parsed
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%w: seed=%q: %v", ErrInvalidConfig, v, err)
		}
		c.Seed = parsed
	}
	return c, c.Validate()
}
