package life

import "strconv"

// Config holds the parameters used to build and seed a grid.
type Config struct {
	Width   int
	Height  int
	Seed    int64
	Density float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 50, Height: 30, Seed: 42}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}

// Build allocates a grid for the configuration and seeds it when Density is
// positive.
func (c Config) Build() (*Grid, error) {
	g, err := New(c.Width, c.Height)
	if err != nil {
		return nil, err
	}
	if c.Density > 0 {
		g.Randomize(c.Seed, c.Density)
	}
	return g, nil
}
