package app

import (
	"flag"

	"github.com/LilLilian59/JeuDeLaVie/pkg/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Scale   int
	Border  int
	TPS     int
	GPS     int
	Seed    int64
	Density float64
	Random  bool
	HUD     int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := life.DefaultConfig()
	return &Config{
		Width:   def.Width,
		Height:  def.Height,
		Scale:   12,
		Border:  2,
		TPS:     60,
		GPS:     10,
		Seed:    def.Seed,
		Density: 0.25,
		HUD:     220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.Border, "border", c.Border, "pixels around the board")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial random fill")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell probability for random fills")
	fs.BoolVar(&c.Random, "random", c.Random, "start from a random fill instead of an empty grid")
	fs.IntVar(&c.HUD, "hud", c.HUD, "status panel width in pixels (0 hides it)")
}

// Life returns the engine configuration described by c.
func (c *Config) Life() life.Config {
	lc := life.Config{Width: c.Width, Height: c.Height, Seed: c.Seed}
	if c.Random {
		lc.Density = c.Density
	}
	return lc
}
