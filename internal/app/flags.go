package app

import (
	"flag"
	"time"

	"torsnake/internal/core"
	"torsnake/internal/sim"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	Scale  int
	FPS    int
	Wake   time.Duration
	Speed  float64
	Seed   int64
	Mute   bool
	Stats  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:  32,
		Height: 32,
		Scale:  20,
		FPS:    60,
		Wake:   10 * time.Millisecond,
		Speed:  12,
		Seed:   42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.FPS, "fps", c.FPS, "target frames per second")
	fs.DurationVar(&c.Wake, "wake", c.Wake, "update worker wake interval")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "initial speed in cells per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for food placement")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable sound cues")
	fs.StringVar(&c.Stats, "stats", c.Stats, "write session stats JSON to this path on exit")
}

// SimConfig converts the flags into an engine configuration.
func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		Grid:         core.Size{W: c.Width, H: c.Height},
		Speed:        c.Speed,
		WakeInterval: c.Wake,
		FrameRate:    c.FPS,
		Seed:         c.Seed,
	}
}
