package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Background string
	ConfigPath string
	Seed       int64
	TPS        int
	Paused     bool
	OutputDir  string
	Frames     int
	LogJSON    bool
}

// NewConfig returns a Config populated with sensible defaults. An empty
// Background defers to the YAML configuration.
func NewConfig() *Config {
	return &Config{TPS: 60, Frames: 600}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Background, "background", c.Background, "background to run (life or boids)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "path to a YAML config file")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for background reset (0 = from config, then time)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start with stepping paused")
	fs.StringVar(&c.OutputDir, "output-dir", c.OutputDir, "directory for CSV telemetry (empty disables)")
	fs.IntVar(&c.Frames, "frames", c.Frames, "frames to run in headless mode")
	fs.BoolVar(&c.LogJSON, "log-json", c.LogJSON, "log as JSON instead of text")
}

// FrameDT returns the fixed frame delta implied by TPS.
func (c *Config) FrameDT() float64 {
	if c.TPS <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(c.TPS)
}
