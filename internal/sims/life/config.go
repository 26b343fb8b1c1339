package life

import (
	"strconv"
	"strings"
)

// Config holds the fixed layout and timing of the Life background.
type Config struct {
	// N is the side of the square grid.
	N        int
	CellSize float64
	Gap      float64

	// Interval is the number of seconds between generations.
	Interval float64
	// Damping is the rate at which cube scales approach their target.
	Damping float64
	// MinScale keeps dead cubes from collapsing into zero-volume instances.
	MinScale float64

	// Gliders is the number of randomly placed gliders on reset.
	Gliders int
	// Seed drives glider placement and colour assignment. Zero picks a
	// time-based seed on every reset.
	Seed int64

	// InteractWhilePaused lets pointer input stamp cells while stepping is
	// paused.
	InteractWhilePaused bool

	Palette []string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		N:                   60,
		CellSize:            1.0,
		Gap:                 0.0,
		Interval:            0.6,
		Damping:             20,
		MinScale:            0.0001,
		Gliders:             12,
		InteractWhilePaused: true,
		Palette:             []string{"#d94676", "#6d3580", "#f58b44"},
	}
}

// Pitch is the distance between neighbouring cell centres.
func (c Config) Pitch() float64 { return c.CellSize + c.Gap }

// HalfExtent is half the world-space width of the grid.
func (c Config) HalfExtent() float64 { return c.Pitch() * float64(c.N) / 2 }

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.N = parsed
		}
	}
	if v, ok := cfg["cell_size"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["gap"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Gap = parsed
		}
	}
	if v, ok := cfg["interval"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Interval = parsed
		}
	}
	if v, ok := cfg["damping"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Damping = parsed
		}
	}
	if v, ok := cfg["min_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.MinScale = parsed
		}
	}
	if v, ok := cfg["gliders"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Gliders = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["interact_while_paused"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.InteractWhilePaused = parsed
		}
	}
	if v, ok := cfg["palette"]; ok && v != "" {
		c.Palette = strings.Split(v, ",")
	}
	return c
}
