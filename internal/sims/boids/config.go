package boids

import (
	"strconv"
	"strings"
)

// Config holds the flocking constants. Distances are world units; speeds and
// forces are per frame.
type Config struct {
	Count int

	Boundary      float64
	BoundarySteer float64
	MaxSpeed      float64
	MaxForce      float64

	PerceptionRadius float64
	SeparationRadius float64

	SeparationWeight float64
	AlignmentWeight  float64
	CohesionWeight   float64

	// ConeRadius and ConeLength size the rendered agent.
	ConeRadius float64
	ConeLength float64

	Seed int64

	Palette []string
	// PaletteCuts are the cumulative thresholds used to pick a palette entry
	// from a uniform draw.
	PaletteCuts []float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Count:            400,
		Boundary:         20,
		BoundarySteer:    0.05,
		MaxSpeed:         0.2,
		MaxForce:         0.01,
		PerceptionRadius: 2.0,
		SeparationRadius: 0.8,
		SeparationWeight: 1.5,
		AlignmentWeight:  1.0,
		CohesionWeight:   1.0,
		ConeRadius:       0.2,
		ConeLength:       0.8,
		Palette:          []string{"#6ee7b7", "#0ea5e9", "#c084fc"},
		PaletteCuts:      []float64{0.33, 0.66},
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Count = parsed
		}
	}
	floats := []struct {
		key string
		dst *float64
	}{
		{"boundary", &c.Boundary},
		{"boundary_steer", &c.BoundarySteer},
		{"max_speed", &c.MaxSpeed},
		{"max_force", &c.MaxForce},
		{"perception_radius", &c.PerceptionRadius},
		{"separation_radius", &c.SeparationRadius},
		{"separation_weight", &c.SeparationWeight},
		{"alignment_weight", &c.AlignmentWeight},
		{"cohesion_weight", &c.CohesionWeight},
	}
	for _, f := range floats {
		v, ok := cfg[f.key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			*f.dst = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["palette"]; ok && v != "" {
		c.Palette = strings.Split(v, ",")
	}
	return c
}
