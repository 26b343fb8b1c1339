package boids

import "github.com/Mohd-Sayeedul-Hoda/portfolio/internal/core"

// Parameters describes the current configuration for the HUD.
func (f *Flock) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Flock",
			Params: []core.Parameter{
				core.IntParam("count", "Agents", len(f.pos)),
				core.FloatParam("boundary", "Boundary", f.cfg.Boundary),
				core.Int64Param("seed", "Seed", f.seed),
			},
		},
		{
			Name: "Motion",
			Params: []core.Parameter{
				core.FloatParam("max_speed", "Max speed", f.cfg.MaxSpeed),
				core.FloatParam("max_force", "Max force", f.cfg.MaxForce),
				core.FloatParam("perception_radius", "Perception", f.cfg.PerceptionRadius),
				core.FloatParam("separation_radius", "Separation", f.cfg.SeparationRadius),
			},
		},
		{
			Name: "Weights",
			Params: []core.Parameter{
				core.FloatParam("separation_weight", "Separation", f.cfg.SeparationWeight),
				core.FloatParam("alignment_weight", "Alignment", f.cfg.AlignmentWeight),
				core.FloatParam("cohesion_weight", "Cohesion", f.cfg.CohesionWeight),
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust.
func (f *Flock) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "separation_weight", Step: 0.1, Min: 0, Max: 5},
		{Key: "alignment_weight", Step: 0.1, Min: 0, Max: 5},
		{Key: "cohesion_weight", Step: 0.1, Min: 0, Max: 5},
		{Key: "max_speed", Step: 0.05, Min: 0.05, Max: 1},
	}
}

// SetFloatParameter updates an adjustable parameter, clamped to its control
// range. It reports whether the key is known.
func (f *Flock) SetFloatParameter(key string, value float64) bool {
	for _, ctrl := range f.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		value = ctrl.Clamp(value)
		switch key {
		case "separation_weight":
			f.cfg.SeparationWeight = value
		case "alignment_weight":
			f.cfg.AlignmentWeight = value
		case "cohesion_weight":
			f.cfg.CohesionWeight = value
		case "max_speed":
			f.cfg.MaxSpeed = value
		}
		return true
	}
	return false
}
