package life

import "github.com/Mohd-Sayeedul-Hoda/portfolio/internal/core"

// Parameters describes the current configuration for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("n", "Size", w.n),
				core.FloatParam("pitch", "Cell pitch", w.cfg.Pitch()),
				core.Int64Param("seed", "Seed", w.seed),
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				core.FloatParam("interval", "Generation interval (s)", w.clock.Period()),
				core.FloatParam("damping", "Scale damping", w.cfg.Damping),
			},
		},
		{
			Name: "Interaction",
			Params: []core.Parameter{
				core.BoolParam("interact_while_paused", "Stamp while paused", w.cfg.InteractWhilePaused),
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "interval", Step: 0.1, Min: 0.1, Max: 5},
		{Key: "damping", Step: 2, Min: 1, Max: 60},
	}
}

// SetFloatParameter updates an adjustable parameter, clamped to its control
// range. It reports whether the key is known.
func (w *World) SetFloatParameter(key string, value float64) bool {
	for _, ctrl := range w.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		value = ctrl.Clamp(value)
		switch key {
		case "interval":
			w.cfg.Interval = value
			w.clock.SetPeriod(value)
		case "damping":
			w.cfg.Damping = value
		}
		return true
	}
	return false
}
