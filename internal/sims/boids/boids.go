// Package boids implements the flocking background: a fixed set of agents
// steered by separation, alignment and cohesion inside a soft cubic bound.
package boids

import (
	"log/slog"
	"math"
	"time"

	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/core"
	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/render"
	pcore "github.com/Mohd-Sayeedul-Hoda/portfolio/pkg/core"

	"gonum.org/v1/gonum/spatial/r3"
)

// Stats summarises the latest frame.
type Stats struct {
	Frame     int
	MeanSpeed float64
	MaxSpeed  float64
}

// LogValue implements slog.LogValuer for structured logging.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("frame", s.Frame),
		slog.Float64("mean_speed", s.MeanSpeed),
		slog.Float64("max_speed", s.MaxSpeed),
	)
}

// Flock owns the agent buffers. Agents have no identity beyond their index.
type Flock struct {
	cfg Config

	pos []r3.Vec
	vel []r3.Vec

	buf *render.InstanceBuffer

	paused bool
	seed   int64
	stats  Stats

	logger *slog.Logger
}

// New returns a Flock with every agent at the origin at rest. Call Reset to
// scatter them.
func New(cfg Config) *Flock {
	if cfg.Count < 0 {
		cfg.Count = 0
	}
	f := &Flock{
		cfg:    cfg,
		pos:    make([]r3.Vec, cfg.Count),
		vel:    make([]r3.Vec, cfg.Count),
		buf:    render.NewInstanceBuffer(cfg.Count),
		logger: slog.Default(),
	}
	colorSeed := cfg.Seed
	if colorSeed == 0 {
		colorSeed = time.Now().UnixNano()
	}
	render.AssignColors(f.buf, render.ParsePalette(cfg.Palette), cfg.PaletteCuts, pcore.NewRNG(colorSeed))
	return f
}

// SetLogger replaces the logger used for lifecycle messages.
func (f *Flock) SetLogger(l *slog.Logger) {
	if l != nil {
		f.logger = l
	}
}

// Name returns the background identifier.
func (f *Flock) Name() string { return "boids" }

// Config returns the active configuration.
func (f *Flock) Config() Config { return f.cfg }

// Count returns the number of agents.
func (f *Flock) Count() int { return len(f.pos) }

// Positions exposes the agent positions.
func (f *Flock) Positions() []r3.Vec { return f.pos }

// Velocities exposes the agent velocities.
func (f *Flock) Velocities() []r3.Vec { return f.vel }

// Instances exposes the per-agent transforms and colours.
func (f *Flock) Instances() *render.InstanceBuffer { return f.buf }

// Stats returns statistics for the latest frame.
func (f *Flock) Stats() Stats { return f.stats }

// Seed returns the seed used by the last Reset.
func (f *Flock) Seed() int64 { return f.seed }

// SetPaused freezes or resumes the flock.
func (f *Flock) SetPaused(paused bool) { f.paused = paused }

// Paused reports whether the flock is frozen.
func (f *Flock) Paused() bool { return f.paused }

// Reset scatters agents uniformly inside a cube of side Boundary centred on
// the origin, with random velocities up to MaxSpeed/2 per axis.
func (f *Flock) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = f.cfg.Seed
	}
	if effective == 0 {
		effective = time.Now().UnixNano()
	}
	f.seed = effective

	rng := pcore.NewRNG(effective)
	for i := range f.pos {
		f.pos[i] = r3.Vec{
			X: rng.Centered(f.cfg.Boundary),
			Y: rng.Centered(f.cfg.Boundary),
			Z: rng.Centered(f.cfg.Boundary),
		}
		f.vel[i] = r3.Vec{
			X: rng.Centered(f.cfg.MaxSpeed),
			Y: rng.Centered(f.cfg.MaxSpeed),
			Z: rng.Centered(f.cfg.MaxSpeed),
		}
	}
	f.stats = Stats{}
	f.logger.Debug("background reset", "background", f.Name(), "seed", effective, "agents", len(f.pos))
}

// Update runs one flocking step unless paused. The flock moves a fixed
// amount per frame, so dt is not used.
func (f *Flock) Update(dt float64) {
	if f.paused {
		return
	}
	f.Step()
}

// Step applies one frame of steering to every agent. Agents are updated in
// index order and in place, so later agents see the new state of earlier
// ones. Every agent scans every other agent: O(Count^2) per frame, fine at
// a few hundred agents.
func (f *Flock) Step() {
	cfg := f.cfg
	perception2 := cfg.PerceptionRadius * cfg.PerceptionRadius
	separation2 := cfg.SeparationRadius * cfg.SeparationRadius

	var speedSum, speedMax float64
	for i := range f.pos {
		p := f.pos[i]
		v := f.vel[i]

		var sep, ali, coh r3.Vec
		var sepCount, nearCount int
		for j := range f.pos {
			if i == j {
				continue
			}
			d := r3.Sub(p, f.pos[j])
			dist2 := r3.Norm2(d)
			if dist2 >= perception2 {
				continue
			}
			if dist2 < separation2 && dist2 > 0 {
				sep = r3.Add(sep, r3.Scale(1/math.Sqrt(dist2), d))
				sepCount++
			}
			ali = r3.Add(ali, f.vel[j])
			coh = r3.Add(coh, f.pos[j])
			nearCount++
		}

		if sepCount > 0 {
			sep = r3.Scale(1/float64(sepCount), sep)
		}
		if nearCount > 0 {
			inv := 1 / float64(nearCount)
			ali = r3.Sub(r3.Scale(inv, ali), v)
			coh = r3.Sub(r3.Sub(r3.Scale(inv, coh), p), v)
		}

		steer := r3.Add(r3.Add(
			r3.Scale(cfg.SeparationWeight, sep),
			r3.Scale(cfg.AlignmentWeight, ali)),
			r3.Scale(cfg.CohesionWeight, coh))
		v = r3.Add(v, r3.Scale(cfg.MaxForce, steer))

		v.X -= boundarySteer(p.X, cfg.Boundary, cfg.BoundarySteer)
		v.Y -= boundarySteer(p.Y, cfg.Boundary, cfg.BoundarySteer)
		v.Z -= boundarySteer(p.Z, cfg.Boundary, cfg.BoundarySteer)

		v = limit(v, cfg.MaxSpeed)

		f.vel[i] = v
		f.pos[i] = r3.Add(p, v)

		speed := r3.Norm(v)
		speedSum += speed
		if speed > speedMax {
			speedMax = speed
		}
	}

	mean := 0.0
	if n := len(f.pos); n > 0 {
		mean = speedSum / float64(n)
	}
	f.stats = Stats{Frame: f.stats.Frame + 1, MeanSpeed: mean, MaxSpeed: speedMax}
}

// boundarySteer returns the push applied on one axis once the agent is past
// the boundary, signed towards the outside.
func boundarySteer(c, boundary, steer float64) float64 {
	if math.Abs(c) <= boundary {
		return 0
	}
	if c > 0 {
		return steer
	}
	return -steer
}

// limit rescales v so its length does not exceed max.
func limit(v r3.Vec, max float64) r3.Vec {
	speed := r3.Norm(v)
	if speed <= max || speed == 0 {
		return v
	}
	return r3.Scale(max/speed, v)
}

func init() {
	core.Register("boids", func(cfg map[string]string) core.Background {
		return New(FromMap(cfg))
	})
}
