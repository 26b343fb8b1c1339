package app

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/config"
	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/core"
	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/sims/boids"
	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/sims/life"
	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/telemetry"
)

// Session drives one background at a time for a host: frame updates, pause,
// reset, switching and telemetry. It holds no window or GPU state.
type Session struct {
	cfg    *config.Config
	bg     core.Background
	name   string
	seed   int64
	paused bool

	elapsed float64
	lastGen int

	pointerInside bool

	out    *telemetry.Output
	logger *slog.Logger
}

// NewSession builds the named background from cfg and resets it with seed.
// The telemetry output may be nil.
func NewSession(cfg *config.Config, name string, seed int64, out *telemetry.Output, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{cfg: cfg, seed: seed, out: out, logger: logger}
	if err := s.Switch(name); err != nil {
		return nil, err
	}
	return s, nil
}

// Background returns the active background.
func (s *Session) Background() core.Background { return s.bg }

// Name returns the active background name.
func (s *Session) Name() string { return s.name }

// Seed returns the seed of the last reset.
func (s *Session) Seed() int64 { return s.seed }

// Elapsed returns the seconds of unpaused time since the last reset.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Paused reports whether stepping is frozen.
func (s *Session) Paused() bool { return s.paused }

// SetPaused freezes or resumes stepping. Projection continues either way.
func (s *Session) SetPaused(paused bool) {
	s.paused = paused
	s.bg.SetPaused(paused)
}

// TogglePause flips the pause flag.
func (s *Session) TogglePause() { s.SetPaused(!s.paused) }

// Switch replaces the active background with a fresh instance of name.
func (s *Session) Switch(name string) error {
	factory, ok := core.Backgrounds()[name]
	if !ok {
		return fmt.Errorf("unknown background %q (have %v)", name, core.Names())
	}
	bg := factory(s.cfg.Overrides(name))
	if l, ok := bg.(interface{ SetLogger(*slog.Logger) }); ok {
		l.SetLogger(s.logger)
	}
	s.bg = bg
	s.name = name
	s.pointerInside = false
	s.Reset(s.seed)
	s.bg.SetPaused(s.paused)
	s.logger.Info("background selected", "background", name)
	return nil
}

// Next switches to the registered background after the current one.
func (s *Session) Next() error {
	names := core.Names()
	i := slices.Index(names, s.name)
	return s.Switch(names[(i+1)%len(names)])
}

// Reset re-seeds the active background. Seed 0 defers to the configured
// seed and then to the clock.
func (s *Session) Reset(seed int64) {
	s.seed = seed
	s.bg.Reset(seed)
	if sd, ok := s.bg.(interface{ Seed() int64 }); ok {
		s.seed = sd.Seed()
	}
	s.elapsed = 0
	s.lastGen = 0
}

// Reseed resets with a fresh time-based seed.
func (s *Session) Reseed() { s.Reset(time.Now().UnixNano()) }

// Frame advances the background by dt, refreshes its instances and records
// telemetry. Telemetry failures are logged, not returned, so a full disk
// never stops the animation.
func (s *Session) Frame(dt float64) {
	if !s.paused {
		s.elapsed += dt
	}
	s.bg.Update(dt)
	s.bg.Project(dt)
	if err := s.record(); err != nil {
		s.logger.Warn("telemetry write failed", "err", err)
	}
}

func (s *Session) record() error {
	if s.out == nil || s.paused {
		return nil
	}
	every := s.cfg.Telemetry.Every
	if every <= 0 {
		every = 1
	}
	switch bg := s.bg.(type) {
	case *life.World:
		st := bg.Stats()
		if st.Generation == s.lastGen {
			return nil
		}
		s.lastGen = st.Generation
		if st.Generation%every != 0 {
			return nil
		}
		return s.out.WriteGeneration(telemetry.GenerationRecord{
			Generation: st.Generation,
			Time:       s.elapsed,
			Alive:      st.Alive,
			Births:     st.Births,
			Deaths:     st.Deaths,
		})
	case *boids.Flock:
		st := bg.Stats()
		if st.Frame == 0 || st.Frame%every != 0 {
			return nil
		}
		return s.out.WriteFrame(telemetry.FlockRecord{
			Frame:     st.Frame,
			Time:      s.elapsed,
			MeanSpeed: st.MeanSpeed,
			MaxSpeed:  st.MaxSpeed,
		})
	}
	return nil
}

// Pointer returns the active background's pointer handler, if it has one.
func (s *Session) Pointer() (core.PointerHandler, bool) {
	h, ok := s.bg.(core.PointerHandler)
	return h, ok
}

// Status returns short HUD lines describing the active background.
func (s *Session) Status() []string {
	state := "running"
	if s.paused {
		state = "paused"
	}
	lines := []string{fmt.Sprintf("%s (%s)  seed %d", s.name, state, s.seed)}
	switch bg := s.bg.(type) {
	case *life.World:
		st := bg.Stats()
		lines = append(lines, fmt.Sprintf("gen %d  alive %d  +%d -%d", st.Generation, st.Alive, st.Births, st.Deaths))
	case *boids.Flock:
		st := bg.Stats()
		lines = append(lines, fmt.Sprintf("frame %d  speed %.3f / %.3f", st.Frame, st.MeanSpeed, st.MaxSpeed))
	}
	return lines
}

// Summary returns key/value pairs for a closing log line.
func (s *Session) Summary() []any {
	attrs := []any{"background", s.name, "seed", s.seed, "elapsed_s", s.elapsed}
	switch bg := s.bg.(type) {
	case *life.World:
		attrs = append(attrs, "stats", bg.Stats())
	case *boids.Flock:
		attrs = append(attrs, "stats", bg.Stats())
	}
	return attrs
}
