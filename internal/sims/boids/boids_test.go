package boids

import (
	"math"
	"testing"

	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/core"

	"gonum.org/v1/gonum/spatial/r3"
)

func newFlock(t *testing.T, count int) *Flock {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Count = count
	cfg.Seed = 42
	return New(cfg)
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestLoneAgentOnlyBoundaryAndSpeedLimit(t *testing.T) {
	f := newFlock(t, 1)
	f.Positions()[0] = r3.Vec{X: 25, Y: 0, Z: -21}
	f.Velocities()[0] = r3.Vec{}

	f.Step()

	v := f.Velocities()[0]
	if !near(v.X, -0.05) || !near(v.Y, 0) || !near(v.Z, 0.05) {
		t.Fatalf("expected boundary push (-0.05,0,0.05), got %+v", v)
	}
	p := f.Positions()[0]
	if !near(p.X, 24.95) || !near(p.Z, -20.95) {
		t.Fatalf("position should advance by the new velocity, got %+v", p)
	}

	f.Positions()[0] = r3.Vec{}
	f.Velocities()[0] = r3.Vec{X: 1, Y: 1}
	f.Step()
	if s := r3.Norm(f.Velocities()[0]); !near(s, 0.2) {
		t.Fatalf("speed should be clamped to 0.2, got %f", s)
	}
}

func TestSeparationPushesApart(t *testing.T) {
	f := newFlock(t, 2)
	f.Positions()[0] = r3.Vec{}
	f.Positions()[1] = r3.Vec{X: 0.5}
	f.Velocities()[0] = r3.Vec{}
	f.Velocities()[1] = r3.Vec{}

	f.Step()

	// Separation outweighs cohesion for the first agent: -1.5 + 0.5.
	if v := f.Velocities()[0]; !near(v.X, -0.01) {
		t.Fatalf("agent 0 velocity %+v, expected x=-0.01", v)
	}
	if v := f.Velocities()[1]; v.X <= 0 {
		t.Fatalf("agent 1 should move away along +x, got %+v", v)
	}
}

func TestCohesionPullsTogether(t *testing.T) {
	f := newFlock(t, 2)
	f.Positions()[0] = r3.Vec{}
	f.Positions()[1] = r3.Vec{X: 1.5}
	f.Velocities()[0] = r3.Vec{}
	f.Velocities()[1] = r3.Vec{}

	f.Step()

	if v := f.Velocities()[0]; !near(v.X, 0.015) {
		t.Fatalf("agent 0 velocity %+v, expected x=0.015", v)
	}
	if v := f.Velocities()[1]; v.X >= 0 {
		t.Fatalf("agent 1 should move towards agent 0, got %+v", v)
	}
}

func TestAgentsOutsidePerceptionIgnored(t *testing.T) {
	f := newFlock(t, 2)
	f.Positions()[0] = r3.Vec{X: -5}
	f.Positions()[1] = r3.Vec{X: 5}
	f.Velocities()[0] = r3.Vec{Y: 0.1}
	f.Velocities()[1] = r3.Vec{Z: -0.1}

	f.Step()

	if v := f.Velocities()[0]; v != (r3.Vec{Y: 0.1}) {
		t.Fatalf("isolated agent should keep its velocity, got %+v", v)
	}
	if v := f.Velocities()[1]; v != (r3.Vec{Z: -0.1}) {
		t.Fatalf("isolated agent should keep its velocity, got %+v", v)
	}
}

func TestCoincidentAgentsStayFinite(t *testing.T) {
	f := newFlock(t, 3)
	for i := range f.Positions() {
		f.Positions()[i] = r3.Vec{X: 1, Y: 1, Z: 1}
		f.Velocities()[i] = r3.Vec{}
	}
	f.Step()
	for i, v := range f.Velocities() {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) {
			t.Fatalf("agent %d velocity became NaN", i)
		}
	}
}

func TestSpeedNeverExceedsLimit(t *testing.T) {
	f := newFlock(t, 400)
	f.Reset(9)
	for frame := 0; frame < 50; frame++ {
		f.Update(1.0 / 60)
		for i, v := range f.Velocities() {
			if s := r3.Norm(v); s > f.Config().MaxSpeed+1e-9 {
				t.Fatalf("frame %d agent %d speed %f above limit", frame, i, s)
			}
		}
	}
	st := f.Stats()
	if st.Frame != 50 {
		t.Fatalf("expected 50 frames, got %d", st.Frame)
	}
	if st.MaxSpeed > f.Config().MaxSpeed+1e-9 || st.MeanSpeed > st.MaxSpeed {
		t.Fatalf("inconsistent stats %+v", st)
	}
}

func TestResetScattersInsideBounds(t *testing.T) {
	f := newFlock(t, 400)
	f.Reset(3)
	half := f.Config().Boundary / 2
	halfSpeed := f.Config().MaxSpeed / 2
	for i, p := range f.Positions() {
		if math.Abs(p.X) > half || math.Abs(p.Y) > half || math.Abs(p.Z) > half {
			t.Fatalf("agent %d at %+v outside the initial cube", i, p)
		}
		v := f.Velocities()[i]
		if math.Abs(v.X) > halfSpeed || math.Abs(v.Y) > halfSpeed || math.Abs(v.Z) > halfSpeed {
			t.Fatalf("agent %d velocity %+v too fast", i, v)
		}
	}

	first := append([]r3.Vec(nil), f.Positions()...)
	f.Reset(3)
	for i, p := range f.Positions() {
		if p != first[i] {
			t.Fatal("reset with the same seed must be deterministic")
		}
	}
}

func TestPausedFlockDoesNotMove(t *testing.T) {
	f := newFlock(t, 50)
	f.Reset(1)
	before := append([]r3.Vec(nil), f.Positions()...)
	f.SetPaused(true)
	f.Update(1.0 / 60)
	for i, p := range f.Positions() {
		if p != before[i] {
			t.Fatal("paused flock moved")
		}
	}
	if f.Stats().Frame != 0 {
		t.Fatal("paused update must not count a frame")
	}
}

func TestColorsFollowCuts(t *testing.T) {
	f := newFlock(t, 400)
	allowed := map[[3]uint8]int{
		{0x6e, 0xe7, 0xb7}: 0,
		{0x0e, 0xa5, 0xe9}: 0,
		{0xc0, 0x84, 0xfc}: 0,
	}
	buf := f.Instances()
	for i := 0; i < buf.Count; i++ {
		c := buf.Color(i)
		key := [3]uint8{c.R, c.G, c.B}
		n, ok := allowed[key]
		if !ok {
			t.Fatalf("agent %d has colour %v outside the palette", i, c)
		}
		allowed[key] = n + 1
	}
	for key, n := range allowed {
		if n < 80 {
			t.Fatalf("colour %v used only %d times out of 400", key, n)
		}
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Backgrounds()["boids"]
	if !ok {
		t.Fatal("boids background not registered")
	}
	bg := factory(map[string]string{"count": "10"})
	if bg.Instances().Count != 10 {
		t.Fatalf("expected 10 instances, got %d", bg.Instances().Count)
	}
}

func TestSetFloatParameterClamps(t *testing.T) {
	f := newFlock(t, 1)
	if !f.SetFloatParameter("cohesion_weight", 99) {
		t.Fatal("cohesion_weight should be adjustable")
	}
	if f.Config().CohesionWeight != 5 {
		t.Fatalf("expected clamp to 5, got %f", f.Config().CohesionWeight)
	}
	if f.SetFloatParameter("boundary", 3) {
		t.Fatal("boundary is not adjustable")
	}
}
