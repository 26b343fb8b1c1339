package boids

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestProjectFacesVelocity(t *testing.T) {
	f := newFlock(t, 3)
	f.Positions()[0] = r3.Vec{X: 1, Y: 2, Z: 3}
	f.Velocities()[0] = r3.Vec{X: 0.1}
	f.Velocities()[1] = r3.Vec{Y: -0.2}
	f.Velocities()[2] = r3.Vec{X: 0.05, Z: 0.05}

	f.Project(1.0 / 60)

	buf := f.Instances()
	if p := buf.Position(0); p != (r3.Vec{X: 1, Y: 2, Z: 3}) {
		t.Fatalf("translation %+v, expected (1,2,3)", p)
	}
	for i, v := range f.Velocities() {
		fwd := buf.Forward(i)
		if d := r3.Dot(fwd, r3.Unit(v)); math.Abs(d-1) > 1e-6 {
			t.Fatalf("agent %d forward %+v not aligned with %+v", i, fwd, v)
		}
		if s := buf.Scale(i); math.Abs(s-1) > 1e-6 {
			t.Fatalf("agent %d basis not unit length: %f", i, s)
		}
	}
}

func TestProjectKeepsOrientationAtRest(t *testing.T) {
	f := newFlock(t, 1)
	f.Velocities()[0] = r3.Vec{Z: -0.1}
	f.Project(1.0 / 60)
	before := f.Instances().Forward(0)

	f.Velocities()[0] = r3.Vec{}
	f.Positions()[0] = r3.Vec{X: 4}
	f.Project(1.0 / 60)

	if got := f.Instances().Forward(0); got != before {
		t.Fatalf("orientation changed at rest: %+v -> %+v", before, got)
	}
	if p := f.Instances().Position(0); p.X != 4 {
		t.Fatalf("translation should still follow the agent, got %+v", p)
	}
}
