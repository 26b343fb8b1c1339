package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Light is a directional light plus an ambient floor, used to shade flat
// faces without a GPU lighting pass.
type Light struct {
	Direction r3.Vec // Points from the scene towards the light
	Ambient   float64
	Diffuse   float64
}

// DefaultLight matches a sun above and slightly in front of the floor.
var DefaultLight = Light{
	Direction: r3.Unit(r3.Vec{X: 10, Y: 20, Z: 5}),
	Ambient:   0.55,
	Diffuse:   0.45,
}

// Shade returns the brightness factor in [0,1] for a face with the given
// outward normal.
func (l Light) Shade(normal r3.Vec) float64 {
	n := r3.Norm(normal)
	if n == 0 {
		return math.Min(1, l.Ambient)
	}
	d := r3.Dot(r3.Scale(1/n, normal), l.Direction)
	if d < 0 {
		d = 0
	}
	return math.Min(1, l.Ambient+l.Diffuse*d)
}
