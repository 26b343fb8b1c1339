package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	sqrt2 = math.Sqrt2
	sqrt6 = math.Sqrt(6)
)

// IsoCamera is an orthographic camera looking from (+1,+1,+1) towards the
// origin with world +Y up, mapping world units to pixels by Zoom.
type IsoCamera struct {
	Zoom    float64
	CenterX float64
	CenterY float64
}

// Project maps a world point to screen pixels.
func (c IsoCamera) Project(p r3.Vec) (float64, float64) {
	right := (p.X - p.Z) / sqrt2
	up := (2*p.Y - p.X - p.Z) / sqrt6
	return c.CenterX + c.Zoom*right, c.CenterY - c.Zoom*up
}

// Unproject maps a screen pixel back onto the floor plane (Y = 0).
func (c IsoCamera) Unproject(sx, sy float64) r3.Vec {
	if c.Zoom == 0 {
		return r3.Vec{}
	}
	a := (sx - c.CenterX) / c.Zoom
	b := -(sy - c.CenterY) / c.Zoom
	// a = (X-Z)/√2, b = -(X+Z)/√6
	diff := a * sqrt2
	sum := -b * sqrt6
	return r3.Vec{X: (sum + diff) / 2, Z: (sum - diff) / 2}
}

// Depth orders points front to back: larger values are closer to the viewer.
func (c IsoCamera) Depth(p r3.Vec) float64 {
	return p.X + p.Y + p.Z
}
