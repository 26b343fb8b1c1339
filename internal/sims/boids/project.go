package boids

import "gonum.org/v1/gonum/spatial/r3"

var (
	worldUp  = r3.Vec{Y: 1}
	altUp    = r3.Vec{Z: 1}
	epsilon2 = 1e-12
)

// Project writes one transform per agent with the local +Z axis pointing
// along the velocity. Agents at rest keep their previous orientation.
func (f *Flock) Project(dt float64) {
	for i, p := range f.pos {
		v := f.vel[i]
		if r3.Norm2(v) < epsilon2 {
			f.buf.SetTranslateBasis(i, p, f.axis(i, 0), f.axis(i, 1), f.axis(i, 2))
			continue
		}
		x, y, z := facing(v)
		f.buf.SetTranslateBasis(i, p, x, y, z)
	}
}

// facing builds an orthonormal basis whose z axis is the direction of v.
func facing(v r3.Vec) (x, y, z r3.Vec) {
	z = r3.Unit(v)
	x = r3.Cross(worldUp, z)
	if r3.Norm2(x) < epsilon2 {
		// Heading straight up or down.
		x = r3.Cross(altUp, z)
	}
	x = r3.Unit(x)
	y = r3.Cross(z, x)
	return x, y, z
}

func (f *Flock) axis(i, col int) r3.Vec {
	m := f.buf.Matrix(i)
	base := col * 4
	return r3.Vec{X: float64(m[base]), Y: float64(m[base+1]), Z: float64(m[base+2])}
}
