package render

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	floatsPerMatrix = 16
	floatsPerColor  = 3
)

// InstanceBuffer holds per-instance transforms and colours for an instanced
// mesh. Matrices are 4x4, column-major, 16 floats per instance; colours are
// RGB in [0,1], 3 floats per instance.
type InstanceBuffer struct {
	Count    int
	Matrices []float32
	Colors   []float32
}

// NewInstanceBuffer allocates a buffer for count instances with identity
// transforms and black colours.
func NewInstanceBuffer(count int) *InstanceBuffer {
	if count < 0 {
		count = 0
	}
	b := &InstanceBuffer{
		Count:    count,
		Matrices: make([]float32, count*floatsPerMatrix),
		Colors:   make([]float32, count*floatsPerColor),
	}
	for i := 0; i < count; i++ {
		b.SetTranslateScale(i, r3.Vec{}, 1)
	}
	return b
}

// Matrix exposes the 16 floats of instance i.
func (b *InstanceBuffer) Matrix(i int) []float32 {
	if i < 0 || i >= b.Count {
		return nil
	}
	base := i * floatsPerMatrix
	return b.Matrices[base : base+floatsPerMatrix]
}

// SetTranslateScale writes a translation with uniform scale s.
func (b *InstanceBuffer) SetTranslateScale(i int, pos r3.Vec, s float64) {
	m := b.Matrix(i)
	if m == nil {
		return
	}
	fs := float32(s)
	m[0], m[1], m[2], m[3] = fs, 0, 0, 0
	m[4], m[5], m[6], m[7] = 0, fs, 0, 0
	m[8], m[9], m[10], m[11] = 0, 0, fs, 0
	m[12], m[13], m[14], m[15] = float32(pos.X), float32(pos.Y), float32(pos.Z), 1
}

// SetTranslateBasis writes a translation combined with a rotation whose
// columns are the provided local x, y and z axes.
func (b *InstanceBuffer) SetTranslateBasis(i int, pos, x, y, z r3.Vec) {
	m := b.Matrix(i)
	if m == nil {
		return
	}
	m[0], m[1], m[2], m[3] = float32(x.X), float32(x.Y), float32(x.Z), 0
	m[4], m[5], m[6], m[7] = float32(y.X), float32(y.Y), float32(y.Z), 0
	m[8], m[9], m[10], m[11] = float32(z.X), float32(z.Y), float32(z.Z), 0
	m[12], m[13], m[14], m[15] = float32(pos.X), float32(pos.Y), float32(pos.Z), 1
}

// Position returns the translation component of instance i.
func (b *InstanceBuffer) Position(i int) r3.Vec {
	m := b.Matrix(i)
	if m == nil {
		return r3.Vec{}
	}
	return r3.Vec{X: float64(m[12]), Y: float64(m[13]), Z: float64(m[14])}
}

// Scale returns the length of the local x axis of instance i, which equals
// the uniform scale for translate/scale transforms.
func (b *InstanceBuffer) Scale(i int) float64 {
	m := b.Matrix(i)
	if m == nil {
		return 0
	}
	x, y, z := float64(m[0]), float64(m[1]), float64(m[2])
	return math.Sqrt(x*x + y*y + z*z)
}

// Forward returns the local z axis of instance i.
func (b *InstanceBuffer) Forward(i int) r3.Vec {
	m := b.Matrix(i)
	if m == nil {
		return r3.Vec{}
	}
	return r3.Vec{X: float64(m[8]), Y: float64(m[9]), Z: float64(m[10])}
}

// SetColor stores the colour of instance i.
func (b *InstanceBuffer) SetColor(i int, c color.RGBA) {
	if i < 0 || i >= b.Count {
		return
	}
	base := i * floatsPerColor
	b.Colors[base+0] = float32(c.R) / 255
	b.Colors[base+1] = float32(c.G) / 255
	b.Colors[base+2] = float32(c.B) / 255
}

// Color returns the colour of instance i as 8-bit RGBA.
func (b *InstanceBuffer) Color(i int) color.RGBA {
	if i < 0 || i >= b.Count {
		return color.RGBA{}
	}
	base := i * floatsPerColor
	return color.RGBA{
		R: uint8(b.Colors[base+0]*255 + 0.5),
		G: uint8(b.Colors[base+1]*255 + 0.5),
		B: uint8(b.Colors[base+2]*255 + 0.5),
		A: 255,
	}
}
