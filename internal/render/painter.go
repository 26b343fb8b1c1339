//go:build ebiten

package render

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"gonum.org/v1/gonum/spatial/r3"
)

// maxBatchVertices keeps index values inside uint16.
const maxBatchVertices = 60000

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// cubeFaces lists the three faces an iso camera looking from (+1,+1,+1)
// can see, as corner signs around the cube centre.
var cubeFaces = []struct {
	normal  r3.Vec
	corners [4]r3.Vec
}{
	{r3.Vec{Y: 1}, [4]r3.Vec{{X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}}},
	{r3.Vec{X: 1}, [4]r3.Vec{{X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}}},
	{r3.Vec{Z: 1}, [4]r3.Vec{{X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: 1}}},
}

// InstancePainter draws an InstanceBuffer through an isometric camera as
// flat-shaded triangles, batched into as few DrawTriangles calls as fit.
type InstancePainter struct {
	Camera IsoCamera
	Light  Light

	order    []int
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewInstancePainter returns a painter for the provided camera.
func NewInstancePainter(cam IsoCamera) *InstancePainter {
	return &InstancePainter{Camera: cam, Light: DefaultLight}
}

// DrawCubes paints every instance as a unit cube transformed by its matrix.
// Instances smaller than half a pixel are skipped.
func (p *InstancePainter) DrawCubes(dst *ebiten.Image, buf *InstanceBuffer) {
	if buf == nil || buf.Count == 0 {
		return
	}
	p.sortBackToFront(buf)
	minScale := 0.5 / p.Camera.Zoom
	for _, i := range p.order {
		s := buf.Scale(i)
		if s < minScale {
			continue
		}
		centre := buf.Position(i)
		c := buf.Color(i)
		h := s / 2
		for _, face := range cubeFaces {
			shaded := Shade(c, p.Light.Shade(face.normal))
			var pts [4][2]float32
			for k, corner := range face.corners {
				sx, sy := p.Camera.Project(r3.Add(centre, r3.Scale(h, corner)))
				pts[k] = [2]float32{float32(sx), float32(sy)}
			}
			p.appendQuad(dst, pts, shaded)
		}
	}
	p.flush(dst)
}

// DrawCones paints every instance as a flat arrowhead pointing along its
// local +Z axis, length long and 2*radius wide at the base.
func (p *InstancePainter) DrawCones(dst *ebiten.Image, buf *InstanceBuffer, length, radius float64) {
	if buf == nil || buf.Count == 0 {
		return
	}
	p.sortBackToFront(buf)
	for _, i := range p.order {
		m := buf.Matrix(i)
		pos := buf.Position(i)
		side := r3.Vec{X: float64(m[0]), Y: float64(m[1]), Z: float64(m[2])}
		fwd := buf.Forward(i)

		tip := r3.Add(pos, r3.Scale(length/2, fwd))
		back := r3.Sub(pos, r3.Scale(length/2, fwd))
		left := r3.Add(back, r3.Scale(radius, side))
		right := r3.Sub(back, r3.Scale(radius, side))

		shaded := Shade(buf.Color(i), p.Light.Shade(r3.Cross(side, fwd)))
		var pts [3][2]float32
		for k, v := range []r3.Vec{tip, left, right} {
			sx, sy := p.Camera.Project(v)
			pts[k] = [2]float32{float32(sx), float32(sy)}
		}
		p.appendTriangle(dst, pts, shaded)
	}
	p.flush(dst)
}

func (p *InstancePainter) sortBackToFront(buf *InstanceBuffer) {
	if cap(p.order) < buf.Count {
		p.order = make([]int, buf.Count)
	}
	p.order = p.order[:buf.Count]
	for i := range p.order {
		p.order[i] = i
	}
	sort.SliceStable(p.order, func(a, b int) bool {
		return p.Camera.Depth(buf.Position(p.order[a])) < p.Camera.Depth(buf.Position(p.order[b]))
	})
}

func (p *InstancePainter) appendQuad(dst *ebiten.Image, pts [4][2]float32, c color.RGBA) {
	if len(p.vertices)+4 > maxBatchVertices {
		p.flush(dst)
	}
	base := uint16(len(p.vertices))
	for _, pt := range pts {
		p.vertices = append(p.vertices, vertex(pt, c))
	}
	p.indices = append(p.indices, base, base+1, base+2, base, base+2, base+3)
}

func (p *InstancePainter) appendTriangle(dst *ebiten.Image, pts [3][2]float32, c color.RGBA) {
	if len(p.vertices)+3 > maxBatchVertices {
		p.flush(dst)
	}
	base := uint16(len(p.vertices))
	for _, pt := range pts {
		p.vertices = append(p.vertices, vertex(pt, c))
	}
	p.indices = append(p.indices, base, base+1, base+2)
}

func (p *InstancePainter) flush(dst *ebiten.Image) {
	if len(p.indices) > 0 {
		op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
		dst.DrawTriangles(p.vertices, p.indices, whiteSubImage, op)
	}
	p.vertices = p.vertices[:0]
	p.indices = p.indices[:0]
}

func vertex(pt [2]float32, c color.RGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   pt[0],
		DstY:   pt[1],
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 255,
		ColorG: float32(c.G) / 255,
		ColorB: float32(c.B) / 255,
		ColorA: 1,
	}
}
