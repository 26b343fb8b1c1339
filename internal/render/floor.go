package render

import "gonum.org/v1/gonum/spatial/r3"

// FloorGrid is a square grid of lines on a horizontal plane, centred on the
// origin.
type FloorGrid struct {
	Size      float64 // Side length in world units
	Divisions int
	Height    float64 // Y of the plane
}

// Segments returns the line endpoints: Divisions+1 lines along each axis.
func (g FloorGrid) Segments() [][2]r3.Vec {
	if g.Divisions <= 0 || g.Size <= 0 {
		return nil
	}
	half := g.Size / 2
	step := g.Size / float64(g.Divisions)
	segs := make([][2]r3.Vec, 0, 2*(g.Divisions+1))
	for i := 0; i <= g.Divisions; i++ {
		k := -half + float64(i)*step
		segs = append(segs,
			[2]r3.Vec{{X: k, Y: g.Height, Z: -half}, {X: k, Y: g.Height, Z: half}},
			[2]r3.Vec{{X: -half, Y: g.Height, Z: k}, {X: half, Y: g.Height, Z: k}},
		)
	}
	return segs
}

// IntersectFloor returns where the ray from origin along dir crosses the
// plane Y = height. It reports false for rays parallel to the plane or
// pointing away from it.
func IntersectFloor(origin, dir r3.Vec, height float64) (r3.Vec, bool) {
	if dir.Y == 0 {
		return r3.Vec{}, false
	}
	t := (height - origin.Y) / dir.Y
	if t < 0 {
		return r3.Vec{}, false
	}
	return r3.Add(origin, r3.Scale(t, dir)), true
}
