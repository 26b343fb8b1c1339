package life

import "github.com/Mohd-Sayeedul-Hoda/portfolio/internal/core"

// Offset is a cell position relative to a pattern's anchor.
type Offset struct {
	DX, DY int
}

// Pattern names understood by Stamp.
const (
	PatternGlider = "glider"
	PatternLWSS   = "lwss"
	PatternPulsar = "pulsar"
)

// The pulsar list repeats some offsets across its sub-groups; they are kept
// as-is since stamping is idempotent.
var patterns = map[string][]Offset{
	PatternGlider: {
		{0, 1}, {1, 2}, {-1, 0}, {0, 0}, {1, 0},
	},
	PatternLWSS: {
		{-2, -1}, {-2, 1}, {-1, -2}, {0, -2}, {1, -2}, {2, -2}, {2, -1}, {2, 0}, {1, 1},
	},
	PatternPulsar: {
		{-2, -4}, {-3, -4}, {-4, -4}, {2, -4}, {3, -4}, {4, -4},
		{-2, 4}, {-3, 4}, {-4, 4}, {2, 4}, {3, 4}, {4, 4},
		{-4, -2}, {-4, -3}, {-4, -4}, {-4, 2}, {-4, 3}, {-4, 4},
		{4, -2}, {4, -3}, {4, -4}, {4, 2}, {4, 3}, {4, 4},
		{-2, -2}, {-3, -2}, {-4, -2}, {2, -2}, {3, -2}, {4, -2},
		{-2, 2}, {-3, 2}, {-4, 2}, {2, 2}, {3, 2}, {4, 2},
		{-2, -4}, {-2, -3}, {-2, -2}, {-2, 2}, {-2, 3}, {-2, 4},
		{2, -4}, {2, -3}, {2, -2}, {2, 2}, {2, 3}, {2, 4},
	},
}

// Pattern returns a copy of the named template.
func Pattern(name string) ([]Offset, bool) {
	offsets, ok := patterns[name]
	if !ok {
		return nil, false
	}
	return append([]Offset(nil), offsets...), true
}

// Stamp sets every cell of the named pattern alive, anchored at (x0, y0) and
// wrapped onto the torus. Unknown names are ignored.
func Stamp(grid *core.BoolGrid, x0, y0 int, name string) {
	offsets, ok := patterns[name]
	if !ok || grid == nil {
		return
	}
	for _, o := range offsets {
		x, y := grid.Wrap(x0+o.DX, y0+o.DY)
		grid.Set(x, y)
	}
}

type intner interface {
	IntN(n int) int
}

// seedLayout is the fixed arrangement placed on every reset, before the
// random gliders.
var seedLayout = []struct {
	x, y int
	name string
}{
	{12, 12, PatternPulsar},
	{48, 48, PatternPulsar},
	{12, 48, PatternPulsar},
	{48, 12, PatternPulsar},

	{6, 30, PatternLWSS},
	{15, 27, PatternLWSS},
	{24, 33, PatternLWSS},
}

// Seed stamps the standard layout: four pulsars near the quadrant centres,
// three spaceships across the middle and the given number of gliders at
// uniformly random coordinates.
func Seed(grid *core.BoolGrid, gliders int, rng intner) {
	for _, p := range seedLayout {
		Stamp(grid, p.x, p.y, p.name)
	}
	for i := 0; i < gliders; i++ {
		x := rng.IntN(grid.N)
		y := rng.IntN(grid.N)
		Stamp(grid, x, y, PatternGlider)
	}
}
