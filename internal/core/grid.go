package core

// BoolGrid stores a square grid of alive/dead cells. Cells are flattened with
// the x coordinate as the major axis: Index(x, y) = x*N + y.
type BoolGrid struct {
	N    int
	data []bool
}

// NewBoolGrid allocates an n*n grid with every cell dead.
func NewBoolGrid(n int) *BoolGrid {
	if n <= 0 {
		n = 1
	}
	return &BoolGrid{N: n, data: make([]bool, n*n)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *BoolGrid) Cells() []bool { return g.data }

// Index returns the linear slice index for (x, y), or -1 when the coordinates
// fall outside the grid.
func (g *BoolGrid) Index(x, y int) int {
	if x < 0 || x >= g.N || y < 0 || y >= g.N {
		return -1
	}
	return x*g.N + y
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *BoolGrid) Wrap(x, y int) (int, int) {
	x = (x%g.N + g.N) % g.N
	y = (y%g.N + g.N) % g.N
	return x, y
}

// Alive reports whether (x, y) is alive. Out-of-range cells read as dead.
func (g *BoolGrid) Alive(x, y int) bool {
	idx := g.Index(x, y)
	if idx < 0 {
		return false
	}
	return g.data[idx]
}

// Set marks (x, y) alive. Out-of-range coordinates are ignored.
func (g *BoolGrid) Set(x, y int) {
	if idx := g.Index(x, y); idx >= 0 {
		g.data[idx] = true
	}
}

// Count returns the number of live cells.
func (g *BoolGrid) Count() int {
	n := 0
	for _, alive := range g.data {
		if alive {
			n++
		}
	}
	return n
}

// Clear marks every cell dead.
func (g *BoolGrid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}
