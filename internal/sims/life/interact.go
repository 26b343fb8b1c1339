package life

import (
	"math"

	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/core"
)

// CellAt maps a world-space point on the floor plane to grid coordinates.
// The floor spans X (grid x) and Z (grid y). ok is false outside the grid.
func (w *World) CellAt(p core.Vec3) (x, y int, ok bool) {
	half := w.cfg.HalfExtent()
	pitch := w.cfg.Pitch()
	fx := math.Floor((p.X + half) / pitch)
	fy := math.Floor((p.Z + half) / pitch)
	if math.IsNaN(fx) || math.IsNaN(fy) {
		return 0, 0, false
	}
	if fx < 0 || fx >= float64(w.n) || fy < 0 || fy >= float64(w.n) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// PointerDown starts a drag session and injects cells at p.
func (w *World) PointerDown(p core.Vec3) {
	w.dragging = true
	w.inject(p)
}

// PointerMove injects cells at p while a drag session is active.
func (w *World) PointerMove(p core.Vec3) {
	if !w.dragging {
		return
	}
	w.inject(p)
}

// PointerUp ends the drag session.
func (w *World) PointerUp() { w.dragging = false }

// PointerLeave ends the drag session.
func (w *World) PointerLeave() { w.dragging = false }

// Dragging reports whether a drag session is active.
func (w *World) Dragging() bool { return w.dragging }

// inject stamps a glider at the cell under p and forces that exact cell
// alive so the click shows up immediately.
func (w *World) inject(p core.Vec3) {
	if w.paused && !w.cfg.InteractWhilePaused {
		return
	}
	x, y, ok := w.CellAt(p)
	if !ok {
		return
	}
	Stamp(w.grid, x, y, PatternGlider)
	w.grid.Set(x, y)
}
