package life

import "github.com/Mohd-Sayeedul-Hoda/portfolio/internal/core"

// Project eases every cell's scale towards 1 (alive) or 0 (dead) and writes
// the cube transforms into the instance buffer. Cubes sit on the floor plane
// and grow upwards. All N*N transforms are rewritten every frame, changed or
// not; at 60x60 that is 3600 matrices per frame.
func (w *World) Project(dt float64) {
	n := w.n
	pitch := w.cfg.Pitch()
	half := w.cfg.HalfExtent()
	rate := float32(dt * w.cfg.Damping)
	// A frame longer than 1/Damping would overshoot the target and leave
	// [0,1]; snap instead.
	if rate > 1 {
		rate = 1
	}
	if rate < 0 {
		rate = 0
	}
	floor := float32(w.cfg.MinScale)
	cells := w.grid.Cells()

	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			idx := x*n + y
			var target float32
			if cells[idx] {
				target = 1
			}
			w.scales[idx] += (target - w.scales[idx]) * rate

			s := w.scales[idx]
			if s < floor {
				s = floor
			}
			pos := core.Vec3{
				X: float64(x)*pitch - half,
				Y: float64(s) / 2,
				Z: float64(y)*pitch - half,
			}
			w.buf.SetTranslateScale(idx, pos, float64(s))
		}
	}
}
