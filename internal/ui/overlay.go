//go:build ebiten

package ui

import (
	"image/color"

	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws the floor grid under the scene. G toggles it.
type Overlay struct {
	grid     render.FloorGrid
	color    color.RGBA
	showGrid bool
}

// NewOverlay constructs an overlay for the given floor grid.
func NewOverlay(grid render.FloorGrid, c color.RGBA) *Overlay {
	return &Overlay{grid: grid, color: c, showGrid: true}
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the floor grid lines through cam.
func (o *Overlay) Draw(screen *ebiten.Image, cam render.IsoCamera) {
	if !o.showGrid {
		return
	}
	for _, seg := range o.grid.Segments() {
		x0, y0 := cam.Project(seg[0])
		x1, y1 := cam.Project(seg[1])
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, o.color, true)
	}
}
