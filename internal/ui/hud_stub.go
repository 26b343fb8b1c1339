//go:build !ebiten

package ui

import "github.com/Mohd-Sayeedul-Hoda/portfolio/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int) *HUD { return nil }

// SetTarget is a no-op in the headless build.
func (h *HUD) SetTarget(core.Background) {}

// Visible always reports false in the headless build.
func (h *HUD) Visible() bool { return false }

// Contains always reports false in the headless build.
func (h *HUD) Contains(int, int) bool { return false }

// Update is a no-op in the headless build.
func (h *HUD) Update(int, []string) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
