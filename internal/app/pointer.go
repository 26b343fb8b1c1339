package app

import "github.com/Mohd-Sayeedul-Hoda/portfolio/internal/core"

// PointerInput is one frame of mouse state as seen by a host.
type PointerInput struct {
	// Inside is false when the cursor is off the window or over a panel.
	Inside   bool
	Pressed  bool
	Released bool
	// At is the cursor projected onto the floor plane; OnFloor is false when
	// the pick ray missed it.
	At      core.Vec3
	OnFloor bool
}

// RoutePointer turns host mouse state into pointer events for the active
// background. Leaving the scene ends any drag. Backgrounds without pointer
// interaction ignore the input.
func (s *Session) RoutePointer(in PointerInput) {
	h, ok := s.Pointer()
	if !ok {
		s.pointerInside = false
		return
	}
	if s.pointerInside && !in.Inside {
		h.PointerLeave()
	}
	s.pointerInside = in.Inside
	if !in.Inside {
		return
	}
	switch {
	case in.Released:
		h.PointerUp()
	case !in.OnFloor:
	case in.Pressed:
		h.PointerDown(in.At)
	default:
		h.PointerMove(in.At)
	}
}
