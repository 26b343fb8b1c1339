package core

import (
	"sort"

	"github.com/Mohd-Sayeedul-Hoda/portfolio/internal/render"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a world-space point or direction.
type Vec3 = r3.Vec

// Background is an animated scene driven once per rendered frame by the host.
type Background interface {
	Name() string
	Reset(seed int64)
	// Update advances simulation state by dt seconds. It does nothing while
	// paused.
	Update(dt float64)
	// Project refreshes the instance buffer. Hosts call it every frame,
	// paused or not.
	Project(dt float64)
	Instances() *render.InstanceBuffer
	SetPaused(paused bool)
	Paused() bool
}

// PointerHandler receives pointer events already intersected with the floor
// plane in world space.
type PointerHandler interface {
	PointerDown(p Vec3)
	PointerMove(p Vec3)
	PointerUp()
	PointerLeave()
}

// Factory constructs a Background using an optional configuration map.
type Factory func(cfg map[string]string) Background

var backgrounds = map[string]Factory{}

// Register adds a background factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	backgrounds[name] = f
}

// Backgrounds exposes the registry of available background factories.
func Backgrounds() map[string]Factory {
	return backgrounds
}

// Names returns the registered background names in sorted order.
func Names() []string {
	names := make([]string, 0, len(backgrounds))
	for name := range backgrounds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
