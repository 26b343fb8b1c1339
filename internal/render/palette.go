package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Chooser supplies the random draws used to assign palette entries.
type Chooser interface {
	IntN(n int) int
	Float64() float64
}

// ParseHex parses a "#rrggbb" colour.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("colour %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// ParsePalette parses a list of hex colours. Invalid entries are skipped so a
// bad config value degrades the palette instead of failing the scene.
func ParsePalette(hexes []string) []color.RGBA {
	palette := make([]color.RGBA, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			continue
		}
		palette = append(palette, c)
	}
	return palette
}

// AssignColors gives every instance a palette colour chosen once at random.
// With no cuts each entry is equally likely. With cuts, a uniform draw r
// selects the first entry i with r < cuts[i], and the last entry otherwise.
// An empty palette leaves the buffer untouched.
func AssignColors(buf *InstanceBuffer, palette []color.RGBA, cuts []float64, rng Chooser) {
	if buf == nil || len(palette) == 0 {
		return
	}
	last := len(palette) - 1
	for i := 0; i < buf.Count; i++ {
		idx := 0
		if len(cuts) == 0 {
			idx = rng.IntN(len(palette))
		} else {
			r := rng.Float64()
			idx = last
			for j, cut := range cuts {
				if j >= last {
					break
				}
				if r < cut {
					idx = j
					break
				}
			}
		}
		buf.SetColor(i, palette[idx])
	}
}

// Shade scales the RGB channels of c by f, clamped to [0,1].
func Shade(c color.RGBA, f float64) color.RGBA {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R)*f + 0.5),
		G: uint8(float64(c.G)*f + 0.5),
		B: uint8(float64(c.B)*f + 0.5),
		A: c.A,
	}
}
