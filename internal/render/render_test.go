package render

import (
	"image/color"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestNewInstanceBufferIdentity(t *testing.T) {
	b := NewInstanceBuffer(2)
	if len(b.Matrices) != 32 || len(b.Colors) != 6 {
		t.Fatalf("unexpected buffer sizes %d/%d", len(b.Matrices), len(b.Colors))
	}
	m := b.Matrix(1)
	for i, v := range m {
		want := float32(0)
		if i%5 == 0 {
			want = 1
		}
		if v != want {
			t.Fatalf("matrix[%d] = %f, expected identity", i, v)
		}
	}
	if b.Matrix(2) != nil || b.Matrix(-1) != nil {
		t.Fatal("out of range matrix should be nil")
	}
}

func TestSetTranslateScaleColumnMajor(t *testing.T) {
	b := NewInstanceBuffer(1)
	b.SetTranslateScale(0, r3.Vec{X: 1, Y: 2, Z: 3}, 0.5)
	m := b.Matrix(0)
	if m[0] != 0.5 || m[5] != 0.5 || m[10] != 0.5 || m[15] != 1 {
		t.Fatalf("scale diagonal wrong: %v", m)
	}
	if m[12] != 1 || m[13] != 2 || m[14] != 3 {
		t.Fatalf("translation must sit in the last column: %v", m)
	}
	if b.Scale(0) != 0.5 || b.Position(0) != (r3.Vec{X: 1, Y: 2, Z: 3}) {
		t.Fatal("accessors disagree with the written transform")
	}
	b.SetTranslateScale(5, r3.Vec{}, 1)
}

func TestColorRoundTrip(t *testing.T) {
	b := NewInstanceBuffer(1)
	c := color.RGBA{R: 0xd9, G: 0x46, B: 0x76, A: 255}
	b.SetColor(0, c)
	if got := b.Color(0); got != c {
		t.Fatalf("colour %v, expected %v", got, c)
	}
	if math.Abs(float64(b.Colors[0])-0xd9/255.0) > 1e-6 {
		t.Fatalf("colour should be stored normalised, got %f", b.Colors[0])
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#e8c78a")
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.RGBA{R: 0xe8, G: 0xc7, B: 0x8a, A: 255}) {
		t.Fatalf("unexpected colour %v", c)
	}
	for _, bad := range []string{"", "#fff", "#zzzzzz", "e8c78a00"} {
		if _, err := ParseHex(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
	if got := ParsePalette([]string{"#000000", "nope", "#ffffff"}); len(got) != 2 {
		t.Fatalf("invalid entries should be skipped, got %d", len(got))
	}
}

type fixedChooser struct {
	ints   []int
	floats []float64
}

func (f *fixedChooser) IntN(n int) int {
	v := f.ints[0] % n
	f.ints = f.ints[1:]
	return v
}

func (f *fixedChooser) Float64() float64 {
	v := f.floats[0]
	f.floats = f.floats[1:]
	return v
}

func TestAssignColorsWithCuts(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}, {R: 2, A: 255}, {R: 3, A: 255}}
	b := NewInstanceBuffer(4)
	AssignColors(b, palette, []float64{0.33, 0.66}, &fixedChooser{floats: []float64{0.1, 0.33, 0.5, 0.99}})
	want := []uint8{1, 2, 2, 3}
	for i, r := range want {
		if got := b.Color(i).R; got != r {
			t.Fatalf("instance %d got palette entry %d, expected %d", i, got, r)
		}
	}
}

func TestAssignColorsUniform(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}, {R: 2, A: 255}, {R: 3, A: 255}}
	b := NewInstanceBuffer(3)
	AssignColors(b, palette, nil, &fixedChooser{ints: []int{2, 0, 1}})
	for i, r := range []uint8{3, 1, 2} {
		if got := b.Color(i).R; got != r {
			t.Fatalf("instance %d got %d, expected %d", i, got, r)
		}
	}
	AssignColors(b, nil, nil, nil)
}

func TestIsoUnprojectInvertsProject(t *testing.T) {
	cam := IsoCamera{Zoom: 35, CenterX: 640, CenterY: 400}
	for _, p := range []r3.Vec{{}, {X: 10, Z: -4}, {X: -29.5, Z: 29.5}} {
		sx, sy := cam.Project(p)
		got := cam.Unproject(sx, sy)
		if math.Abs(got.X-p.X) > 1e-9 || math.Abs(got.Z-p.Z) > 1e-9 || got.Y != 0 {
			t.Fatalf("Unproject(Project(%v)) = %v", p, got)
		}
	}
	if sx, sy := cam.Project(r3.Vec{}); sx != 640 || sy != 400 {
		t.Fatalf("origin should map to the centre, got (%f,%f)", sx, sy)
	}
	// Straight up is straight up on screen.
	_, high := cam.Project(r3.Vec{Y: 1})
	if high >= 400 {
		t.Fatal("+Y should move up the screen")
	}
	if (IsoCamera{}).Unproject(1, 1) != (r3.Vec{}) {
		t.Fatal("zero zoom should unproject to the origin")
	}
}

func TestFloorGridSegments(t *testing.T) {
	g := FloorGrid{Size: 200, Divisions: 200, Height: -0.01}
	segs := g.Segments()
	if len(segs) != 402 {
		t.Fatalf("expected 402 segments, got %d", len(segs))
	}
	first := segs[0]
	if first[0].X != -100 || first[0].Z != -100 || first[1].Z != 100 || first[0].Y != -0.01 {
		t.Fatalf("unexpected first segment %v", first)
	}
	if (FloorGrid{}).Segments() != nil {
		t.Fatal("empty grid should have no segments")
	}
}

func TestIntersectFloor(t *testing.T) {
	p, ok := IntersectFloor(r3.Vec{X: 50, Y: 50, Z: 50}, r3.Vec{X: -1, Y: -1, Z: -1}, 0)
	if !ok || math.Abs(p.X) > 1e-9 || math.Abs(p.Z) > 1e-9 {
		t.Fatalf("expected origin hit, got %v %v", p, ok)
	}
	if _, ok := IntersectFloor(r3.Vec{Y: 5}, r3.Vec{X: 1}, 0); ok {
		t.Fatal("parallel ray should miss")
	}
	if _, ok := IntersectFloor(r3.Vec{Y: 5}, r3.Vec{Y: 1}, 0); ok {
		t.Fatal("ray pointing away should miss")
	}
}

func TestLightShade(t *testing.T) {
	l := DefaultLight
	top := l.Shade(r3.Vec{Y: 1})
	side := l.Shade(r3.Vec{X: 1})
	front := l.Shade(r3.Vec{Z: 1})
	if !(top > side && side > front) {
		t.Fatalf("expected top > +X > +Z, got %f %f %f", top, side, front)
	}
	if got := l.Shade(r3.Vec{Y: -1}); got != l.Ambient {
		t.Fatalf("faces away from the light get ambient only, got %f", got)
	}
	if top > 1 {
		t.Fatal("shade must not exceed 1")
	}
}

func TestShadeClamps(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	if Shade(c, 2) != c {
		t.Fatal("factor above 1 should clamp")
	}
	if got := Shade(c, 0.5); got.R != 100 || got.G != 50 || got.B != 25 {
		t.Fatalf("unexpected half shade %v", got)
	}
}
