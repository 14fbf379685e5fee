package leaf

import (
	"image/color"
	"testing"

	"github.com/scottkirkwood/cordate"
)

func TestCellColor(t *testing.T) {
	tests := []struct {
		name   string
		d1, d2 float64
		y      int
		want   color.NRGBA
	}{
		{"wall at top", 5, 5.05, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 80}},
		{"wall at bottom", 5, 5, 100, color.NRGBA{R: 255, G: 255, B: 255, A: 0}},
		{"cell center", 0, 20, 50, color.NRGBA{R: 100, G: 160, B: 80, A: 150}},
		{"near wall", 0, 0.1, 50, color.NRGBA{R: 60, G: 112, B: 48, A: 50}},
		{"far away", 100, 200, 50, color.NRGBA{R: 160, G: 232, B: 108, A: 255}},
	}
	for _, tt := range tests {
		got := cellColor(tt.d1, tt.d2, tt.y, 100)
		// rounding of the near wall case may land one off
		if diff(got.R, tt.want.R) > 1 || diff(got.G, tt.want.G) > 1 || diff(got.B, tt.want.B) > 1 || diff(got.A, tt.want.A) > 1 {
			t.Errorf("%s: cellColor = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func diff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestGradient(t *testing.T) {
	m := Rasterize(square(0, 0, 100, 70), 100, 70)
	g := Gradient(m)
	center := g.At(50, 35)
	if center != (color.NRGBA{R: 70, G: 170, B: 80, A: 255}) {
		t.Errorf("center = %v, want the inner green", center)
	}
	corner := g.At(0, 0)
	if corner != (color.NRGBA{R: 160, G: 70, B: 50, A: 255}) {
		t.Errorf("corner = %v, want amber", corner)
	}
}

func TestGradientOnlyInside(t *testing.T) {
	m := Rasterize(square(10, 10, 20, 20), 40, 40)
	g := Gradient(m)
	assertInside(t, "gradient", g, m)
}

func TestDotsStayInside(t *testing.T) {
	m := Rasterize([]cordate.Vec2{{X: 20, Y: 20}, {X: 180, Y: 40}, {X: 100, Y: 130}}, 200, 150)
	rng := cordate.NewRand(cordate.SeedFromInt(11))
	green := GreenDots(rng, m)
	red := RedDots(rng, m)
	assertInside(t, "green dots", green, m)
	assertInside(t, "red dots", red, m)
	if countOpaque(green) == 0 || countOpaque(red) == 0 {
		t.Error("a dot layer is empty")
	}
}

func TestCellsStayInside(t *testing.T) {
	m := Rasterize([]cordate.Vec2{{X: 20, Y: 20}, {X: 180, Y: 40}, {X: 100, Y: 130}}, 200, 150)
	rng := cordate.NewRand(cordate.SeedFromInt(12))
	pts := FeaturePoints(rng, m)
	if len(pts) != edgePoints {
		t.Fatalf("got %d feature points, want %d", len(pts), edgePoints)
	}
	cells := Cells(pts, m)
	assertInside(t, "cells", cells, m)
	if countOpaque(cells) == 0 {
		t.Error("cell layer is empty")
	}
}

func TestVeinsStayInside(t *testing.T) {
	m := Rasterize(square(50, 50, 150, 100), 200, 150)
	segs := []Segment{{cordate.Vec2{X: 0, Y: 75}, cordate.Vec2{X: 200, Y: 75}}}
	v := Veins(segs, m)
	assertInside(t, "veins", v, m)
	if !v.Opaque(100, 75) {
		t.Error("vein missing under the stroke")
	}
}

func TestStem(t *testing.T) {
	if got := bezierPoint(0); got != stemBase {
		t.Errorf("bezierPoint(0) = %v, want %v", got, stemBase)
	}
	if got := bezierPoint(1); got.Dist(stemEnd) > 1e-9 {
		t.Errorf("bezierPoint(1) = %v, want %v", got, stemEnd)
	}
	if c := nrgba(stemColor(0), 255); c != (color.NRGBA{R: 120, G: 70, B: 40, A: 255}) {
		t.Errorf("stem base color = %v, want brown", c)
	}
	s := Stem(Width, Height)
	base := bezierPoint(0.01).Add(Origin(Width, Height))
	if !s.Opaque(int(base.X), int(base.Y)) {
		t.Errorf("no stem at %v", base)
	}
}

func TestCompose(t *testing.T) {
	bottom := cordate.NewRaster(2, 1)
	top := cordate.NewRaster(2, 1)
	bottom.Set(0, 0, color.NRGBA{R: 255, A: 255})
	bottom.Set(1, 0, color.NRGBA{R: 255, A: 255})
	top.Set(1, 0, color.NRGBA{B: 255, A: 255})

	out := Compose(bottom, top)
	if got := out.At(0, 0); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("pixel 0 = %v, want red", got)
	}
	if got := out.At(1, 0); got != (color.NRGBA{B: 255, A: 255}) {
		t.Errorf("pixel 1 = %v, want blue", got)
	}
}

func assertInside(t *testing.T, name string, r *cordate.Raster, m *Mask) {
	t.Helper()
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			if r.Opaque(x, y) && !m.Inside(x, y) {
				t.Fatalf("%s: pixel %d,%d is drawn outside the mask", name, x, y)
			}
		}
	}
}

func countOpaque(r *cordate.Raster) int {
	n := 0
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			if r.Opaque(x, y) {
				n++
			}
		}
	}
	return n
}
