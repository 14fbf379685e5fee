package leaf

import (
	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/scottkirkwood/cordate"
)

const stemSteps = 100

var (
	// control points relative to the canvas origin
	stemBase = cordate.Vec2{X: -50, Y: 15}
	stemCP1  = cordate.Vec2{X: 120, Y: -15}
	stemCP2  = cordate.Vec2{X: 340, Y: -40}
	stemEnd  = cordate.Vec2{X: 560, Y: -15}

	stemBrown = rgb255(120, 70, 40)
	stemDark  = rgb255(70, 100, 70)
	stemLight = rgb255(220, 250, 180)
)

// Stem draws the fixed Bezier stem, brown and thick at the base, pale and
// thin at the tip.
func Stem(width, height int) *cordate.Raster {
	layer := cordate.NewRaster(width, height)
	dc := gg.NewContextForRGBA(layer.Image())
	dc.SetLineCap(gg.LineCapRound)
	origin := Origin(width, height)
	for k := 0; k < stemSteps; k++ {
		t := float64(k) / stemSteps
		a := bezierPoint(t).Add(origin)
		b := bezierPoint(t + 1.0/stemSteps).Add(origin)

		c := nrgba(stemColor(t), 255)
		dc.SetRGBA255(int(c.R), int(c.G), int(c.B), 255)
		dc.SetLineWidth(cordate.Lerp(6, 0.5, t))
		dc.DrawLine(a.X, a.Y, b.X, b.Y)
		dc.Stroke()
	}
	return layer
}

// stemColor blends brown to dark green over the first part of the stem,
// then on to light green. The blends are not clamped.
func stemColor(t float64) colorful.Color {
	if t < 0.3 {
		return stemBrown.BlendRgb(stemDark, t/0.2)
	}
	return stemDark.BlendRgb(stemLight, (t-0.3)/0.8)
}

func bezierPoint(t float64) cordate.Vec2 {
	u := 1 - t
	return stemBase.Mul(u * u * u).
		Add(stemCP1.Mul(3 * u * u * t)).
		Add(stemCP2.Mul(3 * u * t * t)).
		Add(stemEnd.Mul(t * t * t))
}

func rgb255(r, g, b float64) colorful.Color {
	return colorful.Color{R: r / 255, G: g / 255, B: b / 255}
}
