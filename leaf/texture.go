package leaf

import (
	"image/color"
	"math"
	"runtime"
	"sync"

	"github.com/anthonynsimon/bild/blur"
	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/scottkirkwood/cordate"
)

const (
	veinWidth  = 15
	veinBlur   = 20
	edgePoints = 1000
	edgeWall   = 0.1 // d2-d1 below this is a cell wall
	gridCell   = 16  // pixels per bucket of the edge point grid
)

var (
	centerColor = rgb255(70, 170, 80)
	rimColor    = rgb255(160, 70, 50)
)

// Segment is one turtle move in canvas coordinates.
type Segment struct {
	From, To cordate.Vec2
}

// Gradient shades the leaf from green in the middle of the canvas to amber
// in the corners.
func Gradient(m *Mask) *cordate.Raster {
	w, h := m.Width(), m.Height()
	layer := cordate.NewRaster(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !m.Inside(x, y) {
				continue
			}
			nx := float64(x) / float64(w)
			ny := float64(y) / float64(h)
			dist := math.Sqrt((nx-0.5)*(nx-0.5) + (ny-0.5)*(ny-0.5))
			t := math.Min(dist*math.Sqrt2, 1)
			layer.Set(x, y, nrgba(centerColor.BlendRgb(rimColor, t), 255))
		}
	}
	return layer
}

// Veins strokes the skeleton thick and white, blurs it into a soft glow and
// keeps what falls inside the leaf.
func Veins(segs []Segment, m *Mask) *cordate.Raster {
	layer := cordate.NewRaster(m.Width(), m.Height())
	dc := gg.NewContextForRGBA(layer.Image())
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(veinWidth)
	dc.SetLineCap(gg.LineCapRound)
	for _, s := range segs {
		dc.DrawLine(s.From.X, s.From.Y, s.To.X, s.To.Y)
		dc.Stroke()
	}
	blurred := cordate.WrapRGBA(blur.Gaussian(layer.Image(), veinBlur))
	m.Clip(blurred)
	return blurred
}

// FeaturePoints draws the cell centers of the edge pass, all inside m.
func FeaturePoints(rng *cordate.Rand, m *Mask) []cordate.Vec2 {
	return m.sample(rng, edgePoints)
}

// Cells shades every inside pixel by its distance to the two closest
// feature points: thin white walls where both are about as close, green
// cells elsewhere. No randomness is left here, so rows are shaded in
// parallel.
func Cells(pts []cordate.Vec2, m *Mask) *cordate.Raster {
	w, h := m.Width(), m.Height()
	layer := cordate.NewRaster(w, h)
	grid := newPointGrid(pts, w, h, gridCell)

	rows := make(chan int, h)
	for y := 0; y < h; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for i := 0; i < runtime.NumCPU(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				for x := 0; x < w; x++ {
					if !m.Inside(x, y) {
						continue
					}
					d1, d2 := grid.nearest2(cordate.Vec2{X: float64(x), Y: float64(y)})
					layer.Set(x, y, cellColor(d1, d2, y, h))
				}
			}
		}()
	}
	wg.Wait()
	return layer
}

func cellColor(d1, d2 float64, y, height int) color.NRGBA {
	edge := d2 - d1
	if edge < edgeWall {
		// brighter near the top
		a := 80 * float64(height-y) / float64(height)
		return color.NRGBA{R: 255, G: 255, B: 255, A: cordate.Byte(a)}
	}
	shadow := cordate.Map(edge, 0, 20, 80, 0)
	r := cordate.Map(d1, 0, 50, 100, 50)
	g := cordate.Map(d1, 0, 50, 160, 100)
	b := cordate.Map(d1, 0, 50, 80, 30)
	return color.NRGBA{
		R: cordate.Byte(r - shadow*0.5),
		G: cordate.Byte(g - shadow*0.6),
		B: cordate.Byte(b - shadow*0.4),
		A: cordate.Byte(cordate.Map(shadow, 0, 80, 150, 50)),
	}
}

// stipple is one dot texture pass.
type stipple struct {
	cells  int
	draws  int
	shade  float64 // shade at the largest distance, 255 at a cell center
	dotA   float64
	ringW  float64
	dotDia float64
}

var (
	greenStipple = stipple{cells: 50, draws: 50000, shade: 100, dotA: 10, ringW: 0.5, dotDia: 1}
	redStipple   = stipple{cells: 50, draws: 50000, shade: 180, dotA: 50, ringW: 0.5, dotDia: 1}
)

// GreenDots and RedDots scatter faint rings and dots whose size and
// strength follow a Worley field of their own cells.
func GreenDots(rng *cordate.Rand, m *Mask) *cordate.Raster { return greenStipple.draw(rng, m) }
func RedDots(rng *cordate.Rand, m *Mask) *cordate.Raster   { return redStipple.draw(rng, m) }

func (s stipple) draw(rng *cordate.Rand, m *Mask) *cordate.Raster {
	layer := cordate.NewRaster(m.Width(), m.Height())
	cells := m.sample(rng, s.cells)
	dc := gg.NewContextForRGBA(layer.Image())
	w, h := float64(m.Width()), float64(m.Height())
	for i := 0; i < s.draws; i++ {
		p := cordate.Vec2{X: rng.Float(w), Y: rng.Float(h)}
		if !m.Contains(p) {
			continue
		}
		dist := worley(p, cells)
		shade := cordate.Map(dist, 0, 50, 255, s.shade)
		alpha := cordate.Map(dist, 0, 50, 80, 20)
		dia := cordate.Map(dist, 0, 50, 0.5, 2)

		dc.SetRGBA(1, 1, 1, cordate.Clamp(alpha, 0, 255)/255)
		dc.SetLineWidth(s.ringW)
		dc.DrawCircle(p.X, p.Y, math.Abs(dia)/2)
		dc.Stroke()

		dc.SetRGBA(cordate.Clamp(shade, 0, 255)/255, 160/255.0, cordate.Clamp(shade, 0, 255)/255, s.dotA/255)
		dc.DrawCircle(p.X, p.Y, s.dotDia/2)
		dc.Fill()
	}
	m.Clip(layer)
	return layer
}

func nrgba(c colorful.Color, a uint8) color.NRGBA {
	return color.NRGBA{
		R: cordate.Byte(c.R * 255),
		G: cordate.Byte(c.G * 255),
		B: cordate.Byte(c.B * 255),
		A: a,
	}
}
