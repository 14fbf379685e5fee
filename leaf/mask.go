package leaf

import (
	"image"
	"math"

	"github.com/scottkirkwood/cordate"
	"golang.org/x/image/vector"
)

// Mask marks the pixels inside the leaf silhouette.
type Mask struct {
	width, height int
	inside        []bool
	count         int
}

// Rasterize fills the closed polygon poly (non-zero winding) and marks
// every pixel with any coverage as inside.
func Rasterize(poly []cordate.Vec2, width, height int) *Mask {
	m := &Mask{width: width, height: height, inside: make([]bool, width*height)}
	if len(poly) < 3 {
		return m
	}
	z := vector.NewRasterizer(width, height)
	z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
	for _, p := range poly[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()

	cover := image.NewAlpha(image.Rect(0, 0, width, height))
	z.Draw(cover, cover.Bounds(), image.Opaque, image.Point{})
	for y := 0; y < height; y++ {
		row := cover.Pix[y*cover.Stride : y*cover.Stride+width]
		for x, a := range row {
			if a != 0 {
				m.inside[y*width+x] = true
				m.count++
			}
		}
	}
	return m
}

func (m *Mask) Width() int  { return m.width }
func (m *Mask) Height() int { return m.height }

// Count is the number of inside pixels.
func (m *Mask) Count() int { return m.count }

// Inside reports whether pixel x, y is in the leaf. Pixels off the canvas are not.
func (m *Mask) Inside(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.inside[y*m.width+x]
}

// Contains reports whether the pixel under p is in the leaf.
func (m *Mask) Contains(p cordate.Vec2) bool {
	return m.Inside(int(math.Floor(p.X)), int(math.Floor(p.Y)))
}

// Clip erases every pixel of r that lies outside the mask.
func (m *Mask) Clip(r *cordate.Raster) {
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			if !m.Inside(x, y) {
				r.Clear(x, y)
			}
		}
	}
}

// sample draws points uniformly over the canvas until n of them land inside
// the mask. The mask must not be empty.
func (m *Mask) sample(rng *cordate.Rand, n int) []cordate.Vec2 {
	pts := make([]cordate.Vec2, 0, n)
	for len(pts) < n {
		p := cordate.Vec2{X: rng.Float(float64(m.width)), Y: rng.Float(float64(m.height))}
		if m.Contains(p) {
			pts = append(pts, p)
		}
	}
	return pts
}
