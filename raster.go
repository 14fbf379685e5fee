package cordate

import (
	"image"
	"image/color"
)

// Raster is a fixed size RGBA pixel buffer addressed by (x, y).
// Pixels start out fully transparent.
type Raster struct {
	img *image.RGBA
}

// NewRaster allocates a transparent width x height raster.
func NewRaster(width, height int) *Raster {
	return &Raster{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// RasterFromImage copies any image into a new Raster anchored at (0, 0).
func RasterFromImage(m image.Image) *Raster {
	b := m.Bounds()
	r := NewRaster(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r.img.Set(x, y, m.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return r
}

func (r *Raster) Width() int  { return r.img.Rect.Dx() }
func (r *Raster) Height() int { return r.img.Rect.Dy() }

// At returns the straight (non premultiplied) color at x, y.
func (r *Raster) At(x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(r.img.RGBAAt(x, y)).(color.NRGBA)
}

// Set stores c at x, y. Out of bounds writes are ignored.
func (r *Raster) Set(x, y int, c color.NRGBA) {
	r.img.Set(x, y, c)
}

// Clear makes x, y fully transparent.
func (r *Raster) Clear(x, y int) {
	r.img.SetRGBA(x, y, color.RGBA{})
}

// Opaque reports whether x, y holds anything other than full transparency.
func (r *Raster) Opaque(x, y int) bool {
	return r.img.RGBAAt(x, y).A != 0
}

// Image exposes the raster for drawing and encoding.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Equal reports whether both rasters hold identical pixels.
func (r *Raster) Equal(o *Raster) bool {
	if r.img.Rect != o.img.Rect {
		return false
	}
	for y := 0; y < r.Height(); y++ {
		a := r.img.Pix[y*r.img.Stride : y*r.img.Stride+4*r.Width()]
		b := o.img.Pix[y*o.img.Stride : y*o.img.Stride+4*o.Width()]
		if string(a) != string(b) {
			return false
		}
	}
	return true
}

// WrapRGBA adopts img as a Raster without copying. img must start at (0, 0).
func WrapRGBA(img *image.RGBA) *Raster {
	return &Raster{img: img}
}
