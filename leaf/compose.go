package leaf

import (
	"image"

	"github.com/scottkirkwood/cordate"
	"golang.org/x/image/draw"
)

// Compose blends layers bottom to top onto a transparent raster the size of
// the first layer.
func Compose(layers ...*cordate.Raster) *cordate.Raster {
	if len(layers) == 0 {
		return nil
	}
	out := cordate.NewRaster(layers[0].Width(), layers[0].Height())
	dst := out.Image()
	for _, l := range layers {
		draw.Draw(dst, dst.Bounds(), l.Image(), image.Point{}, draw.Over)
	}
	return out
}
