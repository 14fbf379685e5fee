package leaf

import (
	"image/color"

	"github.com/scottkirkwood/cordate"
)

// Export draws the finished raster with the outline and the turtle skeleton
// traced on top, for vector formats.
func Export(lf *Leaf, ctx *cordate.Context) {
	if lf.Raster != nil {
		ctx.DrawImage(0, 0, lf.Raster.Image())
	}

	// faint wash of the silhouette
	ctx.SetFillColor(color.RGBA{70, 170, 80, 40})
	ctx.Polyline(lf.Smoothed, true)
	ctx.Fill()

	ctx.SetStrokeColor(color.RGBA{40, 70, 30, 255})
	ctx.SetStrokeWidth(1)
	ctx.Polyline(lf.Smoothed, true)
	ctx.Stroke()

	ctx.SetStrokeColor(color.RGBA{255, 255, 255, 90})
	ctx.SetStrokeWidth(0.3)
	for _, s := range lf.Skeleton {
		ctx.MoveTo(s.From.X, s.From.Y)
		ctx.LineTo(s.To.X, s.To.Y)
	}
	ctx.Stroke()
}
