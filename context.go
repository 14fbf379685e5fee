package cordate

import (
	"image"
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/pdf"
	"github.com/tdewolff/canvas/rasterizer"
	"github.com/tdewolff/canvas/svg"
)

// Dots per millimeter when a raster is placed on the canvas, one pixel is one unit.
const imageDPMM = 1.0

// Context is my abstraction for Canvas.
// Coordinates are in raster space: origin top left, y grows downward.
type Context struct {
	c      *canvas.Canvas
	ctx    *canvas.Context
	height float64
}

func NewContext(width, height float64) *Context {
	ctx := &Context{
		c:      canvas.New(width, height),
		height: height,
	}
	ctx.ctx = canvas.NewContext(ctx.c)
	return ctx
}

// WritePNG writes to a PNG file
func (ctx *Context) WritePNG(fname string) error {
	return ctx.c.WriteFile(fname, rasterizer.PNGWriter(imageDPMM))
}

// WriteSVG writes to an SVG file
func (ctx *Context) WriteSVG(fname string) error {
	return ctx.c.WriteFile(fname, svg.Writer)
}

// WritePDF writes to a PDF file
func (ctx *Context) WritePDF(fname string) error {
	return ctx.c.WriteFile(fname, pdf.Writer)
}

func (ctx *Context) SetFillColor(col color.Color) {
	ctx.ctx.SetFillColor(col)
}

func (ctx *Context) SetStrokeColor(col color.Color) {
	ctx.ctx.SetStrokeColor(col)
}

func (ctx *Context) SetStrokeWidth(width float64) {
	ctx.ctx.SetStrokeWidth(width)
}

// MoveTo starts a new subpath at x,y.
func (ctx *Context) MoveTo(x, y float64) {
	ctx.ctx.MoveTo(x, ctx.height-y)
}

// LineTo adds a linear path to x,y.
func (ctx *Context) LineTo(x, y float64) {
	ctx.ctx.LineTo(x, ctx.height-y)
}

// Polyline adds pts as one subpath, optionally closing it.
func (ctx *Context) Polyline(pts []Vec2, closed bool) {
	if len(pts) == 0 {
		return
	}
	ctx.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		ctx.LineTo(p.X, p.Y)
	}
	if closed {
		ctx.Close()
	}
}

// DrawImage places img with its top left corner at x,y.
func (ctx *Context) DrawImage(x, y float64, img image.Image) {
	h := float64(img.Bounds().Dy())
	ctx.ctx.DrawImage(x, ctx.height-y-h, img, imageDPMM)
}

// Stroke strokes the current path and resets it.
func (ctx *Context) Stroke() {
	ctx.ctx.Stroke()
}

// Fill fills the current path and resets it.
func (ctx *Context) Fill() {
	ctx.ctx.Fill()
}

// Close closes the current path
func (ctx *Context) Close() {
	ctx.ctx.Close()
}
