package leaf

import (
	"github.com/scottkirkwood/cordate"
)

// Detail is the number of steps sampled between two outline points.
const Detail = 30

// Smooth resamples pts along a Catmull-Rom curve through them, detail steps
// per span. The first point is padded once and the last twice so the curve
// reaches both ends. Fewer than two points are returned unchanged.
func Smooth(pts []cordate.Vec2, detail int) []cordate.Vec2 {
	if len(pts) < 2 || detail < 1 {
		return pts
	}
	padded := make([]cordate.Vec2, 0, len(pts)+3)
	padded = append(padded, pts[0])
	padded = append(padded, pts...)
	last := pts[len(pts)-1]
	padded = append(padded, last, last)

	path := make([]cordate.Vec2, 0, (len(padded)-3)*(detail+1))
	for t := 0; t < len(padded)-3; t++ {
		a, b, c, d := padded[t], padded[t+1], padded[t+2], padded[t+3]
		for i := 0; i <= detail; i++ {
			pct := float64(i) / float64(detail)
			path = append(path, cordate.Vec2{
				X: curvePoint(a.X, b.X, c.X, d.X, pct),
				Y: curvePoint(a.Y, b.Y, c.Y, d.Y, pct),
			})
		}
	}
	return path
}

// curvePoint evaluates one coordinate of a Catmull-Rom span from b to c.
func curvePoint(a, b, c, d, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	f1 := -0.5*t3 + t2 - 0.5*t
	f2 := 1.5*t3 - 2.5*t2 + 1
	f3 := -1.5*t3 + 2*t2 + 0.5*t
	f4 := 0.5*t3 - 0.5*t2
	return a*f1 + b*f2 + c*f3 + d*f4
}
