package leaf

import (
	"github.com/scottkirkwood/cordate"
)

// tipOffset moves a copy of the stem tip sideways to close the right half.
var tipOffset = cordate.Vec2{X: 760, Y: 0}

// Reconstruct joins the boundary samples of a shape pass into one closed
// outline: the stem tip, the left samples in walk order, the shifted stem
// tip, then the right samples in walk order. The last point connects back
// to the first.
func Reconstruct(left, right []cordate.Vec2, stemTip cordate.Vec2) []cordate.Vec2 {
	l := make([]cordate.Vec2, 0, len(left)+1)
	l = append(l, stemTip)
	l = append(l, left...)

	r := make([]cordate.Vec2, 0, len(right)+1)
	for i := len(right) - 1; i >= 0; i-- {
		r = append(r, right[i])
	}
	r = append(r, stemTip.Add(tipOffset))

	out := make([]cordate.Vec2, 0, len(l)+len(r))
	out = append(out, l...)
	for i := len(r) - 1; i >= 0; i-- {
		out = append(out, r[i])
	}
	return out
}

// Translate returns pts moved by d.
func Translate(pts []cordate.Vec2, d cordate.Vec2) []cordate.Vec2 {
	out := make([]cordate.Vec2, len(pts))
	for i, p := range pts {
		out[i] = p.Add(d)
	}
	return out
}
