package lsystem

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/scottkirkwood/cordate"
)

// GlobalScale converts sentence lengths to pixels.
const GlobalScale = 8

// Pen receives every segment the turtle moves along.
type Pen func(from, to cordate.Vec2)

// Side of the leaf the boundary samples currently go to.
type Side int

const (
	LeftSide Side = iota
	RightSide
)

type turtle struct {
	pos   cordate.Vec2
	angle float64 // degrees
}

// Walk is what a pass over a sentence leaves behind.
type Walk struct {
	Left, Right []cordate.Vec2 // boundary samples in walk order
	End         cordate.Vec2   // final position, the stem tip
	Segments    int
}

// ShapePass walks s once, drawing to pen (may be nil) and sampling the
// boundary at every branch tip. It must run before VeinPass since both draw
// jitter from rng.
func ShapePass(s Sentence, rng *cordate.Rand, pen Pen) (Walk, error) {
	tips, err := BranchTips(s)
	if err != nil {
		return Walk{}, err
	}
	return interpret(s, rng, pen, tips), nil
}

// VeinPass walks s again without collecting boundary points.
func VeinPass(s Sentence, rng *cordate.Rand, pen Pen) Walk {
	return interpret(s, rng, pen, nil)
}

func interpret(s Sentence, rng *cordate.Rand, pen Pen, tips map[int]bool) Walk {
	var (
		w     Walk
		stack []turtle
		side  = LeftSide
	)
	t := turtle{angle: -90}
	n := float64(len(s))
	for _, tok := range s.Tokens() {
		i := float64(tok.Index)
		switch tok.Kind {
		case Forward:
			sin, cos := math.Sincos(gg.Radians(t.angle))
			scaled := tok.Length * GlobalScale
			next := cordate.Vec2{X: t.pos.X + scaled*cos, Y: t.pos.Y + scaled*sin}
			if pen != nil {
				pen(t.pos, next)
			}
			w.Segments++
			if tips[tok.Index] {
				if side == LeftSide {
					w.Left = append(w.Left, next)
				} else {
					w.Right = append(w.Right, next)
				}
			}
			t.pos = next
		case Right:
			t.angle += Angle + rng.Range(-10, 10) + 11*i
			side = RightSide
		case Left:
			t.angle += -Angle + rng.Range(-10, 10) - 11*(i+40) - 5*(n-i)
			side = LeftSide
		case Push:
			stack = append(stack, t)
		case Pop:
			if len(stack) > 0 {
				t = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			}
		}
	}
	w.End = t.pos
	return w
}
