package leaf

import (
	"math"

	"github.com/scottkirkwood/cordate"
)

// pointGrid buckets feature points so the nearest ones to a pixel can be
// found without visiting all of them.
type pointGrid struct {
	cell       float64
	cols, rows int
	cells      [][]cordate.Vec2
}

func newPointGrid(pts []cordate.Vec2, width, height int, cell float64) *pointGrid {
	g := &pointGrid{
		cell: cell,
		cols: int(math.Ceil(float64(width) / cell)),
		rows: int(math.Ceil(float64(height) / cell)),
	}
	g.cells = make([][]cordate.Vec2, g.cols*g.rows)
	for _, p := range pts {
		cx, cy := g.locate(p)
		g.cells[cy*g.cols+cx] = append(g.cells[cy*g.cols+cx], p)
	}
	return g
}

func (g *pointGrid) locate(p cordate.Vec2) (int, int) {
	cx := int(p.X / g.cell) // Note: int() will floor for positive values
	cy := int(p.Y / g.cell)
	if cx < 0 {
		cx = 0
	} else if cx >= g.cols {
		cx = g.cols - 1
	}
	if cy < 0 {
		cy = 0
	} else if cy >= g.rows {
		cy = g.rows - 1
	}
	return cx, cy
}

// nearest2 returns the distances to the closest and second closest points.
// Missing points count as infinitely far away.
//
// Rings of cells are searched outward from p's cell. A point in ring r+1 is
// at least r cells away, so once the second best is closer than that the
// answer can no longer change.
func (g *pointGrid) nearest2(p cordate.Vec2) (d1, d2 float64) {
	b1, b2 := math.Inf(1), math.Inf(1)
	cx, cy := g.locate(p)
	maxRing := g.cols
	if g.rows > maxRing {
		maxRing = g.rows
	}
	for r := 0; r <= maxRing; r++ {
		for y := cy - r; y <= cy+r; y++ {
			if y < 0 || y >= g.rows {
				continue
			}
			for x := cx - r; x <= cx+r; x++ {
				if x < 0 || x >= g.cols {
					continue
				}
				// only the border of the ring is new
				if y != cy-r && y != cy+r && x != cx-r && x != cx+r {
					continue
				}
				for _, q := range g.cells[y*g.cols+x] {
					dx, dy := q.X-p.X, q.Y-p.Y
					d := dx*dx + dy*dy
					if d < b1 {
						b1, b2 = d, b1
					} else if d < b2 {
						b2 = d
					}
				}
			}
		}
		reach := float64(r) * g.cell
		if b2 <= reach*reach {
			break
		}
	}
	return math.Sqrt(b1), math.Sqrt(b2)
}

// worley is the distance from p to the closest of pts.
func worley(p cordate.Vec2, pts []cordate.Vec2) float64 {
	best := math.Inf(1)
	for _, q := range pts {
		if d := p.Dist(q); d < best {
			best = d
		}
	}
	return best
}
