// Package leaf turns a seed into a cordate leaf: an L-system skeleton,
// its outline, and a stack of procedural texture layers clipped to it.
package leaf

import (
	"errors"
	"fmt"

	"github.com/scottkirkwood/cordate"
	"github.com/scottkirkwood/cordate/logger"
	"github.com/scottkirkwood/cordate/lsystem"
	"github.com/scottkirkwood/cordate/store"
)

const (
	Width  = 1000 // pixels
	Height = 700  // pixels
)

// ErrEmptyMask means the outline covers no pixel, so no texture point can
// ever be placed.
var ErrEmptyMask = errors.New("leaf outline covers no pixels")

// Origin is where the turtle starts on a canvas of the given size.
func Origin(width, height int) cordate.Vec2 {
	return cordate.Vec2{X: float64(width) / 8, Y: float64(height) / 2}
}

// Key is the store key of the leaf grown from seed.
func Key(seed cordate.Seed) string {
	return seed.GetFilename("leaf-", "")
}

// Leaf is everything a run produces. Coordinates are canvas pixels.
type Leaf struct {
	Seed     cordate.Seed
	Sentence lsystem.Sentence
	Skeleton []Segment
	Outline  []cordate.Vec2
	Smoothed []cordate.Vec2
	Mask     *Mask
	// Raster is decoded from PNG, the bytes a store keeps, so a stored
	// leaf and a fresh one are identical.
	Raster *cordate.Raster
	PNG    []byte
}

// Generator runs the pipeline. The zero value works: no progress reports,
// no logging, no store.
type Generator struct {
	// Progress is called with 0, 10, 20, 25, 50, 70, 80, 90 and finally 100.
	Progress func(percent int)
	Log      *logger.Logger
	// Store, if set, is checked before generating and filled afterwards.
	Store store.Store
}

// Generate returns the raster for seed, decoding a stored one if the store
// has it.
func (g *Generator) Generate(seed cordate.Seed) (*cordate.Raster, error) {
	log := g.Log.WithPrefix(Key(seed))
	if g.Store != nil {
		r, err := g.load(seed)
		if err == nil {
			log.Debug("loaded from store")
			g.progress(100)
			return r, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			log.Warn("ignoring stored leaf: %v", err)
		}
	}
	lf, err := g.Build(seed)
	if err != nil {
		return nil, err
	}
	if g.Store != nil {
		if err := g.save(lf); err != nil {
			log.Warn("could not store leaf: %v", err)
		}
	}
	return lf.Raster, nil
}

// Build always runs the whole pipeline. Every random draw comes from one
// stream seeded here, so the order of the steps below is part of the result.
func (g *Generator) Build(seed cordate.Seed) (*Leaf, error) {
	log := g.Log.WithPrefix(Key(seed))
	rng := cordate.NewRand(seed)
	origin := Origin(Width, Height)
	lf := &Leaf{Seed: seed}

	g.progress(0)
	done := log.Step("grammar")
	sentence, stats := lsystem.Expand(rng)
	lf.Sentence = sentence
	done()
	log.Debug("sentence: %d bytes, %d A and %d B rewrites", len(sentence), stats.ARewrites, stats.BRewrites)

	g.progress(10)
	done = log.Step("shape pass")
	walk, err := lsystem.ShapePass(sentence, rng, func(a, b cordate.Vec2) {
		lf.Skeleton = append(lf.Skeleton, Segment{a.Add(origin), b.Add(origin)})
	})
	if err != nil {
		return nil, fmt.Errorf("shape pass: %w", err)
	}
	lf.Outline = Translate(Reconstruct(walk.Left, walk.Right, walk.End), origin)
	done()
	log.Debug("outline: %d left, %d right samples", len(walk.Left), len(walk.Right))

	g.progress(20)
	done = log.Step("mask")
	lf.Smoothed = Smooth(lf.Outline, Detail)
	lf.Mask = Rasterize(lf.Smoothed, Width, Height)
	done()
	if lf.Mask.Count() == 0 {
		return nil, fmt.Errorf("seed %s: %w", seed, ErrEmptyMask)
	}
	log.Debug("mask: %d pixels inside", lf.Mask.Count())

	done = log.Step("gradient and veins")
	gradient := Gradient(lf.Mask)
	var veins []Segment
	lsystem.VeinPass(sentence, rng, func(a, b cordate.Vec2) {
		veins = append(veins, Segment{a.Add(origin), b.Add(origin)})
	})
	veinLayer := Veins(veins, lf.Mask)
	pts := FeaturePoints(rng, lf.Mask)
	done()

	g.progress(25)
	done = log.Step("cells")
	cells := Cells(pts, lf.Mask)
	done()

	g.progress(50)
	done = log.Step("green dots")
	green := GreenDots(rng, lf.Mask)
	done()

	g.progress(70)
	done = log.Step("red dots")
	red := RedDots(rng, lf.Mask)
	done()

	g.progress(80)
	stem := Stem(Width, Height)

	g.progress(90)
	composed := Compose(gradient, veinLayer, cells, green, red, stem)
	if lf.PNG, err = cordate.EncodePNG(composed); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	if lf.Raster, err = cordate.DecodePNG(lf.PNG); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	g.progress(100)
	return lf, nil
}

func (g *Generator) progress(percent int) {
	g.Log.Progress(percent)
	if g.Progress != nil {
		g.Progress(percent)
	}
}

func (g *Generator) load(seed cordate.Seed) (*cordate.Raster, error) {
	data, err := g.Store.Get(Key(seed))
	if err != nil {
		return nil, err
	}
	return cordate.DecodePNG(data)
}

func (g *Generator) save(lf *Leaf) error {
	return g.Store.Put(Key(lf.Seed), lf.PNG)
}
