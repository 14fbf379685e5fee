// Grows one cordate leaf and saves it.
//
//	go run ./leafgen -seed oak -svg
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/scottkirkwood/cordate"
	"github.com/scottkirkwood/cordate/leaf"
	"github.com/scottkirkwood/cordate/logger"
	"github.com/scottkirkwood/cordate/store"
)

var (
	seedFlag    = flag.String("seed", "", "Seed text, a number or any word (default: time based)")
	storeFlag   = flag.String("store", "leaves", "Folder of generated leaves, reused when the seed was grown before")
	outFlag     = flag.String("out", "samples", "Folder to write the picture to")
	svgFlag     = flag.Bool("svg", false, "Also write an SVG with the outline and skeleton")
	pdfFlag     = flag.Bool("pdf", false, "Also write a PDF with the outline and skeleton")
	verboseFlag = flag.Bool("v", false, "Log every pipeline step")
)

func main() {
	flag.Parse()

	level := logger.LevelInfo
	if *verboseFlag {
		level = logger.LevelDebug
	}
	log := logger.New(os.Stdout, level, "leafgen")

	seed := cordate.NewSeed()
	if *seedFlag != "" {
		var err error
		if seed, err = cordate.ParseSeed(*seedFlag); err != nil {
			log.Error("Unable to set the seed: %v", err)
			os.Exit(2)
		}
	}
	log.Info("seed %s", seed)

	g := &leaf.Generator{Log: log}
	if *storeFlag != "" {
		g.Store = store.NewDir(*storeFlag)
	}
	r, err := g.Generate(seed)
	if err != nil {
		log.Error("Unable to grow leaf: %v", err)
		os.Exit(1)
	}

	fname := filepath.Join(*outFlag, "cordate-"+leaf.Key(seed)+".png")
	if err := cordate.SavePNG(fname, r.Image()); err != nil {
		log.Error("Unable write image: %v", err)
		os.Exit(1)
	}
	fmt.Printf("Saved to %s\n", fname)

	if !*svgFlag && !*pdfFlag {
		return
	}
	// vector output needs the outline, so the pipeline runs again
	lf, err := (&leaf.Generator{Log: log.WithPrefix("vector")}).Build(seed)
	if err != nil {
		log.Error("Unable to grow leaf: %v", err)
		os.Exit(1)
	}
	ctx := cordate.NewContext(leaf.Width, leaf.Height)
	leaf.Export(lf, ctx)
	if err := writeVector(seed, ctx, filepath.Join(*outFlag, "cordate-leaf-"), *svgFlag, *pdfFlag); err != nil {
		os.Exit(1)
	}
}

// writeVector saves ctx as SVG and/or PDF, returning the first failure.
func writeVector(seed cordate.Seed, ctx *cordate.Context, prefix string, svg, pdf bool) error {
	var first error
	if svg {
		first = seed.SafeWrite(ctx, prefix, ".svg")
	}
	if pdf {
		if err := seed.SafeWrite(ctx, prefix, ".pdf"); first == nil {
			first = err
		}
	}
	return first
}
