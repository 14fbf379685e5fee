package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/scottkirkwood/cordate"
)

func TestWriteVector(t *testing.T) {
	dir, err := ioutil.TempDir("", "leafgen")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	seed := cordate.SeedFromInt(7)
	ctx := cordate.NewContext(20, 20)
	ctx.MoveTo(1, 1)
	ctx.LineTo(19, 19)
	ctx.Stroke()

	prefix := filepath.Join(dir, "cordate-leaf-")
	if err := writeVector(seed, ctx, prefix, true, false); err != nil {
		t.Fatalf("writeVector: %v", err)
	}
	if _, err := os.Stat(prefix + "7.svg"); err != nil {
		t.Errorf("svg not written: %v", err)
	}

	// a regular file where the output folder should be
	blocker := filepath.Join(dir, "blocker")
	if err := ioutil.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(blocker, "cordate-leaf-")
	for _, tt := range []struct{ svg, pdf bool }{{true, false}, {false, true}, {true, true}} {
		if err := writeVector(seed, ctx, bad, tt.svg, tt.pdf); err == nil {
			t.Errorf("writeVector(svg=%v, pdf=%v) into a file path succeeded", tt.svg, tt.pdf)
		}
	}
}
