package leaf

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scottkirkwood/cordate"
)

func TestExportSVG(t *testing.T) {
	dir, err := ioutil.TempDir("", "leaf")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	lf := &Leaf{
		Raster:   cordate.NewRaster(40, 30),
		Smoothed: square(5, 5, 35, 25),
		Skeleton: []Segment{{cordate.Vec2{X: 5, Y: 15}, cordate.Vec2{X: 35, Y: 15}}},
	}
	ctx := cordate.NewContext(40, 30)
	Export(lf, ctx)

	fname := filepath.Join(dir, "leaf.svg")
	if err := ctx.WriteSVG(fname); err != nil {
		t.Fatal(err)
	}
	data, err := ioutil.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	svg := string(data)
	if n := strings.Count(svg, "<path"); n < 3 {
		t.Errorf("got %d paths, want the fill, the outline and the skeleton:\n%s", n, svg)
	}
}
