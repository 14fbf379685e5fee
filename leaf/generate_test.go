package leaf

import (
	"errors"
	"sync"
	"testing"

	"github.com/scottkirkwood/cordate"
	"github.com/scottkirkwood/cordate/store"
)

var (
	cacheMu sync.Mutex
	cache   = map[string]*Leaf{}
)

// build runs the full pipeline once per seed per test binary.
func build(t *testing.T, text string) *Leaf {
	t.Helper()
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if lf, ok := cache[text]; ok {
		return lf
	}
	seed, err := cordate.ParseSeed(text)
	if err != nil {
		t.Fatal(err)
	}
	var g Generator
	lf, err := g.Build(seed)
	if err != nil {
		t.Fatalf("Build(%q): %v", text, err)
	}
	cache[text] = lf
	return lf
}

func TestBuildDeterministic(t *testing.T) {
	if testing.Short() {
		t.Skip("full pipeline")
	}
	a := build(t, "1")
	seed, _ := cordate.ParseSeed("1")
	var g Generator
	b, err := g.Build(seed)
	if err != nil {
		t.Fatal(err)
	}
	if a.Sentence != b.Sentence {
		t.Error("sentences differ")
	}
	if !a.Raster.Equal(b.Raster) {
		t.Error("same seed gave different rasters")
	}
}

func TestBuildSeedSensitive(t *testing.T) {
	if testing.Short() {
		t.Skip("full pipeline")
	}
	a, b := build(t, "1"), build(t, "2")
	if a.Raster.Equal(b.Raster) {
		t.Error("seeds 1 and 2 gave the same raster")
	}
}

func TestBuildShape(t *testing.T) {
	if testing.Short() {
		t.Skip("full pipeline")
	}
	lf := build(t, "1")
	if w, h := lf.Raster.Width(), lf.Raster.Height(); w != Width || h != Height {
		t.Errorf("raster is %dx%d, want %dx%d", w, h, Width, Height)
	}
	if len(lf.Outline) < 3 {
		t.Fatalf("outline has %d points", len(lf.Outline))
	}
	if len(lf.Smoothed) <= len(lf.Outline) {
		t.Errorf("smoothed outline (%d) is not denser than the outline (%d)", len(lf.Smoothed), len(lf.Outline))
	}
	if lf.Mask.Count() == 0 {
		t.Error("empty mask")
	}
	if len(lf.Skeleton) == 0 {
		t.Error("no skeleton segments recorded")
	}
	// the outline starts at the stem tip and its shifted copy sits in the middle
	tip := lf.Outline[0]
	found := false
	for _, p := range lf.Outline[1:] {
		if p.Dist(tip.Add(tipOffset)) < 1e-9 {
			found = true
		}
	}
	if !found {
		t.Error("outline does not contain the shifted stem tip")
	}
}

func TestProgress(t *testing.T) {
	if testing.Short() {
		t.Skip("full pipeline")
	}
	var got []int
	g := Generator{Progress: func(p int) { got = append(got, p) }}
	seed, _ := cordate.ParseSeed("a")
	if _, err := g.Generate(seed); err != nil {
		t.Fatal(err)
	}
	want := []int{0, 10, 20, 25, 50, 70, 80, 90, 100}
	if len(got) != len(want) {
		t.Fatalf("progress = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("progress = %v, want %v", got, want)
			break
		}
	}
}

func TestGenerateUsesStore(t *testing.T) {
	if testing.Short() {
		t.Skip("full pipeline")
	}
	mem := store.NewMemory()
	seed, _ := cordate.ParseSeed("3")
	g := Generator{Store: mem}
	fresh, err := g.Generate(seed)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := mem.Get(Key(seed)); err != nil {
		t.Fatalf("leaf was not stored: %v", err)
	}

	var got []int
	g.Progress = func(p int) { got = append(got, p) }
	stored, err := g.Generate(seed)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != 100 {
		t.Errorf("stored leaf reported progress %v, want [100]", got)
	}
	if !stored.Equal(fresh) {
		t.Error("stored leaf differs from the freshly grown one")
	}
	// and both match a run without any store
	plain, err := (&Generator{}).Generate(seed)
	if err != nil {
		t.Fatal(err)
	}
	if !plain.Equal(fresh) {
		t.Error("leaf grown without a store differs from the stored one")
	}
}

func TestLoad(t *testing.T) {
	mem := store.NewMemory()
	seed := cordate.SeedFromInt(5)
	mem.Put(Key(seed), []byte("not a png"))
	g := Generator{Store: mem}
	if _, err := g.load(seed); err == nil {
		t.Fatal("decoding garbage should fail")
	}
	if _, err := g.load(cordate.SeedFromInt(6)); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("load of a missing key = %v, want ErrNotFound", err)
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		seed, want string
	}{
		{"42", "leaf-42"},
		{"oak", "leaf-oak"},
		{`a/b\c`, "leaf-a%2Fb%5Cc"},
	}
	mem := store.NewMemory()
	for _, tt := range tests {
		seed, err := cordate.ParseSeed(tt.seed)
		if err != nil {
			t.Fatal(err)
		}
		key := Key(seed)
		if key != tt.want {
			t.Errorf("Key(%q) = %q, want %q", tt.seed, key, tt.want)
		}
		if err := mem.Put(key, []byte("x")); err != nil {
			t.Errorf("Key(%q) is not storable: %v", tt.seed, err)
		}
	}
}
