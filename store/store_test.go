package store

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func testStore(t *testing.T, s Store) {
	t.Helper()
	if _, err := s.Get("leaf-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on empty store: got %v, want ErrNotFound", err)
	}
	if err := s.Put("leaf-2", []byte("two")); err != nil {
		t.Fatal(err)
	}
	if err := s.Put("leaf-1", []byte("one")); err != nil {
		t.Fatal(err)
	}
	if err := s.Put("leaf-1", []byte("uno")); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get("leaf-1")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "uno" {
		t.Errorf("Get(leaf-1) = %q, want uno", got)
	}
	keys, err := s.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"leaf-1", "leaf-2"}; !reflect.DeepEqual(keys, want) {
		t.Errorf("Keys() = %v, want %v", keys, want)
	}
	for _, key := range []string{"", "../leaf", "a/b", ".hidden"} {
		if err := s.Put(key, nil); !errors.Is(err, ErrBadKey) {
			t.Errorf("Put(%q) = %v, want ErrBadKey", key, err)
		}
	}
}

func TestMemory(t *testing.T) {
	testStore(t, NewMemory())
}

func TestDir(t *testing.T) {
	dir, err := ioutil.TempDir("", "cordate-store")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	d := NewDir(filepath.Join(dir, "leaves"))
	if keys, err := d.Keys(); err != nil || len(keys) != 0 {
		t.Fatalf("Keys() on missing folder = %v, %v", keys, err)
	}
	testStore(t, d)

	if _, err := os.Stat(filepath.Join(dir, "leaves", "leaf-1.png")); err != nil {
		t.Errorf("value file missing: %v", err)
	}
	// stray files are not keys
	ioutil.WriteFile(filepath.Join(dir, "leaves", ".cordate.123.png"), nil, 0644)
	ioutil.WriteFile(filepath.Join(dir, "leaves", "notes.txt"), nil, 0644)
	keys, _ := d.Keys()
	if len(keys) != 2 {
		t.Errorf("Keys() = %v, want two leaves", keys)
	}
}
