// Package store keeps finished leaves, encoded, under keys like "leaf-42".
package store

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/scottkirkwood/cordate"
)

var (
	// ErrNotFound is returned by Get for unknown keys.
	ErrNotFound = errors.New("not found")
	// ErrBadKey is returned for keys that can't name a file.
	ErrBadKey = errors.New("bad key")
)

// Store is a key-value store of encoded images.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, data []byte) error
	Keys() ([]string, error)
}

// Dir stores every value as one file in a folder.
type Dir struct {
	Path string
	Ext  string // file extension, ".png" by default
}

// NewDir returns a PNG store in path. The folder is created on first Put.
func NewDir(path string) *Dir {
	return &Dir{Path: path, Ext: ".png"}
}

// Filename is the file that holds key.
func (d *Dir) Filename(key string) string {
	return filepath.Join(d.Path, key+d.Ext)
}

func (d *Dir) Get(key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	data, err := ioutil.ReadFile(d.Filename(key))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	return data, err
}

func (d *Dir) Put(key string, data []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	return cordate.WriteAtomic(d.Filename(key), func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// Keys lists the stored keys in sorted order. A missing folder is empty.
func (d *Dir) Keys() ([]string, error) {
	files, err := ioutil.ReadDir(d.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var keys []string
	for _, f := range files {
		name := f.Name()
		// temp files from an unfinished write start with a dot
		if f.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, d.Ext) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, d.Ext))
	}
	sort.Strings(keys)
	return keys, nil
}

// Memory is a map backed Store, safe for concurrent use.
type Memory struct {
	mu sync.Mutex
	m  map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string][]byte)}
}

func (s *Memory) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.m[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	return append([]byte(nil), data...), nil
}

func (s *Memory) Put(key string, data []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = append([]byte(nil), data...)
	return nil
}

func (s *Memory) Keys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func checkKey(key string) error {
	if key == "" || strings.HasPrefix(key, ".") || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("%w: %q", ErrBadKey, key)
	}
	return nil
}
