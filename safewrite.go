package cordate

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"io/ioutil"
	"os"
	"path"
)

// SafeWrite noisily saves to tmp file and then moves
func (s Seed) SafeWrite(ctx *Context, prefix, ext string) error {
	fname := s.GetFilename(prefix, ext)
	if err := safeWrite(ctx, fname); err != nil {
		fmt.Printf("Problem saving %s: %v\n", fname, err)
		return err
	}
	fmt.Printf("Saved to %s\n", fname)
	return nil
}

// SavePNG writes img losslessly to fname via a temp file.
func SavePNG(fname string, img image.Image) error {
	return WriteAtomic(fname, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

// WriteAtomic creates fname's folder, writes to a temp file beside fname and
// renames it into place.
func WriteAtomic(fname string, write func(io.Writer) error) error {
	dir := path.Dir(fname)
	if err := MaybeCreateDir(dir); err != nil {
		return err
	}
	tmpfile, err := ioutil.TempFile(dir, ".cordate.*"+path.Ext(fname))
	if err != nil {
		return err
	}
	if err := write(tmpfile); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return err
	}
	if err := tmpfile.Close(); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}
	// Note: the temp file is in the same folder so rename stays on one drive
	if err := os.Rename(tmpfile.Name(), fname); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}
	return os.Chmod(fname, 0664)
}

// MaybeCreateDir creates dir (and parents) if it doesn't exist yet.
func MaybeCreateDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0775)
}

// safeWrite picks the canvas writer from the extension
func safeWrite(ctx *Context, fname string) error {
	if err := MaybeCreateDir(path.Dir(fname)); err != nil {
		return err
	}

	ext := path.Ext(fname)
	var writeFile func(string) error
	switch ext {
	case ".png":
		writeFile = ctx.WritePNG
	case ".svg":
		writeFile = ctx.WriteSVG
	case ".pdf":
		writeFile = ctx.WritePDF
	default:
		return fmt.Errorf("unsupported file format %s", ext)
	}
	tmpfile, err := ioutil.TempFile(path.Dir(fname), ".cordate.*"+ext)
	if err != nil {
		return err
	}
	tmpfile.Close()
	if err := writeFile(tmpfile.Name()); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}
	if err := os.Rename(tmpfile.Name(), fname); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}
	return os.Chmod(fname, 0664)
}
