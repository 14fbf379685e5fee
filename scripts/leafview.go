// This program shows the leaves in a store folder and picks up new ones as
// they are written. Press g to grow another leaf, arrows to browse, q to quit.
// Extra image files on the command line are shown after the leaves.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/scottkirkwood/cordate"
	"github.com/scottkirkwood/cordate/leaf"
	"github.com/scottkirkwood/cordate/logger"
	"github.com/scottkirkwood/cordate/store"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

var (
	storeFlag = flag.String("store", "leaves", "Folder of generated leaves")
)

// newImage is sent to the window when a file shows up in the store.
type newImage struct {
	name string
	img  image.Image
}

func main() {
	flag.Parse()
	log := logger.New(os.Stdout, logger.LevelInfo, "leafview")
	dir := store.NewDir(*storeFlag)
	if err := cordate.MaybeCreateDir(dir.Path); err != nil {
		log.Error("Unable to create %s: %v", dir.Path, err)
		return
	}

	keys, err := dir.Keys()
	if err != nil {
		log.Error("Unable to list %s: %v", dir.Path, err)
		return
	}
	files := make([]string, 0, len(keys)+flag.NArg())
	for _, k := range keys {
		files = append(files, dir.Filename(k))
	}
	files = append(files, flag.Args()...)
	names, imgs := cordate.DecodeImages(files)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Error("Failed to create watcher: %v", err)
		return
	}
	defer watcher.Close()
	if err := watcher.Add(dir.Path); err != nil {
		log.Error("Problem adding folder watcher: %v", err)
		return
	}
	log.Info("Monitoring folder %q, %d leaves", dir.Path, len(keys))

	driver.Main(func(s screen.Screen) {
		w, err := s.NewWindow(&screen.NewWindowOptions{
			Width:  leaf.Width,
			Height: leaf.Height,
		})
		if err != nil {
			log.Error("%v", err)
			return
		}
		defer w.Release()

		go watchForEvents(watcher, dir, w, log)

		var (
			sz size.Event
			b  screen.Buffer
			i  = len(imgs) - 1 // index of image to display
		)
		defer func() {
			if b != nil {
				b.Release()
			}
		}()

		for {
			switch e := w.NextEvent().(type) {
			case key.Event:
				if e.Direction != key.DirPress {
					continue
				}
				switch e.Code {
				case key.CodeEscape, key.CodeQ:
					return
				case key.CodeRightArrow:
					if len(imgs) > 0 {
						i = (i + 1) % len(imgs)
					}
				case key.CodeLeftArrow:
					if len(imgs) > 0 {
						i = (i + len(imgs) - 1) % len(imgs)
					}
				case key.CodeG:
					go grow(dir, log)
					continue
				default:
					continue
				}
				w.Send(paint.Event{})

			case newImage:
				names = append(names, e.name)
				imgs = append(imgs, e.img)
				i = len(imgs) - 1
				w.Send(paint.Event{})

			case paint.Event:
				w.Fill(sz.Bounds(), color.Black, draw.Src)
				if i < 0 || i >= len(imgs) {
					w.Publish()
					continue
				}
				img := imgs[i]
				if b == nil || b.Size() != img.Bounds().Size() {
					if b != nil {
						b.Release()
					}
					if b, err = s.NewBuffer(img.Bounds().Size()); err != nil {
						log.Error("%v", err)
						return
					}
				}
				draw.Draw(b.RGBA(), b.Bounds(), img, img.Bounds().Min, draw.Src)
				w.Upload(cordate.VpCenter(img, sz.WidthPx, sz.HeightPx), b, b.Bounds())
				w.Publish()
				log.Debug("showing %s", names[i])

			case size.Event:
				sz = e

			case lifecycle.Event:
				if e.To == lifecycle.StageDead {
					return
				}

			case error:
				log.Error("Screen error: %v", e)
				return
			}
		}
	})
}

// watchForEvents decodes every leaf renamed into the store and hands it to w.
func watchForEvents(watcher *fsnotify.Watcher, dir *store.Dir, w screen.Window, log *logger.Logger) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Create != fsnotify.Create || !isLeaf(event.Name, dir.Ext) {
				continue
			}
			names, imgs := cordate.DecodeImages([]string{event.Name})
			if len(imgs) == 1 {
				w.Send(newImage{name: names[0], img: imgs[0]})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Warn("watcher: %v", err)
		}
	}
}

// isLeaf skips the temp files written next to the final one.
func isLeaf(fname, ext string) bool {
	base := filepath.Base(fname)
	return strings.HasPrefix(base, "leaf-") && strings.HasSuffix(base, ext)
}

func grow(dir *store.Dir, log *logger.Logger) {
	seed := cordate.SeedFromInt(time.Now().UnixNano() % 1e9)
	g := &leaf.Generator{Store: dir, Log: log.WithPrefix("grow")}
	start := time.Now()
	if _, err := g.Generate(seed); err != nil {
		log.Error("Unable to grow leaf %s: %v", seed, err)
		return
	}
	fmt.Printf("Grew %s in %v\n", leaf.Key(seed), time.Since(start).Round(time.Millisecond))
}
