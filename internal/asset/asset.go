// Package asset loads the sprite images used by the desktop frontend.
package asset

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png" // register PNG decoder
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// Name identifies one sprite.
type Name string

const (
	Player     Name = "player"
	Obstacle   Name = "obstacle"
	Projectile Name = "projectile"
	Background Name = "background"
)

// Names lists every sprite the game needs.
var Names = []Name{Player, Obstacle, Projectile, Background}

var files = map[Name]string{
	Player:     "player.png",
	Obstacle:   "obstacle.png",
	Projectile: "bullet.png",
	Background: "background.png",
}

var placeholderColors = map[Name]color.RGBA{
	Player:     {R: 0x4c, G: 0xd9, B: 0x64, A: 0xff},
	Obstacle:   {R: 0xe0, G: 0x4f, B: 0x3a, A: 0xff},
	Projectile: {R: 0xf5, G: 0xd0, B: 0x42, A: 0xff},
	Background: {R: 0x10, G: 0x12, B: 0x1c, A: 0xff},
}

const placeholderSize = 16

// File returns the file name of the sprite inside the asset directory.
func (n Name) File() string {
	return files[n]
}

// ResourceNames returns the sprite names as readiness-gate resources.
func ResourceNames() []string {
	names := make([]string, len(Names))
	for i, n := range Names {
		names[i] = string(n)
	}
	return names
}

// Marker is notified as each sprite becomes available.
type Marker interface {
	MarkReady(name string) error
}

// Set holds loaded sprites. It is safe for concurrent use.
type Set struct {
	mu     sync.RWMutex
	images map[Name]image.Image
}

// Get returns the sprite for n, or nil if it has not loaded yet.
func (s *Set) Get(n Name) image.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.images[n]
}

func (s *Set) put(n Name, img image.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images[n] = img
}

// Load reads every sprite from dir concurrently and marks each one ready on
// gate as soon as it is stored. A missing file (or an empty dir) falls back
// to a solid placeholder. Files that exist but fail to decode are errors;
// the set then holds only the sprites that did load.
func Load(dir string, gate Marker, logger *log.Logger) (*Set, error) {
	set := newSet()
	return set, set.load(dir, gate, logger)
}

// LoadAsync starts Load in the background and returns immediately. The set
// fills in as sprites arrive; the channel delivers Load's error (nil on
// success) once every sprite has been handled.
func LoadAsync(dir string, gate Marker, logger *log.Logger) (*Set, <-chan error) {
	set := newSet()
	errc := make(chan error, 1)
	go func() {
		errc <- set.load(dir, gate, logger)
	}()
	return set, errc
}

func newSet() *Set {
	return &Set{images: make(map[Name]image.Image, len(Names))}
}

func (s *Set) load(dir string, gate Marker, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, name := range Names {
		wg.Add(1)
		go func() {
			defer wg.Done()

			img, err := loadOne(dir, name)
			if errors.Is(err, fs.ErrNotExist) {
				logger.Warn("sprite missing, using placeholder", "sprite", name, "dir", dir)
				img, err = Placeholder(name), nil
			}
			if err == nil {
				s.put(name, img)
				err = gate.MarkReady(string(name))
			}
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				return
			}
			logger.Debug("sprite ready", "sprite", name, "size", img.Bounds().Size())
		}()
	}
	wg.Wait()

	return errors.Join(errs...)
}

func loadOne(dir string, name Name) (image.Image, error) {
	if dir == "" {
		return nil, fs.ErrNotExist
	}
	path := filepath.Join(dir, name.File())
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", path, err)
	}
	return img, nil
}

// Placeholder returns a small solid-color image standing in for sprite n.
func Placeholder(n Name) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, placeholderSize, placeholderSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: placeholderColors[n]}, image.Point{}, draw.Src)
	return img
}
