package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var ErrNoImageSource = errors.New("image cache has no file system")

// ImageCache decodes PNG images from an injected file system on first use.
// Keys are file names without extension under the cache directory. Failed
// lookups are remembered so a missing sprite is only reported once.
type ImageCache struct {
	fsys    fs.FS
	dir     string
	images  map[string]*ebiten.Image
	missing map[string]error
}

func NewImageCache(fsys fs.FS, dir string) *ImageCache {
	return &ImageCache{
		fsys:    fsys,
		dir:     dir,
		images:  make(map[string]*ebiten.Image),
		missing: make(map[string]error),
	}
}

// Path returns the file path a key resolves to.
func (c *ImageCache) Path(key string) string {
	return path.Join(c.dir, key+".png")
}

// Get returns the image for key, loading it on first use.
func (c *ImageCache) Get(key string) (*ebiten.Image, error) {
	if img, ok := c.images[key]; ok {
		return img, nil
	}
	if err, ok := c.missing[key]; ok {
		return nil, err
	}

	img, err := c.load(key)
	if err != nil {
		log.Printf("Warning: %v", err)
		c.missing[key] = err
		return nil, err
	}
	c.images[key] = img
	return img, nil
}

func (c *ImageCache) load(key string) (*ebiten.Image, error) {
	if c.fsys == nil {
		return nil, fmt.Errorf("image %s: %w", key, ErrNoImageSource)
	}
	imgBytes, err := fs.ReadFile(c.fsys, c.Path(key))
	if err != nil {
		return nil, fmt.Errorf("image %s: %w", key, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("image %s: decode: %w", key, err)
	}
	return img, nil
}
