package assets

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"
)

type countingFS struct {
	fs.FS
	opens int
}

func (c *countingFS) Open(name string) (fs.File, error) {
	c.opens++
	return c.FS.Open(name)
}

func TestImageCacheRemembersMissingImages(t *testing.T) {
	fsys := &countingFS{FS: fstest.MapFS{}}
	cache := NewImageCache(fsys, "images/bosses")

	_, err := cache.Get("warden")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
	opens := fsys.opens

	if _, err := cache.Get("warden"); err == nil {
		t.Fatalf("second lookup succeeded")
	}
	if fsys.opens != opens {
		t.Errorf("missing image was read again")
	}
}

func TestImageCacheRejectsUndecodableImages(t *testing.T) {
	cache := NewImageCache(fstest.MapFS{
		"images/bosses/sentinel.png": {Data: []byte("not a png")},
	}, "images/bosses")

	if _, err := cache.Get("sentinel"); err == nil {
		t.Fatalf("expected a decode error")
	}
}

func TestImageCacheWithoutFileSystem(t *testing.T) {
	cache := NewImageCache(nil, "")
	if _, err := cache.Get("warden"); !errors.Is(err, ErrNoImageSource) {
		t.Errorf("expected ErrNoImageSource, got %v", err)
	}
}

func TestImageCachePath(t *testing.T) {
	if got := NewImageCache(nil, "images/bosses").Path("warden"); got != "images/bosses/warden.png" {
		t.Errorf("Path = %q", got)
	}
}
