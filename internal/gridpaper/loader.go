package gridpaper

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/anthonynsimon/bild/imgio"
)

// ImageCache provides thread-safe caching of decoded grid images keyed by
// path. Entries must be evicted when the file at a path is rewritten.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates an empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load returns the decoded image at path, reading it from disk on first use.
// Different spellings of the same path are cached separately.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes the image cached for path, if any.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// ImageInfo describes a grid PNG on disk.
type ImageInfo struct {
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	Format        string  `json:"format"`
	HasAlpha      bool    `json:"has_alpha"`
	DPI           float64 `json:"dpi,omitempty"` // 0 when the file records no density
	FileSizeBytes int64   `json:"file_size_bytes"`
}

// Inspect loads the PNG at path through cache and reports its dimensions,
// alpha channel and the DPI recorded in its pHYs chunk.
func Inspect(cache *ImageCache, path string) (*ImageInfo, error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".png" {
		return nil, fmt.Errorf("cannot inspect %q: only PNG files carry pixel data", ext)
	}

	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	dpi, _, err := ReadPNGDPI(f)
	if err != nil {
		return nil, err
	}

	// The PNG decoder returns NRGBA only for truecolor-with-alpha files,
	// which the encoder writes only when the canvas is not opaque.
	hasAlpha := false
	switch img.(type) {
	case *image.NRGBA, *image.NRGBA64:
		hasAlpha = true
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        "png",
		HasAlpha:      hasAlpha,
		DPI:           dpi,
		FileSizeBytes: stat.Size(),
	}, nil
}
