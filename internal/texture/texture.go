// Package texture loads bitmap images for the textured viewer. A missing
// or malformed file is a recoverable condition: the caller logs the error
// and draws the body in its flat catalog color instead.
package texture

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Image is a decoded texture: dimensions plus tightly packed RGBA pixels.
// Pixels implements image.Image, so it can be handed to the renderer's
// upload path directly.
type Image struct {
	Width  int
	Height int
	Pixels *image.RGBA
}

// Load reads and decodes the bitmap at path. Only BMP files are
// accepted; anything else is an error.
func Load(path string) (*Image, error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".bmp" {
		return nil, fmt.Errorf("texture %s: unsupported format %q", path, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", path, err)
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture %s: decode: %w", path, err)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)

	return &Image{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: rgba,
	}, nil
}
