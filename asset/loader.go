package asset

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"log"
	"os"

	_ "golang.org/x/image/bmp"

	"github.com/lixenwraith/console-caster/render"
)

// PlaceholderSize is the edge of the blank sprite substituted for unreadable assets
const PlaceholderSize = 8

// ErrEmptyImage is returned for images with no pixels
var ErrEmptyImage = errors.New("image has no pixels")

// Placeholder returns a fresh blank sprite
func Placeholder() *render.Sprite {
	return render.NewSprite(PlaceholderSize, PlaceholderSize, render.BlankCell)
}

// Decode reads a PNG or BMP stream into a quantized sprite
func Decode(r io.Reader) (*render.Sprite, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%s: %w", format, ErrEmptyImage)
	}
	return FromImage(img), nil
}

// Load decodes the image file at path
func Load(path string) (*render.Sprite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return s, nil
}

// LoadOrPlaceholder never fails; unreadable files yield the placeholder
func LoadOrPlaceholder(path string) *render.Sprite {
	s, err := Load(path)
	if err != nil {
		log.Printf("asset: %v, using %dx%d placeholder", err, PlaceholderSize, PlaceholderSize)
		return Placeholder()
	}
	return s
}
