// Package underlay loads the optional background image composited beneath
// the drawing surface: a decoded image file, or a fresh desktop screenshot
// taken through the Freedesktop screenshot portal.
package underlay

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// FromFile decodes the PNG or JPEG at path.
func FromFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open underlay: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode underlay %s: %w", path, err)
	}
	return img, nil
}
