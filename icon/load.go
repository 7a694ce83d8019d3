package icon

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// Load decodes the image at path into a non-premultiplied RGBA buffer.
// Formats without an alpha channel (JPEG) come back fully opaque.
func Load(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return imaging.Clone(img), nil
}
