package icon

import (
	"image"

	"github.com/disintegration/imaging"
)

// Square crops img to a min(W,H) square taken from the center. Offsets are
// truncated, so an odd leftover puts the extra pixel on the right/bottom.
func Square(img image.Image) *image.NRGBA {
	b := img.Bounds()
	s := min(b.Dx(), b.Dy())
	left := b.Min.X + (b.Dx()-s)/2
	top := b.Min.Y + (b.Dy()-s)/2
	return imaging.Crop(img, image.Rect(left, top, left+s, top+s))
}
