package icon

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

type Filter string

const (
	Lanczos    Filter = "lanczos"
	CatmullRom Filter = "catmullrom"
)

// Filters lists the accepted -filter values.
var Filters = []Filter{Lanczos, CatmullRom}

func ParseFilter(name string) (Filter, error) {
	for _, f := range Filters {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown filter %q (use lanczos or catmullrom)", name)
}

// Resize resamples img to size×size. Both filters are area-correct
// convolution kernels; nearest-neighbor is never used.
func Resize(img image.Image, size int, f Filter) *image.NRGBA {
	if f == CatmullRom {
		dst := image.NewNRGBA(image.Rect(0, 0, size, size))
		draw.CatmullRom.Scale(dst, dst.Rect, img, img.Bounds(), draw.Src, nil)
		return dst
	}
	return imaging.Resize(img, size, size, imaging.Lanczos)
}
