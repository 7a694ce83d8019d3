package icon

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Edge selects how the round mask treats pixels crossed by the circle.
type Edge int

const (
	// MaskHard keeps a pixel when its center lies inside the circle.
	MaskHard Edge = iota
	// MaskSmooth uses the pixel's coverage by the circle as its alpha.
	MaskSmooth
)

func (e Edge) String() string {
	if e == MaskSmooth {
		return "smooth"
	}
	return "hard"
}

// bezier control distance for a quarter circle of radius 1
const kappa = 0.5522847498

// Round returns a size×size copy of img masked to the inscribed circle.
// Everything outside the circle is fully transparent.
func Round(img image.Image, size int, edge Edge) *image.NRGBA {
	var mask *image.Alpha
	if edge == MaskSmooth {
		mask = smoothMask(size)
	} else {
		mask = hardMask(size)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.DrawMask(dst, dst.Rect, img, img.Bounds().Min, mask, image.Point{}, draw.Src)
	return dst
}

func hardMask(size int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	for y := range size {
		for x := range size {
			if math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c) <= c {
				m.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	return m
}

func smoothMask(size int) *image.Alpha {
	c := float32(size) / 2
	k := c * kappa

	var z vector.Rasterizer
	z.Reset(size, size)
	z.MoveTo(c+c, c)
	z.CubeTo(c+c, c+k, c+k, c+c, c, c+c)
	z.CubeTo(c-k, c+c, 0, c+k, 0, c)
	z.CubeTo(0, c-k, c-k, 0, c, 0)
	z.CubeTo(c+k, 0, c+c, c-k, c+c, c)
	z.ClosePath()

	m := image.NewAlpha(image.Rect(0, 0, size, size))
	z.Draw(m, m.Rect, image.Opaque, image.Point{})
	return m
}
