package gifmaker

import (
	"image"
)

func cloneImage(src *image.Paletted) *image.Paletted {
	clone := *src
	clone.Pix = make([]uint8, len(src.Pix))
	copy(clone.Pix, src.Pix)
	return &clone
}

func outline(img *image.Paletted, r image.Rectangle, index uint8) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetColorIndex(x, r.Min.Y, index)
		img.SetColorIndex(x, r.Max.Y-1, index)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetColorIndex(r.Min.X, y, index)
		img.SetColorIndex(r.Max.X-1, y, index)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
