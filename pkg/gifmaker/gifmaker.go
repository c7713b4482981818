package gifmaker

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"math"

	"github.com/ArminGh02/coordset/pkg/collection"
	"github.com/ArminGh02/coordset/pkg/util/coord"
	"github.com/pkg/errors"
)

// MaxCells bounds the viewport on each axis.
const MaxCells = 256

const (
	defaultCellLength = 12
	defaultDelay      = 40
)

var (
	ErrNoFrames         = errors.New("no frames to render")
	ErrViewportTooLarge = errors.New("viewport too large")
)

// Palette indexes.
const (
	background uint8 = iota
	gridLine
	filled
	origin
)

var Palette = color.Palette{
	background: color.RGBA{0xff, 0xff, 0xff, 0xff},
	gridLine:   color.RGBA{0xd0, 0xd0, 0xd0, 0xff},
	filled:     color.RGBA{0x20, 0x20, 0x20, 0xff},
	origin:     color.RGBA{0xe0, 0x30, 0x30, 0xff},
}

type Options struct {
	// CellLength is the side of one cell in pixels, grid line included.
	CellLength int
	// Margin is the number of blank cells around the drawn area.
	Margin int
	// Delay between frames in 100ths of a second.
	Delay int
	// Origin, if set and inside the viewport, is outlined.
	Origin *coord.Coord
}

func (opts Options) withDefaults() Options {
	if opts.CellLength < 3 {
		opts.CellLength = defaultCellLength
	}
	if opts.Margin < 0 {
		opts.Margin = 0
	}
	if opts.Delay <= 0 {
		opts.Delay = defaultDelay
	}
	return opts
}

// Viewport is a block of Cols x Rows cells whose top left cell is Min.
type Viewport struct {
	Min        coord.Coord
	Cols, Rows int
}

// valid reports whether v has a size in [1, MaxCells] on both axes and its
// last cell is representable.
func (v Viewport) valid() bool {
	return v.Cols > 0 && v.Cols <= MaxCells && v.Rows > 0 && v.Rows <= MaxCells &&
		v.Min.X <= math.MaxInt-(v.Cols-1) && v.Min.Y <= math.MaxInt-(v.Rows-1)
}

func (v Viewport) contains(c coord.Coord) bool {
	return c.X >= v.Min.X && distance(v.Min.X, c.X) < uint(v.Cols) &&
		c.Y >= v.Min.Y && distance(v.Min.Y, c.Y) < uint(v.Rows)
}

// ViewportOf returns the smallest viewport covering every frame, grown by
// margin cells on each side where such cells exist. When all frames are empty
// the viewport is the single cell at at (or 0:0). It fails with
// ErrViewportTooLarge when the result would exceed MaxCells on either axis.
func ViewportOf(frames []*collection.Collection, margin int, at *coord.Coord) (Viewport, error) {
	var (
		lo, hi coord.Coord
		found  bool
	)
	for _, frame := range frames {
		flo, fhi, ok := frame.Bounds()
		if !ok {
			continue
		}
		if !found {
			lo, hi, found = flo, fhi, true
			continue
		}
		lo.X, lo.Y = minInt(lo.X, flo.X), minInt(lo.Y, flo.Y)
		hi.X, hi.Y = maxInt(hi.X, fhi.X), maxInt(hi.Y, fhi.Y)
	}
	if !found {
		lo = coord.New(0, 0)
		if at != nil {
			lo = *at
		}
		hi = lo
	}

	if margin < 0 {
		margin = 0
	}
	minX, cols, okX := span(lo.X, hi.X, margin)
	minY, rows, okY := span(lo.Y, hi.Y, margin)
	if !okX || !okY {
		return Viewport{}, errors.Wrapf(ErrViewportTooLarge, "cells %s..%s with margin %d, at most %d per side",
			lo.ID(), hi.ID(), margin, MaxCells)
	}
	return Viewport{Min: coord.New(minX, minY), Cols: cols, Rows: rows}, nil
}

// span grows the inclusive range [lo, hi] by margin on each side, clipped to
// the int range, and reports false if it holds more than MaxCells cells.
func span(lo, hi, margin int) (first, n int, ok bool) {
	if margin > MaxCells {
		return 0, 0, false
	}
	width := distance(lo, hi)
	if width >= MaxCells {
		return 0, 0, false
	}

	left, right := margin, margin
	if lo < math.MinInt+margin {
		left = int(distance(math.MinInt, lo))
	}
	if hi > math.MaxInt-margin {
		right = int(distance(hi, math.MaxInt))
	}

	n = int(width) + 1 + left + right
	if n > MaxCells {
		return 0, 0, false
	}
	return lo - left, n, true
}

// distance returns b-a for a <= b without overflowing.
func distance(a, b int) uint {
	return uint(b) - uint(a)
}

// Make writes an animated GIF with one frame per collection.
func Make(w io.Writer, frames []*collection.Collection, opts Options) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	opts = opts.withDefaults()

	viewport, err := ViewportOf(frames, opts.Margin, opts.Origin)
	if err != nil {
		return err
	}

	grid := gridImage(viewport, opts)
	images := make([]*image.Paletted, 0, len(frames))
	delays := make([]int, 0, len(frames))
	for _, frame := range frames {
		images = append(images, drawFrame(cloneImage(grid), frame, viewport, opts))
		delays = append(delays, opts.Delay)
	}

	err = gif.EncodeAll(w, &gif.GIF{
		Image: images,
		Delay: delays,
	})
	return errors.Wrap(err, "encoding gif")
}

// Frame renders c alone on viewport.
func Frame(c *collection.Collection, viewport Viewport, opts Options) (*image.Paletted, error) {
	if !viewport.valid() {
		return nil, errors.Wrapf(ErrViewportTooLarge, "%dx%d cells at %s, want 1 to %d per side",
			viewport.Cols, viewport.Rows, viewport.Min.ID(), MaxCells)
	}
	opts = opts.withDefaults()
	return drawFrame(gridImage(viewport, opts), c, viewport, opts), nil
}

func drawFrame(res *image.Paletted, c *collection.Collection, viewport Viewport, opts Options) *image.Paletted {
	for _, p := range c.Coordinates() {
		if !viewport.contains(p) {
			continue
		}
		x, y := pixelOf(p, viewport, opts)
		draw.Draw(
			res,
			image.Rect(x+1, y+1, x+opts.CellLength, y+opts.CellLength),
			image.NewUniform(Palette[filled]),
			image.Point{},
			draw.Src,
		)
	}
	return res
}

func gridImage(viewport Viewport, opts Options) *image.Paletted {
	width := viewport.Cols*opts.CellLength + 1
	height := viewport.Rows*opts.CellLength + 1
	res := image.NewPaletted(image.Rect(0, 0, width, height), Palette)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x%opts.CellLength == 0 || y%opts.CellLength == 0 {
				res.SetColorIndex(x, y, gridLine)
			}
		}
	}

	if opts.Origin != nil && viewport.contains(*opts.Origin) {
		x, y := pixelOf(*opts.Origin, viewport, opts)
		outline(res, image.Rect(x, y, x+opts.CellLength+1, y+opts.CellLength+1), origin)
	}
	return res
}

func pixelOf(c coord.Coord, viewport Viewport, opts Options) (int, int) {
	return int(distance(viewport.Min.X, c.X)) * opts.CellLength, int(distance(viewport.Min.Y, c.Y)) * opts.CellLength
}
