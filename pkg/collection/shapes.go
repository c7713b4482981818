package collection

import (
	"math"
	"strconv"

	"github.com/ArminGh02/coordset/pkg/util/coord"
)

// Rectangle returns the cells (x, y) with
//
//	origin.X-offsetX <= x < origin.X+offsetX
//	origin.Y-offsetY <= y < origin.Y+offsetY
//
// The upper bounds are exclusive, so the box is 2*offsetX wide and
// 2*offsetY tall. A negative offset gives an empty collection. Near the
// integer limits the box is clipped to the representable cells: a range
// reaching past math.MaxInt ends at math.MaxInt (inclusive) and one reaching
// below math.MinInt starts at math.MinInt.
func Rectangle(origin coord.Coord, offsetX, offsetY int) *Collection {
	minX, cols := axisRange(origin.X, offsetX)
	minY, rows := axisRange(origin.Y, offsetY)

	ids := make([]coord.ID, 0, capacity(cols, rows))
	buf := make([]byte, 0, 2*len("-9223372036854775808")+1)
	for j := uint(0); j < rows; j++ {
		y := step(minY, j)
		for i := uint(0); i < cols; i++ {
			buf = strconv.AppendInt(buf[:0], int64(step(minX, i)), 10)
			buf = append(buf, ':')
			buf = strconv.AppendInt(buf, int64(y), 10)
			ids = append(ids, coord.ID(buf))
		}
	}
	return fromTrustedIDs(ids)
}

// axisRange returns the first cell and the cell count of
// [center-offset, center+offset), clipped to [math.MinInt, math.MaxInt].
func axisRange(center, offset int) (first int, n uint) {
	if offset <= 0 {
		return 0, 0
	}

	first = center - offset
	if center < math.MinInt+offset {
		first = math.MinInt
	}
	last := center + offset - 1
	if center > math.MaxInt-offset+1 {
		last = math.MaxInt
	}
	return first, uint(last) - uint(first) + 1
}

// step returns first+i without overflowing; first+i must be an int.
func step(first int, i uint) int {
	return int(uint(first) + i)
}

// capacity bounds the preallocation for huge boxes, append grows past it.
func capacity(cols, rows uint) int {
	const limit = 1 << 16
	if cols == 0 || rows == 0 {
		return 0
	}
	if cols > limit || rows > limit || cols*rows > limit {
		return limit
	}
	return int(cols * rows)
}

// Circle returns the cells of the bounding Rectangle(origin, radius, radius)
// whose euclidean distance from origin is at most radius. It inherits the
// rectangle's exclusive upper edge: the cells at origin.X+radius and
// origin.Y+radius are never included, and a radius of 0 gives an empty
// collection. A negative radius gives an empty collection too. Near the
// integer limits the box is clipped as in Rectangle. radius*radius must fit in
// an int.
func Circle(origin coord.Coord, radius int) *Collection {
	return within(Rectangle(origin, radius, radius), origin, radius)
}

// Disc is the symmetric counterpart of Circle: every cell whose distance from
// origin is at most radius, boundary cells on all four sides included.
// Disc(origin, 0) holds only origin.
func Disc(origin coord.Coord, radius int) *Collection {
	if radius < 0 {
		return Empty()
	}
	offset := radius
	if offset < math.MaxInt {
		offset++
	}
	return within(Rectangle(origin, offset, offset), origin, radius)
}

func within(box *Collection, origin coord.Coord, radius int) *Collection {
	ids := make([]coord.ID, 0, box.Len())
	r2 := radius * radius
	box.set.Each(func(id coord.ID) bool {
		p := coord.MustDecode(id)
		dx, dy := p.X-origin.X, p.Y-origin.Y
		if dx*dx+dy*dy <= r2 {
			ids = append(ids, id)
		}
		return true
	})
	return fromTrustedIDs(ids)
}
