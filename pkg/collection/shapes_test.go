package collection_test

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/ArminGh02/coordset/pkg/collection"
	"github.com/ArminGh02/coordset/pkg/util/coord"
	"github.com/stretchr/testify/assert"
)

func idsOf(cs ...coord.Coord) []string {
	res := make([]string, len(cs))
	for i, c := range cs {
		res[i] = string(c.ID())
	}
	sort.Strings(res)
	return res
}

func TestRectangle(t *testing.T) {
	t.Run("upper bounds are exclusive", func(t *testing.T) {
		r := collection.Rectangle(coord.New(0, 0), 2, 2)

		var want []coord.Coord
		for _, x := range []int{-2, -1, 0, 1} {
			for _, y := range []int{-2, -1, 0, 1} {
				want = append(want, coord.New(x, y))
			}
		}
		assert.Equal(t, 16, r.Len())
		assert.Equal(t, idsOf(want...), sortedIDs(r))
		assert.False(t, r.Contains(coord.New(2, 0)))
		assert.False(t, r.Contains(coord.New(0, 2)))
	})

	t.Run("row major order", func(t *testing.T) {
		r := collection.Rectangle(coord.New(10, -5), 1, 1)
		assert.Equal(t, []coord.ID{"9:-6", "10:-6", "9:-5", "10:-5"}, r.CoordinateIDs())
	})

	t.Run("different offsets per axis", func(t *testing.T) {
		r := collection.Rectangle(coord.New(3, 3), 3, 1)
		assert.Equal(t, 12, r.Len())
		lo, hi, ok := r.Bounds()
		assert.True(t, ok)
		assert.Equal(t, coord.New(0, 2), lo)
		assert.Equal(t, coord.New(5, 3), hi)
	})

	t.Run("zero and negative offsets are empty", func(t *testing.T) {
		assert.True(t, collection.Rectangle(coord.New(1, 1), 0, 0).IsEmpty())
		assert.True(t, collection.Rectangle(coord.New(1, 1), 0, 4).IsEmpty())
		assert.True(t, collection.Rectangle(coord.New(1, 1), -2, 3).IsEmpty())
		assert.True(t, collection.Rectangle(coord.New(1, 1), 3, -2).IsEmpty())
	})

	t.Run("near max int", func(t *testing.T) {
		r := collection.Rectangle(coord.New(math.MaxInt-1, 0), 2, 1)
		var want []coord.Coord
		for x := math.MaxInt - 3; ; x++ {
			want = append(want, coord.New(x, -1), coord.New(x, 0))
			if x == math.MaxInt {
				break
			}
		}
		assert.Equal(t, 8, r.Len())
		assert.Equal(t, idsOf(want...), sortedIDs(r))
	})

	t.Run("clipped at max int", func(t *testing.T) {
		r := collection.Rectangle(coord.New(math.MaxInt, 0), 2, 1)
		assert.Equal(t, 6, r.Len())
		lo, hi, ok := r.Bounds()
		assert.True(t, ok)
		assert.Equal(t, coord.New(math.MaxInt-2, -1), lo)
		assert.Equal(t, coord.New(math.MaxInt, 0), hi)
	})

	t.Run("clipped at min int", func(t *testing.T) {
		r := collection.Rectangle(coord.New(math.MinInt, 0), 1, 1)
		assert.Equal(t, []coord.ID{
			coord.New(math.MinInt, -1).ID(),
			coord.New(math.MinInt, 0).ID(),
		}, r.CoordinateIDs())

		r = collection.Rectangle(coord.New(0, math.MinInt+1), 1, 3)
		assert.Equal(t, 2*4, r.Len())
		assert.True(t, r.Contains(coord.New(-1, math.MinInt)))
	})

	t.Run("ids are canonical", func(t *testing.T) {
		r := collection.Rectangle(coord.New(-100, 100), 2, 2)
		for _, id := range r.CoordinateIDs() {
			c, err := coord.Decode(id)
			assert.NoError(t, err)
			assert.Equal(t, id, c.ID())
		}
	})
}

func TestCircle(t *testing.T) {
	t.Run("radius 1 keeps the inherited box", func(t *testing.T) {
		c := collection.Circle(coord.New(0, 0), 1)
		assert.Equal(t, []coord.ID{"0:-1", "-1:0", "0:0"}, c.CoordinateIDs())
		assert.False(t, c.Contains(coord.New(-1, -1)))
	})

	t.Run("radius 2", func(t *testing.T) {
		c := collection.Circle(coord.New(0, 0), 2)
		want := idsOf(
			coord.New(0, -2),
			coord.New(-1, -1), coord.New(0, -1), coord.New(1, -1),
			coord.New(-2, 0), coord.New(-1, 0), coord.New(0, 0), coord.New(1, 0),
			coord.New(-1, 1), coord.New(0, 1), coord.New(1, 1),
		)
		assert.Equal(t, want, sortedIDs(c))
	})

	t.Run("radius 0 is empty", func(t *testing.T) {
		assert.True(t, collection.Circle(coord.New(5, 5), 0).IsEmpty())
	})

	t.Run("negative radius is empty", func(t *testing.T) {
		assert.True(t, collection.Circle(coord.New(5, 5), -3).IsEmpty())
	})

	t.Run("subset of bounding rectangle", func(t *testing.T) {
		origin := coord.New(10, -4)
		box := collection.Rectangle(origin, 5, 5)
		c := collection.Circle(origin, 5)
		assert.Equal(t, 79, c.Len())
		for _, p := range c.Coordinates() {
			assert.True(t, box.Contains(p))
			assert.LessOrEqual(t, math.Hypot(float64(p.X-origin.X), float64(p.Y-origin.Y)), 5.0)
		}
	})
}

func TestCircle_IntegerLimits(t *testing.T) {
	t.Run("near min int", func(t *testing.T) {
		origin := coord.New(math.MinInt+1, 5)
		c := collection.Circle(origin, 2)
		assert.Equal(t, 10, c.Len())
		assert.True(t, c.Contains(coord.New(math.MinInt, 5)))
		assert.True(t, c.Contains(coord.New(math.MinInt+1, 3)))
		assert.False(t, c.Contains(coord.New(math.MinInt+1, 7)))
	})

	t.Run("at max int", func(t *testing.T) {
		origin := coord.New(math.MaxInt, math.MaxInt)
		c := collection.Circle(origin, 1)
		want := idsOf(origin, coord.New(math.MaxInt-1, math.MaxInt), coord.New(math.MaxInt, math.MaxInt-1))
		assert.Equal(t, want, sortedIDs(c))
	})

	t.Run("disc at max int", func(t *testing.T) {
		origin := coord.New(math.MaxInt, 0)
		d := collection.Disc(origin, 1)
		want := idsOf(origin, coord.New(math.MaxInt-1, 0), coord.New(math.MaxInt, 1), coord.New(math.MaxInt, -1))
		assert.Equal(t, want, sortedIDs(d))
	})
}

func TestDisc(t *testing.T) {
	t.Run("radius 1", func(t *testing.T) {
		d := collection.Disc(coord.New(0, 0), 1)
		want := idsOf(coord.New(0, 0), coord.New(1, 0), coord.New(-1, 0), coord.New(0, 1), coord.New(0, -1))
		assert.Equal(t, want, sortedIDs(d))
		assert.False(t, d.Contains(coord.New(1, 1)))
	})

	t.Run("radius 0 is the origin", func(t *testing.T) {
		d := collection.Disc(coord.New(5, 5), 0)
		assert.Equal(t, []coord.ID{"5:5"}, d.CoordinateIDs())
	})

	t.Run("negative radius is empty", func(t *testing.T) {
		assert.True(t, collection.Disc(coord.New(0, 0), -1).IsEmpty())
	})

	t.Run("lattice point counts", func(t *testing.T) {
		for r, want := range map[int]int{2: 13, 3: 29, 5: 81, 10: 317} {
			assert.Equal(t, want, collection.Disc(coord.New(-7, 3), r).Len(), fmt.Sprintf("radius %d", r))
		}
	})

	t.Run("contains circle", func(t *testing.T) {
		origin := coord.New(2, 2)
		rest, err := collection.Circle(origin, 4).Minus(collection.Disc(origin, 4))
		assert.NoError(t, err)
		assert.True(t, rest.IsEmpty())
	})
}
