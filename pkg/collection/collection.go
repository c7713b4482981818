// Package collection holds sets of grid cells keyed by their coordinate ids.
// A Collection is never modified after construction: Add and Minus return a
// new Collection and leave both operands as they were.
package collection

import (
	"strings"

	"github.com/ArminGh02/coordset/pkg/util/coord"
	"github.com/ArminGh02/coordset/pkg/util/sets"
)

type Collection struct {
	set sets.Set[coord.ID]
}

// New builds a Collection from src. Nothing is built if any element of src is
// malformed.
func New(src Source) (*Collection, error) {
	if src == nil {
		return Empty(), nil
	}
	ids, err := src.ids()
	if err != nil {
		return nil, err
	}
	return fromTrustedIDs(ids), nil
}

func Empty() *Collection {
	return &Collection{set: sets.New[coord.ID]()}
}

func FromCoords(cs ...coord.Coord) *Collection {
	set := sets.WithCapacity[coord.ID](len(cs))
	for _, c := range cs {
		set.Insert(c.ID())
	}
	return &Collection{set: set}
}

func FromIDs(ids ...coord.ID) (*Collection, error) {
	return New(IDs(ids))
}

// fromTrustedIDs skips validation; ids must be canonical.
func fromTrustedIDs(ids []coord.ID) *Collection {
	return &Collection{set: sets.Of(ids...)}
}

func (c *Collection) CoordinateIDs() []coord.ID {
	return c.set.Items()
}

func (c *Collection) Coordinates() []coord.Coord {
	res := make([]coord.Coord, 0, c.set.Len())
	c.set.Each(func(id coord.ID) bool {
		res = append(res, coord.MustDecode(id))
		return true
	})
	return res
}

func (c *Collection) Len() int {
	return c.set.Len()
}

func (c *Collection) IsEmpty() bool {
	return c.set.IsEmpty()
}

func (c *Collection) Contains(where coord.Coord) bool {
	return c.set.Contains(where.ID())
}

func (c *Collection) ContainsID(id coord.ID) bool {
	return c.set.Contains(id)
}

// Add returns the union of c and src.
func (c *Collection) Add(src Source) (*Collection, error) {
	ids, err := idsOf(src)
	if err != nil {
		return nil, err
	}

	set := c.set.Clone()
	for _, id := range ids {
		set.Insert(id)
	}
	return &Collection{set: set}, nil
}

// Minus returns the members of c that are not in src.
func (c *Collection) Minus(src Source) (*Collection, error) {
	ids, err := idsOf(src)
	if err != nil {
		return nil, err
	}

	removed := sets.Of(ids...)
	set := sets.WithCapacity[coord.ID](c.set.Len())
	c.set.Each(func(id coord.ID) bool {
		if !removed.Contains(id) {
			set.Insert(id)
		}
		return true
	})
	return &Collection{set: set}, nil
}

// Bounds returns the lowest and highest member coordinates on each axis, both
// inclusive, so no cell at the integer limits is lost to overflow. ok is false
// for an empty collection.
func (c *Collection) Bounds() (lo, hi coord.Coord, ok bool) {
	c.set.Each(func(id coord.ID) bool {
		p := coord.MustDecode(id)
		if !ok {
			lo, hi, ok = p, p, true
			return true
		}
		if p.X < lo.X {
			lo.X = p.X
		}
		if p.Y < lo.Y {
			lo.Y = p.Y
		}
		if p.X > hi.X {
			hi.X = p.X
		}
		if p.Y > hi.Y {
			hi.Y = p.Y
		}
		return true
	})
	return lo, hi, ok
}

func (c *Collection) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	c.set.Each(func(id coord.ID) bool {
		if sb.Len() > 1 {
			sb.WriteString(", ")
		}
		sb.WriteString(string(id))
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}

func idsOf(src Source) ([]coord.ID, error) {
	if src == nil {
		return nil, nil
	}
	return src.ids()
}
