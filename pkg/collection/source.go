package collection

import (
	"github.com/ArminGh02/coordset/pkg/util/coord"
)

// Source is anything a Collection can be built from or combined with:
// another *Collection, Coords, IDs or Strings.
type Source interface {
	ids() ([]coord.ID, error)
}

// Coords is a list of structured coordinates. It always validates.
type Coords []coord.Coord

// IDs is a list of coordinate identifiers, each checked against the canonical
// pattern.
type IDs []coord.ID

// Strings is a list of raw identifier strings, for input that comes straight
// from the user.
type Strings []string

func (cs Coords) ids() ([]coord.ID, error) {
	res := make([]coord.ID, len(cs))
	for i, c := range cs {
		res[i] = c.ID()
	}
	return res, nil
}

func (ids IDs) ids() ([]coord.ID, error) {
	for i, id := range ids {
		if _, err := coord.Decode(id); err != nil {
			return nil, newValidationError(i, string(id), err)
		}
	}
	res := make([]coord.ID, len(ids))
	copy(res, ids)
	return res, nil
}

func (ss Strings) ids() ([]coord.ID, error) {
	res := make([]coord.ID, len(ss))
	for i, s := range ss {
		id, err := coord.ParseID(s)
		if err != nil {
			return nil, newValidationError(i, s, err)
		}
		res[i] = id
	}
	return res, nil
}

func (c *Collection) ids() ([]coord.ID, error) {
	if c == nil {
		return nil, nil
	}
	return c.set.Items(), nil
}
