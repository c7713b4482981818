package coord

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const separator = ":"

var (
	ErrInvalidCoordinateID = errors.New("invalid coordinate id")

	idPattern = regexp.MustCompile(`^-?\d+:-?\d+$`)
)

// ID is the canonical "x:y" form of a Coord. Two coords are the same cell
// iff their IDs are equal.
type ID string

func Encode(c Coord) ID {
	return ID(strconv.Itoa(c.X) + separator + strconv.Itoa(c.Y))
}

// Decode parses id back into a Coord. It fails with ErrInvalidCoordinateID if
// id does not match ^-?\d+:-?\d+$ or a half overflows int.
func Decode(id ID) (Coord, error) {
	if !idPattern.MatchString(string(id)) {
		return Coord{}, errors.Wrapf(ErrInvalidCoordinateID, "%q", string(id))
	}

	xs, ys, _ := strings.Cut(string(id), separator)
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Coord{}, errors.Wrapf(ErrInvalidCoordinateID, "%q: x out of range", string(id))
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Coord{}, errors.Wrapf(ErrInvalidCoordinateID, "%q: y out of range", string(id))
	}
	return New(x, y), nil
}

// MustDecode is like Decode but panics on a malformed id. Only for ids
// produced by Encode.
func MustDecode(id ID) Coord {
	c, err := Decode(id)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseID checks s and returns it as an ID.
func ParseID(s string) (ID, error) {
	if _, err := Decode(ID(s)); err != nil {
		return "", err
	}
	return ID(s), nil
}

func Parse(s string) (Coord, error) {
	return Decode(ID(s))
}

func (id ID) Valid() bool {
	_, err := Decode(id)
	return err == nil
}
