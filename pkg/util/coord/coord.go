package coord

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

var ErrInvalidCoordinate = errors.New("invalid coordinate")

type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func New(x, y int) Coord {
	return Coord{
		X: x,
		Y: y,
	}
}

func Plus(a, b Coord) Coord {
	return Coord{
		X: a.X + b.X,
		Y: a.Y + b.Y,
	}
}

func (c *Coord) Plus(other Coord) {
	*c = Plus(*c, other)
}

// ID returns the canonical identifier of c.
func (c Coord) ID() ID {
	return Encode(c)
}

func (c Coord) String() string {
	return string(Encode(c))
}

// UnmarshalJSON accepts only objects carrying both "x" and "y" as integral
// numbers. Plain integers may span the whole int range; whole values written
// with a fraction or exponent, such as 1.0 or 1e2, are accepted while their
// magnitude stays below 2^53, past which a float no longer names one integer.
func (c *Coord) UnmarshalJSON(b []byte) error {
	var raw struct {
		X json.RawMessage `json:"x"`
		Y json.RawMessage `json:"y"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return errors.Wrapf(ErrInvalidCoordinate, "%s", err)
	}

	x, err := integer("x", raw.X)
	if err != nil {
		return err
	}
	y, err := integer("y", raw.Y)
	if err != nil {
		return err
	}

	*c = New(x, y)
	return nil
}

// maxExactFloat is 2^53.
const maxExactFloat = 1 << 53

func integer(name string, raw json.RawMessage) (int, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, errors.Wrapf(ErrInvalidCoordinate, "missing %s", name)
	}
	if v, err := strconv.ParseInt(string(raw), 10, strconv.IntSize); err == nil {
		return int(v), nil
	}

	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) >= maxExactFloat || f > math.MaxInt || f < math.MinInt {
		return 0, errors.Wrapf(ErrInvalidCoordinate, "%s is not an integer: %s", name, raw)
	}
	return int(f), nil
}
