package shapebot

import (
	"testing"

	"github.com/ArminGh02/coordset/pkg/collection"
	"github.com/ArminGh02/coordset/pkg/util/coord"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addCell(c coord.Coord) func(*collection.Collection) (*collection.Collection, error) {
	return func(cur *collection.Collection) (*collection.Collection, error) {
		return cur.Add(collection.Coords{c})
	}
}

func TestSelections_Update(t *testing.T) {
	s := newSelections()

	sel, known := s.current(1)
	assert.False(t, known)
	assert.True(t, sel.IsEmpty())

	first, err := s.update(1, addCell(coord.New(0, 0)))
	require.NoError(t, err)
	second, err := s.update(1, addCell(coord.New(1, 1)))
	require.NoError(t, err)

	assert.Equal(t, []coord.ID{"0:0"}, first.CoordinateIDs())
	assert.Equal(t, []coord.ID{"0:0", "1:1"}, second.CoordinateIDs())

	sel, known = s.current(1)
	assert.True(t, known)
	assert.Same(t, second, sel)

	other, _ := s.current(2)
	assert.True(t, other.IsEmpty())
}

func TestSelections_UpdateError(t *testing.T) {
	s := newSelections()
	_, err := s.update(1, addCell(coord.New(4, 4)))
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = s.update(1, func(*collection.Collection) (*collection.Collection, error) {
		return nil, boom
	})
	assert.Equal(t, boom, err)

	sel, _ := s.current(1)
	assert.Equal(t, []coord.ID{"4:4"}, sel.CoordinateIDs())
}

func TestSelections_Undo(t *testing.T) {
	s := newSelections()

	_, ok := s.undo(1)
	assert.False(t, ok)

	_, _ = s.update(1, addCell(coord.New(0, 0)))
	_, _ = s.update(1, addCell(coord.New(1, 0)))

	sel, ok := s.undo(1)
	assert.True(t, ok)
	assert.Equal(t, []coord.ID{"0:0"}, sel.CoordinateIDs())

	sel, ok = s.undo(1)
	assert.True(t, ok)
	assert.True(t, sel.IsEmpty())

	_, ok = s.undo(1)
	assert.False(t, ok)
}

func TestSelections_HistoryLimit(t *testing.T) {
	s := newSelections()
	for i := 0; i < historyLimit+10; i++ {
		_, err := s.update(7, addCell(coord.New(i, 0)))
		require.NoError(t, err)
	}

	undone := 0
	for {
		if _, ok := s.undo(7); !ok {
			break
		}
		undone++
	}
	assert.Equal(t, historyLimit+1, undone)
}

func TestSelections_Clear(t *testing.T) {
	s := newSelections()
	_, _ = s.update(1, addCell(coord.New(0, 0)))

	assert.True(t, s.clear(1).IsEmpty())

	sel, ok := s.undo(1)
	assert.True(t, ok)
	assert.Equal(t, []coord.ID{"0:0"}, sel.CoordinateIDs())
}

func TestSelections_Register(t *testing.T) {
	s := newSelections()
	assert.True(t, s.register(3))
	assert.False(t, s.register(3))
	assert.Equal(t, 1, s.usersCount())

	sel, known := s.current(3)
	assert.True(t, known)
	assert.True(t, sel.IsEmpty())
}
