package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounds_Contains(t *testing.T) {
	b := Bounds{Rows: 3, Cols: 10}
	assert.True(t, b.Contains(Coordinate{0, 0}))
	assert.True(t, b.Contains(Coordinate{2, 9}))
	assert.False(t, b.Contains(Coordinate{3, 0}))
	assert.False(t, b.Contains(Coordinate{0, 10}))
	assert.False(t, b.Contains(Coordinate{-1, 4}))
	assert.False(t, b.Contains(Coordinate{1, -1}))
	assert.Equal(t, 30, b.Cells())
}

func TestObstructionSet(t *testing.T) {
	s := NewObstructionSet(Coordinate{2, 4}, Coordinate{2, 4}, Coordinate{0, 1})
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(Coordinate{2, 4}))
	assert.False(t, s.Contains(Coordinate{1, 1}))

	augmented := s.With(Coordinate{1, 1})
	assert.Equal(t, 3, augmented.Len())
	assert.True(t, augmented.Contains(Coordinate{1, 1}))
	assert.False(t, s.Contains(Coordinate{1, 1}), "original set must not change")
}

func TestObstructionSet_ZeroValue(t *testing.T) {
	var s ObstructionSet
	assert.False(t, s.Contains(Coordinate{0, 0}))
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.With(Coordinate{0, 0}).Contains(Coordinate{0, 0}))
}

func TestGrid_String(t *testing.T) {
	g := &Grid{
		Bounds:       Bounds{Rows: 3, Cols: 5},
		Obstructions: NewObstructionSet(Coordinate{2, 4}),
		Start:        NewPose(Coordinate{0, 1}),
	}
	assert.Equal(t, "....#\n.....\n.^...\n", g.String())
}

func TestErrorHelpers(t *testing.T) {
	err := InvalidInputf("unexpected character %q at row %d", 'x', 3)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, "invalid input: unexpected character 'x' at row 3", err.Error())

	err = InvalidStatef("baseline patrol ended with %s", "cycle")
	assert.True(t, errors.Is(err, ErrInvalidState))
	assert.False(t, errors.Is(err, ErrInvalidInput))
}
