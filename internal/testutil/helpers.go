package testutil

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/GuardPatrol/internal/patrol/core"
)

// NopLogger returns a no-op logger for tests
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// EmptyGrid builds an obstruction-free grid with the guard facing North at start
func EmptyGrid(rows, cols int, start core.Coordinate) *core.Grid {
	return &core.Grid{
		Bounds:       core.Bounds{Rows: rows, Cols: cols},
		Obstructions: core.NewObstructionSet(),
		Start:        core.NewPose(start),
	}
}

// GridWith builds a grid with the given obstructions
func GridWith(rows, cols int, start core.Coordinate, obstructions ...core.Coordinate) *core.Grid {
	g := EmptyGrid(rows, cols, start)
	g.Obstructions = core.NewObstructionSet(obstructions...)
	return g
}

// RequireErrorIs asserts err wraps target
func RequireErrorIs(t *testing.T, err error, target error, msgAndArgs ...interface{}) {
	t.Helper()
	require.Error(t, err, msgAndArgs...)
	require.ErrorIs(t, err, target, msgAndArgs...)
}

// NewTestRNG creates a deterministic random number generator for tests
func NewTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandomGrid scatters obstructions over roughly density of the cells and
// places the guard on a free cell.
func RandomGrid(rng *rand.Rand, rows, cols int, density float64) *core.Grid {
	start := core.NewCoordinate(rng.Intn(rows), rng.Intn(cols))
	var obstructions []core.Coordinate
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := core.NewCoordinate(row, col)
			if c != start && rng.Float64() < density {
				obstructions = append(obstructions, c)
			}
		}
	}
	return GridWith(rows, cols, start, obstructions...)
}
