package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/GuardPatrol/internal/patrol/core"
	"github.com/mitchelldurbincs/GuardPatrol/internal/testutil"
)

func TestParseRow(t *testing.T) {
	tests := []struct {
		name     string
		row      int
		line     string
		expected []core.Entity
	}{
		{"empty row", 0, "..........", nil},
		{"guard position", 0, "....^.....", []core.Entity{core.NewGuard(0, 4)}},
		{"guard position non zero row", 7, "....^.....", []core.Entity{core.NewGuard(7, 4)}},
		{
			"guard position and obstruction", 0, "....^...#.",
			[]core.Entity{core.NewGuard(0, 4), core.NewObstruction(0, 8)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities, err := ParseRow(tt.row, tt.line)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.expected, entities); diff != "" {
				t.Errorf("ParseRow() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseRow_UnknownCharacter(t *testing.T) {
	for _, line := range []string{"..x..", "..O..", ".. ..", "..>.."} {
		_, err := ParseRow(0, line)
		testutil.RequireErrorIs(t, err, core.ErrInvalidInput, "line %q", line)
		assert.Contains(t, err.Error(), "column 2")
	}
}

func TestParse_ScenarioA(t *testing.T) {
	grid, err := Parse(testutil.ScenarioA)
	require.NoError(t, err)

	assert.Equal(t, core.Bounds{Rows: 10, Cols: 10}, grid.Bounds)
	assert.Equal(t, 8, grid.Obstructions.Len())
	assert.Equal(t, core.NewPose(core.NewCoordinate(3, 4)), grid.Start)

	// The top line of the text is the highest row.
	assert.True(t, grid.Obstructions.Contains(core.NewCoordinate(9, 4)))
	assert.True(t, grid.Obstructions.Contains(core.NewCoordinate(0, 6)))
	assert.True(t, grid.Obstructions.Contains(core.NewCoordinate(1, 0)))
	assert.False(t, grid.Obstructions.Contains(grid.Start.Position))
}

func TestParse_ScenarioB(t *testing.T) {
	grid, err := Parse(testutil.ScenarioB)
	require.NoError(t, err)

	assert.Equal(t, core.Bounds{Rows: 3, Cols: 10}, grid.Bounds)
	assert.Equal(t, core.NewCoordinate(0, 4), grid.Start.Position)
	assert.Equal(t, core.North, grid.Start.Direction)
	assert.Equal(t, 1, grid.Obstructions.Len())
	assert.True(t, grid.Obstructions.Contains(core.NewCoordinate(2, 4)))
}

func TestParse_RoundTripsThroughString(t *testing.T) {
	grid, err := Parse(testutil.ScenarioA)
	require.NoError(t, err)
	assert.Equal(t, testutil.ScenarioA[1:], grid.String())
}

func TestParse_LineEndings(t *testing.T) {
	grid, err := Parse("\r\n..#\r\n^..\r\n\r\n")
	require.NoError(t, err)
	assert.Equal(t, core.Bounds{Rows: 2, Cols: 3}, grid.Bounds)
	assert.True(t, grid.Obstructions.Contains(core.NewCoordinate(1, 2)))
	assert.Equal(t, core.NewCoordinate(0, 0), grid.Start.Position)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"empty input", "", "empty grid"},
		{"only blank lines", "\n\n  \n", "empty grid"},
		{"no guard", "...\n.#.\n", "no guard marker"},
		{"two guards", "^..\n..^\n", "found 2 guard markers"},
		{"unknown character", "^..\n.x.\n", "unexpected character 'x'"},
		{"ragged rows", "^...\n..\n", "has width 2, expected 4"},
		{"blank line inside grid", "^..\n\n...\n", "has width 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := Parse(tt.input)
			assert.Nil(t, grid)
			testutil.RequireErrorIs(t, err, core.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestParse_EveryCellClassified(t *testing.T) {
	grid, err := Parse(testutil.ScenarioD)
	require.NoError(t, err)

	empty := 0
	for row := 0; row < grid.Bounds.Rows; row++ {
		for col := 0; col < grid.Bounds.Cols; col++ {
			c := core.NewCoordinate(row, col)
			if !grid.Obstructions.Contains(c) && c != grid.Start.Position {
				empty++
			}
		}
	}
	assert.Equal(t, grid.Bounds.Cells(), empty+grid.Obstructions.Len()+1)
}
