// Package parser turns puzzle text into a core.Grid.
//
// Coordinates are Cartesian: the last non-blank line of the input is row 0
// and rows increase toward the top of the text. Columns count from 0 at the
// left edge of each line.
package parser

import (
	"strings"

	"github.com/mitchelldurbincs/GuardPatrol/internal/patrol/core"
)

// Parse reads the whole grid. Leading and trailing blank lines are ignored;
// everything between them must be a rectangle of '#', '^' and '.' holding
// exactly one '^'.
func Parse(input string) (*core.Grid, error) {
	lines := trimBlankLines(strings.Split(input, "\n"))
	if len(lines) == 0 {
		return nil, core.InvalidInputf("empty grid")
	}

	rows := len(lines)
	cols := len([]rune(lines[0]))
	if cols == 0 {
		return nil, core.InvalidInputf("empty grid")
	}

	var obstructions []core.Coordinate
	var guards []core.Coordinate

	// lines[0] is the top of the text, so it becomes the highest row.
	for i, line := range lines {
		row := rows - 1 - i
		if width := len([]rune(line)); width != cols {
			return nil, core.InvalidInputf("row %d has width %d, expected %d", row, width, cols)
		}

		entities, err := ParseRow(row, line)
		if err != nil {
			return nil, err
		}
		for _, e := range entities {
			switch e.Kind {
			case core.EntityObstruction:
				obstructions = append(obstructions, e.Position)
			case core.EntityGuard:
				guards = append(guards, e.Position)
			}
		}
	}

	switch len(guards) {
	case 0:
		return nil, core.InvalidInputf("no guard marker %q found", core.SymbolGuard)
	case 1:
	default:
		return nil, core.InvalidInputf("found %d guard markers at %v, expected exactly one", len(guards), guards)
	}

	return &core.Grid{
		Bounds:       core.Bounds{Rows: rows, Cols: cols},
		Obstructions: core.NewObstructionSet(obstructions...),
		Start:        core.NewPose(guards[0]),
	}, nil
}

// ParseRow parses a single line that sits at the given row. Empty cells
// produce no entity.
func ParseRow(row int, line string) ([]core.Entity, error) {
	var entities []core.Entity
	for col, ch := range []rune(line) {
		switch ch {
		case core.SymbolObstruction:
			entities = append(entities, core.NewObstruction(row, col))
		case core.SymbolGuard:
			entities = append(entities, core.NewGuard(row, col))
		case core.SymbolEmpty:
		default:
			return nil, core.InvalidInputf("unexpected character %q at row %d column %d", ch, row, col)
		}
	}
	return entities, nil
}

func trimBlankLines(lines []string) []string {
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
