package core

import "strings"

// Bounds holds the grid dimensions
type Bounds struct {
	Rows, Cols int
}

// Contains checks if the coordinate lies inside the grid
func (b Bounds) Contains(c Coordinate) bool {
	return c.Row >= 0 && c.Row < b.Rows && c.Col >= 0 && c.Col < b.Cols
}

// Cells returns the number of cells in the grid
func (b Bounds) Cells() int { return b.Rows * b.Cols }

// ObstructionSet is a read-only set of obstructed cells.
type ObstructionSet struct {
	cells map[Coordinate]struct{}
}

// NewObstructionSet builds a set from the given coordinates, dropping duplicates
func NewObstructionSet(coords ...Coordinate) ObstructionSet {
	cells := make(map[Coordinate]struct{}, len(coords))
	for _, c := range coords {
		cells[c] = struct{}{}
	}
	return ObstructionSet{cells: cells}
}

// Contains is the membership test
func (s ObstructionSet) Contains(c Coordinate) bool {
	_, ok := s.cells[c]
	return ok
}

// Len returns the number of obstructions
func (s ObstructionSet) Len() int { return len(s.cells) }

// With returns a new set holding every obstruction in s plus extra.
// s itself is left untouched.
func (s ObstructionSet) With(extra Coordinate) ObstructionSet {
	cells := make(map[Coordinate]struct{}, len(s.cells)+1)
	for c := range s.cells {
		cells[c] = struct{}{}
	}
	cells[extra] = struct{}{}
	return ObstructionSet{cells: cells}
}

// Grid is the parsed puzzle: bounds, obstructions and the guard's start pose
type Grid struct {
	Bounds       Bounds
	Obstructions ObstructionSet
	Start        Pose
}

// String renders the grid in input orientation, top row first
func (g *Grid) String() string {
	var sb strings.Builder
	for row := g.Bounds.Rows - 1; row >= 0; row-- {
		for col := 0; col < g.Bounds.Cols; col++ {
			c := Coordinate{Row: row, Col: col}
			switch {
			case c == g.Start.Position:
				sb.WriteByte(SymbolGuard)
			case g.Obstructions.Contains(c):
				sb.WriteByte(SymbolObstruction)
			default:
				sb.WriteByte(SymbolEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
