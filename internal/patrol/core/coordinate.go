package core

import "fmt"

// Coordinate identifies a grid cell. Row 0 is the bottom row of the input
// text and rows increase upward; columns increase left to right.
type Coordinate struct {
	Row, Col int
}

// NewCoordinate creates a new coordinate with the given row and column
func NewCoordinate(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// Add returns a new coordinate that is the sum of this coordinate and another
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{
		Row: c.Row + other.Row,
		Col: c.Col + other.Col,
	}
}

// Move returns a new coordinate moved one step in the given heading
func (c Coordinate) Move(h Heading) Coordinate {
	if offset, ok := headingVectors[h]; ok {
		return c.Add(offset)
	}
	return c
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Heading is one of the four orthogonal compass directions
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

// North is toward higher rows since row 0 is the bottom of the grid.
var headingVectors = map[Heading]Coordinate{
	North: {Row: 1, Col: 0},
	East:  {Row: 0, Col: 1},
	South: {Row: -1, Col: 0},
	West:  {Row: 0, Col: -1},
}

// TurnRight rotates the heading 90 degrees clockwise
func (h Heading) TurnRight() Heading {
	return (h + 1) % 4
}

// IsValid reports whether h is one of the four headings
func (h Heading) IsValid() bool {
	return h >= North && h <= West
}

func (h Heading) String() string {
	switch h {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("heading(%d)", int(h))
	}
}

// Pose is the guard's position together with the way it faces
type Pose struct {
	Position  Coordinate
	Direction Heading
}

// NewPose returns a pose at position facing North
func NewPose(position Coordinate) Pose {
	return Pose{Position: position, Direction: North}
}

// Ahead returns the cell immediately in front of the pose
func (p Pose) Ahead() Coordinate {
	return p.Position.Move(p.Direction)
}

func (p Pose) String() string {
	return fmt.Sprintf("%s facing %s", p.Position, p.Direction)
}
