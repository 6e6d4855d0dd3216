package core

// Grid symbols
const (
	SymbolObstruction = '#'
	SymbolGuard       = '^'
	SymbolEmpty       = '.'
)

// EntityKind tags what a parsed cell holds
type EntityKind int

const (
	EntityObstruction EntityKind = iota
	EntityGuard
)

func (k EntityKind) String() string {
	switch k {
	case EntityObstruction:
		return "obstruction"
	case EntityGuard:
		return "guard"
	default:
		return "unknown"
	}
}

// Entity is a non-empty cell found while parsing
type Entity struct {
	Kind     EntityKind
	Position Coordinate
}

func NewObstruction(row, col int) Entity {
	return Entity{Kind: EntityObstruction, Position: NewCoordinate(row, col)}
}

func NewGuard(row, col int) Entity {
	return Entity{Kind: EntityGuard, Position: NewCoordinate(row, col)}
}
