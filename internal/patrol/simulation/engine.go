// Package simulation runs the guard's patrol: walk forward until something
// blocks the way, turn right, and stop on leaving the grid or on repeating
// a pose.
package simulation

import (
	"github.com/mitchelldurbincs/GuardPatrol/internal/patrol/core"
)

// Outcome is how a patrol ended
type Outcome int

const (
	Exited Outcome = iota
	CycleDetected
)

func (o Outcome) String() string {
	switch o {
	case Exited:
		return "exited"
	case CycleDetected:
		return "cycle_detected"
	default:
		return "unknown"
	}
}

// Trace is the ordered list of poses the guard held after each tick.
// The starting pose is only present if the guard comes back to it.
type Trace []core.Pose

// Result of a single run
type Result struct {
	Outcome Outcome
	Trace   Trace
	Ticks   int
}

// Step advances the pose by one tick. exited is true when the cell ahead is
// outside bounds, in which case pose is returned unchanged.
func Step(bounds core.Bounds, obstructions core.ObstructionSet, pose core.Pose) (next core.Pose, exited bool) {
	ahead := pose.Ahead()
	if !bounds.Contains(ahead) {
		return pose, true
	}
	if obstructions.Contains(ahead) {
		// Turning uses up the tick; no forward movement.
		pose.Direction = pose.Direction.TurnRight()
		return pose, false
	}
	pose.Position = ahead
	return pose, false
}

// Simulate runs the patrol from start until the guard exits or repeats a
// pose. obstructions is only read.
func Simulate(bounds core.Bounds, obstructions core.ObstructionSet, start core.Pose) Result {
	// There are only Cells()*4 distinct poses, so a run that survives that
	// many ticks without exiting must be looping.
	maxTicks := bounds.Cells() * 4

	seen := make(map[core.Pose]struct{})
	trace := make(Trace, 0, bounds.Rows+bounds.Cols)
	pose := start

	for tick := 0; ; tick++ {
		if tick >= maxTicks {
			return Result{Outcome: CycleDetected, Trace: trace, Ticks: tick}
		}

		next, exited := Step(bounds, obstructions, pose)
		if exited {
			return Result{Outcome: Exited, Trace: trace, Ticks: tick}
		}
		if _, ok := seen[next]; ok {
			return Result{Outcome: CycleDetected, Trace: trace, Ticks: tick + 1}
		}

		seen[next] = struct{}{}
		trace = append(trace, next)
		pose = next
	}
}

// SimulateGrid runs Simulate on a parsed grid
func SimulateGrid(g *core.Grid) Result {
	return Simulate(g.Bounds, g.Obstructions, g.Start)
}

// DistinctVisitedCount is the number of distinct cells in the trace,
// ignoring heading.
func DistinctVisitedCount(trace Trace) int {
	return len(trace.Cells())
}

// Cells returns the distinct cells of the trace in first-visit order
func (t Trace) Cells() []core.Coordinate {
	seen := make(map[core.Coordinate]struct{}, len(t))
	cells := make([]core.Coordinate, 0, len(t))
	for _, p := range t {
		if _, ok := seen[p.Position]; ok {
			continue
		}
		seen[p.Position] = struct{}{}
		cells = append(cells, p.Position)
	}
	return cells
}
