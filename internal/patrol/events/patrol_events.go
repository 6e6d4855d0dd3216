package events

import (
	"time"

	"github.com/mitchelldurbincs/GuardPatrol/internal/patrol/core"
)

// Event type constants
const (
	TypeSimulationStarted   = "simulation.started"
	TypeSimulationCompleted = "simulation.completed"
	TypeCandidateEvaluated  = "candidate.evaluated"
	TypeSearchCompleted     = "search.completed"
)

// SimulationStartedEvent is published before the baseline patrol runs
type SimulationStartedEvent struct {
	BaseEvent
	Rows         int
	Cols         int
	Obstructions int
	Start        core.Pose
}

func NewSimulationStartedEvent(runID string, grid *core.Grid) *SimulationStartedEvent {
	return &SimulationStartedEvent{
		BaseEvent:    newBase(TypeSimulationStarted, runID),
		Rows:         grid.Bounds.Rows,
		Cols:         grid.Bounds.Cols,
		Obstructions: grid.Obstructions.Len(),
		Start:        grid.Start,
	}
}

// SimulationCompletedEvent is published once the baseline patrol ends
type SimulationCompletedEvent struct {
	BaseEvent
	Outcome string
	Ticks   int
	Visited int
}

func NewSimulationCompletedEvent(runID, outcome string, ticks, visited int) *SimulationCompletedEvent {
	return &SimulationCompletedEvent{
		BaseEvent: newBase(TypeSimulationCompleted, runID),
		Outcome:   outcome,
		Ticks:     ticks,
		Visited:   visited,
	}
}

// CandidateEvaluatedEvent is published for every extra obstruction tried
type CandidateEvaluatedEvent struct {
	BaseEvent
	Candidate core.Coordinate
	Outcome   string
	Ticks     int
}

func NewCandidateEvaluatedEvent(runID string, candidate core.Coordinate, outcome string, ticks int) *CandidateEvaluatedEvent {
	return &CandidateEvaluatedEvent{
		BaseEvent: newBase(TypeCandidateEvaluated, runID),
		Candidate: candidate,
		Outcome:   outcome,
		Ticks:     ticks,
	}
}

// SearchCompletedEvent is published when the placement search finishes
type SearchCompletedEvent struct {
	BaseEvent
	Candidates int
	Loops      int
	Duration   time.Duration
}

func NewSearchCompletedEvent(runID string, candidates, loops int, duration time.Duration) *SearchCompletedEvent {
	return &SearchCompletedEvent{
		BaseEvent:  newBase(TypeSearchCompleted, runID),
		Candidates: candidates,
		Loops:      loops,
		Duration:   duration,
	}
}
