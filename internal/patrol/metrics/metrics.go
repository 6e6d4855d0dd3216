// Package metrics computes the two patrol answers: how many cells the guard
// covers, and how many single extra obstructions would trap it in a loop.
package metrics

import (
	"context"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mitchelldurbincs/GuardPatrol/internal/patrol/core"
	"github.com/mitchelldurbincs/GuardPatrol/internal/patrol/events"
	"github.com/mitchelldurbincs/GuardPatrol/internal/patrol/simulation"
)

// Calculator runs patrols over a parsed grid
type Calculator struct {
	workers   int
	publisher events.Publisher
	runID     string
}

// Option configures a Calculator
type Option func(*Calculator)

// WithWorkers bounds the number of concurrent candidate simulations.
// n <= 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *Calculator) { c.workers = n }
}

// WithPublisher sends progress events to p
func WithPublisher(p events.Publisher, runID string) Option {
	return func(c *Calculator) {
		c.publisher = p
		c.runID = runID
	}
}

// NewCalculator creates a calculator
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{publisher: events.NopPublisher{}}
	for _, opt := range opts {
		opt(c)
	}
	if c.workers <= 0 {
		c.workers = runtime.GOMAXPROCS(0)
	}
	if c.publisher == nil {
		c.publisher = events.NopPublisher{}
	}
	return c
}

// Placements is the result of the loop search
type Placements struct {
	// Candidates is how many cells were tried
	Candidates int
	// Cells holds every placement that traps the guard, sorted by row then column
	Cells []core.Coordinate
}

// Count is the number of loop-inducing placements
func (p Placements) Count() int { return len(p.Cells) }

// Baseline runs the unmodified patrol
func (c *Calculator) Baseline(grid *core.Grid) simulation.Result {
	c.publisher.Publish(events.NewSimulationStartedEvent(c.runID, grid))
	result := simulation.SimulateGrid(grid)
	c.publisher.Publish(events.NewSimulationCompletedEvent(
		c.runID, result.Outcome.String(), result.Ticks, simulation.DistinctVisitedCount(result.Trace)))
	return result
}

// DistinctVisitedCells is the part one answer
func (c *Calculator) DistinctVisitedCells(grid *core.Grid) int {
	return simulation.DistinctVisitedCount(c.Baseline(grid).Trace)
}

// CycleInducingPlacements tries one extra obstruction on every cell of the
// baseline path except the start and counts the runs that end in a cycle.
// Cells off the baseline path cannot change the outcome, so they are skipped.
func (c *Calculator) CycleInducingPlacements(ctx context.Context, grid *core.Grid) (Placements, error) {
	started := time.Now()

	baseline := c.Baseline(grid)
	if baseline.Outcome != simulation.Exited {
		return Placements{}, core.InvalidStatef("baseline patrol ended with %s after %d ticks; loop search needs a patrol that exits",
			baseline.Outcome, baseline.Ticks)
	}

	candidates := make([]core.Coordinate, 0, len(baseline.Trace))
	for _, cell := range baseline.Trace.Cells() {
		if cell != grid.Start.Position {
			candidates = append(candidates, cell)
		}
	}

	loops := make([]bool, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, candidate := range candidates {
		if gctx.Err() != nil {
			break
		}
		i, candidate := i, candidate
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result := simulation.Simulate(grid.Bounds, grid.Obstructions.With(candidate), grid.Start)
			loops[i] = result.Outcome == simulation.CycleDetected
			c.publisher.Publish(events.NewCandidateEvaluatedEvent(c.runID, candidate, result.Outcome.String(), result.Ticks))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Placements{}, err
	}
	if err := ctx.Err(); err != nil {
		return Placements{}, err
	}

	placements := Placements{Candidates: len(candidates)}
	for i, loop := range loops {
		if loop {
			placements.Cells = append(placements.Cells, candidates[i])
		}
	}
	sort.Slice(placements.Cells, func(i, j int) bool {
		a, b := placements.Cells[i], placements.Cells[j]
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Col < b.Col
	})

	c.publisher.Publish(events.NewSearchCompletedEvent(c.runID, placements.Candidates, placements.Count(), time.Since(started)))
	return placements, nil
}
