// Package solver is the entry point used by the CLI and the gRPC server:
// text in, formatted answer out.
package solver

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/GuardPatrol/internal/patrol/core"
	"github.com/mitchelldurbincs/GuardPatrol/internal/patrol/events"
	"github.com/mitchelldurbincs/GuardPatrol/internal/patrol/metrics"
	"github.com/mitchelldurbincs/GuardPatrol/internal/patrol/parser"
)

// Part selects which answer to compute
type Part int

const (
	PartOne Part = 1 // distinct cells visited
	PartTwo Part = 2 // loop-inducing obstruction placements
)

func (p Part) String() string {
	return strconv.Itoa(int(p))
}

// ParsePart accepts "1" or "2"
func ParsePart(s string) (Part, error) {
	switch strings.TrimSpace(s) {
	case "1":
		return PartOne, nil
	case "2":
		return PartTwo, nil
	default:
		return 0, core.InvalidInputf("unsupported part %q, expected 1 or 2", s)
	}
}

// Options configures a Solver
type Options struct {
	Workers   int
	Publisher events.Publisher
	Logger    zerolog.Logger
}

// Solver parses grids and computes answers. It holds no per-input state and
// is safe for concurrent use.
type Solver struct {
	workers   int
	publisher events.Publisher
	logger    zerolog.Logger
}

// New creates a solver
func New(opts Options) *Solver {
	publisher := opts.Publisher
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Solver{
		workers:   opts.Workers,
		publisher: publisher,
		logger:    opts.Logger.With().Str("component", "solver").Logger(),
	}
}

// Solve parses input and returns the requested answer as a base-10 string
func (s *Solver) Solve(ctx context.Context, input string, part Part) (string, error) {
	n, err := s.SolveCount(ctx, input, part)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

// SolveCount is Solve without the formatting
func (s *Solver) SolveCount(ctx context.Context, input string, part Part) (int, error) {
	runID := uuid.New().String()
	logger := s.logger.With().Str("run_id", runID).Stringer("part", part).Logger()
	started := time.Now()

	grid, err := parser.Parse(input)
	if err != nil {
		logger.Debug().Err(err).Msg("Rejected puzzle input")
		return 0, err
	}

	calc := metrics.NewCalculator(
		metrics.WithWorkers(s.workers),
		metrics.WithPublisher(s.publisher, runID),
	)

	var answer int
	switch part {
	case PartOne:
		answer = calc.DistinctVisitedCells(grid)
	case PartTwo:
		placements, err := calc.CycleInducingPlacements(ctx, grid)
		if err != nil {
			logger.Debug().Err(err).Msg("Loop search failed")
			return 0, err
		}
		answer = placements.Count()
	default:
		return 0, core.InvalidInputf("unsupported part %d, expected 1 or 2", int(part))
	}

	logger.Debug().
		Int("rows", grid.Bounds.Rows).
		Int("cols", grid.Bounds.Cols).
		Int("answer", answer).
		Dur("duration", time.Since(started)).
		Msg("Solved puzzle")
	return answer, nil
}
