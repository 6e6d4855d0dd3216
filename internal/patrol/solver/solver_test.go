package solver

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/GuardPatrol/internal/patrol/core"
	"github.com/mitchelldurbincs/GuardPatrol/internal/patrol/events"
	"github.com/mitchelldurbincs/GuardPatrol/internal/testutil"
)

func TestParsePart(t *testing.T) {
	p, err := ParsePart("1")
	require.NoError(t, err)
	assert.Equal(t, PartOne, p)

	p, err = ParsePart(" 2\n")
	require.NoError(t, err)
	assert.Equal(t, PartTwo, p)

	_, err = ParsePart("3")
	testutil.RequireErrorIs(t, err, core.ErrInvalidInput)
}

func TestSolve(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		part     Part
		expected string
	}{
		{"scenario A part one", testutil.ScenarioA, PartOne, "41"},
		{"scenario A part two", testutil.ScenarioA, PartTwo, "6"},
		{"scenario B part one", testutil.ScenarioB, PartOne, "6"},
		{"scenario B part two", testutil.ScenarioB, PartTwo, "0"},
		{"scenario D part one", testutil.ScenarioD, PartOne, "8"},
	}

	s := New(Options{Workers: 2, Logger: testutil.NopLogger()})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, err := s.Solve(context.Background(), tt.input, tt.part)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, answer)
		})
	}
}

func TestSolve_Errors(t *testing.T) {
	s := New(Options{Logger: testutil.NopLogger()})

	_, err := s.Solve(context.Background(), "...\n.#.\n", PartOne)
	testutil.RequireErrorIs(t, err, core.ErrInvalidInput)

	_, err = s.Solve(context.Background(), testutil.ScenarioD, PartTwo)
	testutil.RequireErrorIs(t, err, core.ErrInvalidState)

	_, err = s.Solve(context.Background(), testutil.ScenarioB, Part(7))
	testutil.RequireErrorIs(t, err, core.ErrInvalidInput)
}

func TestSolve_TagsEventsWithRunID(t *testing.T) {
	bus := events.NewEventBus()
	var runIDs []string
	bus.SubscribeFunc(events.TypeSimulationCompleted, func(e events.Event) {
		runIDs = append(runIDs, e.RunID())
	})

	var buf bytes.Buffer
	s := New(Options{Publisher: bus, Logger: zerolog.New(&buf).Level(zerolog.DebugLevel)})

	for i := 0; i < 2; i++ {
		_, err := s.Solve(context.Background(), testutil.ScenarioB, PartOne)
		require.NoError(t, err)
	}

	require.Len(t, runIDs, 2)
	assert.NotEqual(t, runIDs[0], runIDs[1])
	_, err := uuid.Parse(runIDs[0])
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), runIDs[1])
	assert.Contains(t, buf.String(), "Solved puzzle")
}
