package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/GuardPatrol/internal/config"
	"github.com/mitchelldurbincs/GuardPatrol/internal/logging"
	"github.com/mitchelldurbincs/GuardPatrol/internal/patrol/events"
	"github.com/mitchelldurbincs/GuardPatrol/internal/patrol/events/subscribers"
	"github.com/mitchelldurbincs/GuardPatrol/internal/patrol/solver"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	inputPath := flag.String("input", "-", "Puzzle input file (- for stdin)")
	partFlag := flag.String("part", "1", "Which answer to print: 1 (cells visited) or 2 (loop placements)")
	workers := flag.Int("workers", -1, "Concurrent simulations for part 2 (-1 to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(os.Getenv("APP_ENV")); err != nil {
		log.Fatal().Err(err).Msg("Failed to load environment config")
	}
	cfg := config.Get()

	if *workers == -1 {
		*workers = cfg.Solver.Workers
	}
	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}

	// Answers go to stdout, logs to stderr.
	logging.Setup(os.Stderr, *logLevel, cfg.Logging.Format)

	part, err := solver.ParsePart(*partFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid part")
	}

	input, err := readInput(*inputPath)
	if err != nil {
		log.Fatal().Err(err).Str("input", *inputPath).Msg("Failed to read puzzle input")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	answer, err := newSolver(cfg, *workers).Solve(ctx, input, part)
	if err != nil {
		log.Fatal().Err(err).Stringer("part", part).Msg("Failed to solve puzzle")
	}
	fmt.Println(answer)
}

func newSolver(cfg *config.Config, workers int) *solver.Solver {
	opts := solver.Options{Workers: workers, Logger: log.Logger}
	if cfg.Solver.TraceEvents {
		bus := events.NewEventBus()
		bus.Subscribe(subscribers.NewLoggerSubscriber("cli-trace", log.Logger, zerolog.DebugLevel))
		opts.Publisher = bus
	}
	return solver.New(opts)
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
