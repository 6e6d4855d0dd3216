package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"

	"github.com/mitchelldurbincs/GuardPatrol/internal/config"
	"github.com/mitchelldurbincs/GuardPatrol/internal/grpc/patrolserver"
	"github.com/mitchelldurbincs/GuardPatrol/internal/logging"
	"github.com/mitchelldurbincs/GuardPatrol/internal/monitoring"
	"github.com/mitchelldurbincs/GuardPatrol/internal/patrol/events"
	"github.com/mitchelldurbincs/GuardPatrol/internal/patrol/events/subscribers"
	"github.com/mitchelldurbincs/GuardPatrol/internal/patrol/solver"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	port := flag.Int("port", -1, "The server port (-1 to use config default)")
	host := flag.String("host", "", "The server host (empty to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	workers := flag.Int("workers", -1, "Concurrent simulations per request (-1 to use config default)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(os.Getenv("APP_ENV")); err != nil {
		log.Fatal().Err(err).Msg("Failed to load environment config")
	}
	cfg := config.Get()

	if *port == -1 {
		*port = cfg.Server.Port
	}
	if *host == "" {
		*host = cfg.Server.Host
	}
	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	if *workers == -1 {
		*workers = cfg.Solver.Workers
	}

	logging.Setup(os.Stdout, *logLevel, cfg.Logging.Format)

	// Only the log level is hot-reloadable; listener and pool settings need a restart.
	if config.ConfigFilePath() != "" {
		config.WatchConfig(func(c *config.Config) {
			zerolog.SetGlobalLevel(logging.ParseLevel(c.Logging.Level))
			log.Info().Str("log_level", c.Logging.Level).Msg("Config reloaded")
		})
	}

	log.Info().
		Int("port", *port).
		Str("host", *host).
		Int("workers", *workers).
		Int("max_input_bytes", cfg.Server.MaxInputBytes).
		Msg("Starting gRPC patrol server")

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%d", *host, *port))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to listen")
	}

	opts := solver.Options{Workers: *workers, Logger: log.Logger}
	if cfg.Solver.TraceEvents {
		bus := events.NewEventBus()
		bus.Subscribe(subscribers.NewLoggerSubscriber("server-trace", log.Logger, zerolog.DebugLevel))
		opts.Publisher = bus
	}

	grpcServer := grpc.NewServer(patrolserver.ServerOptions()...)
	healthServer := patrolserver.Register(grpcServer,
		patrolserver.NewServer(solver.New(opts), cfg.Server.MaxInputBytes))

	if cfg.Server.MonitorInterval > 0 {
		monitor := monitoring.NewGoroutineMonitor(
			time.Duration(cfg.Server.MonitorInterval)*time.Second, cfg.Server.GoroutineAlert)
		monitor.Start()
		defer monitor.Stop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

		patrolserver.SetNotServing(healthServer)

		// Give ongoing requests time to complete
		time.Sleep(time.Duration(cfg.Server.GracefulShutdownDelay) * time.Second)

		log.Info().Msg("Gracefully stopping gRPC server")
		grpcServer.GracefulStop()
		cancel()
	}()

	log.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatal().Err(err).Msg("Failed to serve")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Server shutdown complete")
}
