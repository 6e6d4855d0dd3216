package patrolserver

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/mitchelldurbincs/GuardPatrol/internal/patrol/core"
	"github.com/mitchelldurbincs/GuardPatrol/internal/patrol/solver"
)

// Server implements PatrolServiceServer on top of a solver
type Server struct {
	solver        *solver.Solver
	maxInputBytes int
	logger        zerolog.Logger
}

// NewServer creates a new patrol server. Requests larger than maxInputBytes
// are rejected before parsing.
func NewServer(s *solver.Solver, maxInputBytes int) *Server {
	return &Server{
		solver:        s,
		maxInputBytes: maxInputBytes,
		logger:        log.With().Str("component", "patrol_server").Logger(),
	}
}

// CountVisited answers part one
func (s *Server) CountVisited(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.Int64Value, error) {
	return s.solve(ctx, req, solver.PartOne)
}

// CountLoopPlacements answers part two
func (s *Server) CountLoopPlacements(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.Int64Value, error) {
	return s.solve(ctx, req, solver.PartTwo)
}

func (s *Server) solve(ctx context.Context, req *wrapperspb.StringValue, part solver.Part) (*wrapperspb.Int64Value, error) {
	grid := req.GetValue()
	if s.maxInputBytes > 0 && len(grid) > s.maxInputBytes {
		return nil, status.Errorf(codes.InvalidArgument, "grid is %d bytes, limit is %d", len(grid), s.maxInputBytes)
	}

	answer, err := s.solver.SolveCount(ctx, grid, part)
	if err != nil {
		s.logger.Debug().Err(err).Stringer("part", part).Msg("Solve failed")
		return nil, toStatus(err)
	}
	return wrapperspb.Int64(int64(answer)), nil
}

// toStatus maps solver errors onto gRPC status codes
func toStatus(err error) error {
	switch {
	case errors.Is(err, core.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, core.ErrInvalidState):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// Register adds the patrol service and a health service to grpcServer and
// marks both as serving.
func Register(grpcServer *grpc.Server, srv *Server) *health.Server {
	RegisterPatrolServiceServer(grpcServer, srv)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	return healthServer
}

// SetNotServing flips the health status during shutdown
func SetNotServing(healthServer *health.Server) {
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
}
