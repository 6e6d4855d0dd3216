package patrolserver

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "guardpatrol.v1.PatrolService"

// Full method names
const (
	CountVisitedMethod        = "/" + ServiceName + "/CountVisited"
	CountLoopPlacementsMethod = "/" + ServiceName + "/CountLoopPlacements"
)

// PatrolServiceServer is implemented by the patrol service. Requests carry
// the raw grid text; responses carry the answer.
type PatrolServiceServer interface {
	CountVisited(context.Context, *wrapperspb.StringValue) (*wrapperspb.Int64Value, error)
	CountLoopPlacements(context.Context, *wrapperspb.StringValue) (*wrapperspb.Int64Value, error)
}

// RegisterPatrolServiceServer registers srv on s
func RegisterPatrolServiceServer(s grpc.ServiceRegistrar, srv PatrolServiceServer) {
	s.RegisterService(&PatrolServiceDesc, srv)
}

// PatrolServiceDesc describes the service to grpc. The messages are protobuf
// well-known wrapper types, so no generated code is involved.
var PatrolServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PatrolServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CountVisited",
			Handler: unaryHandler(CountVisitedMethod, func(srv PatrolServiceServer) unaryFunc {
				return srv.CountVisited
			}),
		},
		{
			MethodName: "CountLoopPlacements",
			Handler: unaryHandler(CountLoopPlacementsMethod, func(srv PatrolServiceServer) unaryFunc {
				return srv.CountLoopPlacements
			}),
		},
	},
	Streams: []grpc.StreamDesc{},
}

type unaryFunc func(context.Context, *wrapperspb.StringValue) (*wrapperspb.Int64Value, error)

func unaryHandler(fullMethod string, pick func(PatrolServiceServer) unaryFunc) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(wrapperspb.StringValue)
		if err := dec(in); err != nil {
			return nil, err
		}
		call := pick(srv.(PatrolServiceServer))
		if interceptor == nil {
			return call(ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(ctx, req.(*wrapperspb.StringValue))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Client calls a remote PatrolService
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps an existing connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// CountVisited returns the number of distinct cells the guard visits
func (c *Client) CountVisited(ctx context.Context, grid string, opts ...grpc.CallOption) (int64, error) {
	return c.invoke(ctx, CountVisitedMethod, grid, opts...)
}

// CountLoopPlacements returns the number of single obstructions that trap the guard
func (c *Client) CountLoopPlacements(ctx context.Context, grid string, opts ...grpc.CallOption) (int64, error) {
	return c.invoke(ctx, CountLoopPlacementsMethod, grid, opts...)
}

func (c *Client) invoke(ctx context.Context, method, grid string, opts ...grpc.CallOption) (int64, error) {
	out := new(wrapperspb.Int64Value)
	if err := c.cc.Invoke(ctx, method, wrapperspb.String(grid), out, opts...); err != nil {
		return 0, err
	}
	return out.GetValue(), nil
}
