// Package v1alpha1 exposes the grid game over gRPC. Messages travel as
// google.protobuf.Struct documents keyed by snake_case field names.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "champion.grid.v1alpha1.GridService"

// Full method names
const (
	GridService_CreateGame_FullMethodName     = "/" + ServiceName + "/CreateGame"
	GridService_GetGame_FullMethodName        = "/" + ServiceName + "/GetGame"
	GridService_SubmitGuess_FullMethodName    = "/" + ServiceName + "/SubmitGuess"
	GridService_GetDaily_FullMethodName       = "/" + ServiceName + "/GetDaily"
	GridService_VerifyDaily_FullMethodName    = "/" + ServiceName + "/VerifyDaily"
	GridService_PreviewGrid_FullMethodName    = "/" + ServiceName + "/PreviewGrid"
	GridService_ValidChampions_FullMethodName = "/" + ServiceName + "/ValidChampions"
	GridService_ListCategories_FullMethodName = "/" + ServiceName + "/ListCategories"
	GridService_ListChampions_FullMethodName  = "/" + ServiceName + "/ListChampions"
)

// GridServiceServer is the server API for GridService
type GridServiceServer interface {
	CreateGame(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetGame(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SubmitGuess(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetDaily(context.Context, *structpb.Struct) (*structpb.Struct, error)
	VerifyDaily(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PreviewGrid(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ValidChampions(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCategories(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListChampions(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterGridServiceServer registers srv on s
func RegisterGridServiceServer(s grpc.ServiceRegistrar, srv GridServiceServer) {
	s.RegisterService(&GridService_ServiceDesc, srv)
}

type unaryCall func(GridServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// unaryHandler adapts one service method to grpc's handler signature
func unaryHandler(fullMethod string, call unaryCall) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(GridServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(GridServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// GridService_ServiceDesc is the grpc.ServiceDesc for GridService
var GridService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GridServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateGame",
			Handler:    unaryHandler(GridService_CreateGame_FullMethodName, GridServiceServer.CreateGame),
		},
		{
			MethodName: "GetGame",
			Handler:    unaryHandler(GridService_GetGame_FullMethodName, GridServiceServer.GetGame),
		},
		{
			MethodName: "SubmitGuess",
			Handler:    unaryHandler(GridService_SubmitGuess_FullMethodName, GridServiceServer.SubmitGuess),
		},
		{
			MethodName: "GetDaily",
			Handler:    unaryHandler(GridService_GetDaily_FullMethodName, GridServiceServer.GetDaily),
		},
		{
			MethodName: "VerifyDaily",
			Handler:    unaryHandler(GridService_VerifyDaily_FullMethodName, GridServiceServer.VerifyDaily),
		},
		{
			MethodName: "PreviewGrid",
			Handler:    unaryHandler(GridService_PreviewGrid_FullMethodName, GridServiceServer.PreviewGrid),
		},
		{
			MethodName: "ValidChampions",
			Handler:    unaryHandler(GridService_ValidChampions_FullMethodName, GridServiceServer.ValidChampions),
		},
		{
			MethodName: "ListCategories",
			Handler:    unaryHandler(GridService_ListCategories_FullMethodName, GridServiceServer.ListCategories),
		},
		{
			MethodName: "ListChampions",
			Handler:    unaryHandler(GridService_ListChampions_FullMethodName, GridServiceServer.ListChampions),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "champion/grid/v1alpha1/grid.proto",
}

// GridServiceClient is the client API for GridService
type GridServiceClient interface {
	CreateGame(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetGame(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SubmitGuess(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetDaily(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	VerifyDaily(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	PreviewGrid(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ValidChampions(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListCategories(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListChampions(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type gridServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGridServiceClient creates a client on cc
func NewGridServiceClient(cc grpc.ClientConnInterface) GridServiceClient {
	return &gridServiceClient{cc}
}

func (c *gridServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gridServiceClient) CreateGame(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GridService_CreateGame_FullMethodName, in, opts...)
}

func (c *gridServiceClient) GetGame(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GridService_GetGame_FullMethodName, in, opts...)
}

func (c *gridServiceClient) SubmitGuess(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GridService_SubmitGuess_FullMethodName, in, opts...)
}

func (c *gridServiceClient) GetDaily(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GridService_GetDaily_FullMethodName, in, opts...)
}

func (c *gridServiceClient) VerifyDaily(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GridService_VerifyDaily_FullMethodName, in, opts...)
}

func (c *gridServiceClient) PreviewGrid(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GridService_PreviewGrid_FullMethodName, in, opts...)
}

func (c *gridServiceClient) ValidChampions(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GridService_ValidChampions_FullMethodName, in, opts...)
}

func (c *gridServiceClient) ListCategories(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GridService_ListCategories_FullMethodName, in, opts...)
}

func (c *gridServiceClient) ListChampions(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GridService_ListChampions_FullMethodName, in, opts...)
}
