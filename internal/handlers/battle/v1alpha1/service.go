package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "creatures.api.v1alpha1.BattleService"

// Full method names, as used by clients and interceptors
const (
	BattleFullMethodName          = "/" + ServiceName + "/Battle"
	GetCreatureFullMethodName     = "/" + ServiceName + "/GetCreature"
	ListCreaturesFullMethodName   = "/" + ServiceName + "/ListCreatures"
	SearchCreaturesFullMethodName = "/" + ServiceName + "/SearchCreatures"
)

// BattleServiceServer is the server API. Requests and responses are
// google.protobuf.Struct messages.
type BattleServiceServer interface {
	Battle(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetCreature(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListCreatures(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	SearchCreatures(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// RegisterBattleServiceServer registers srv with the gRPC server
func RegisterBattleServiceServer(s grpc.ServiceRegistrar, srv BattleServiceServer) {
	s.RegisterService(&BattleServiceDesc, srv)
}

type unaryMethod func(srv BattleServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(BattleServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(BattleServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// BattleServiceDesc describes the service for grpc.Server.RegisterService
var BattleServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BattleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Battle",
			Handler: unaryHandler(BattleFullMethodName, func(srv BattleServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
				return srv.Battle(ctx, req)
			}),
		},
		{
			MethodName: "GetCreature",
			Handler: unaryHandler(GetCreatureFullMethodName, func(srv BattleServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
				return srv.GetCreature(ctx, req)
			}),
		},
		{
			MethodName: "ListCreatures",
			Handler: unaryHandler(ListCreaturesFullMethodName, func(srv BattleServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
				return srv.ListCreatures(ctx, req)
			}),
		},
		{
			MethodName: "SearchCreatures",
			Handler: unaryHandler(SearchCreaturesFullMethodName, func(srv BattleServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
				return srv.SearchCreatures(ctx, req)
			}),
		},
	},
	Streams: []grpc.StreamDesc{},
}

// BattleServiceClient is the client API for BattleService
type BattleServiceClient interface {
	Battle(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetCreature(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListCreatures(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SearchCreatures(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type battleServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewBattleServiceClient creates a client over an existing connection
func NewBattleServiceClient(cc grpc.ClientConnInterface) BattleServiceClient {
	return &battleServiceClient{cc: cc}
}

func (c *battleServiceClient) invoke(ctx context.Context, method string, req *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *battleServiceClient) Battle(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, BattleFullMethodName, req, opts)
}

func (c *battleServiceClient) GetCreature(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, GetCreatureFullMethodName, req, opts)
}

func (c *battleServiceClient) ListCreatures(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, ListCreaturesFullMethodName, req, opts)
}

func (c *battleServiceClient) SearchCreatures(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, SearchCreaturesFullMethodName, req, opts)
}
