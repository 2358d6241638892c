package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "drawsteel.importer.v1alpha1.ImporterService"

// Method names
const (
	MethodParseMonster  = "ParseMonster"
	MethodImportMonster = "ImportMonster"
	MethodParseMalice   = "ParseMalice"
	MethodGetActor      = "GetActor"
	MethodListActors    = "ListActors"
	MethodRollPower     = "RollPower"
	MethodGetRollLog    = "GetRollLog"
	MethodClearRollLog  = "ClearRollLog"
)

// ImporterServiceServer is the server API. Every message is a
// google.protobuf.Struct holding the JSON form of the request or response.
type ImporterServiceServer interface {
	ParseMonster(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ImportMonster(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ParseMalice(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetActor(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListActors(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollPower(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetRollLog(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClearRollLog(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryFunc func(srv ImporterServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

func unary(method string, call unaryFunc) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(ImporterServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(method),
			}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(srv.(ImporterServiceServer), ctx, req.(*structpb.Struct))
			})
		},
	}
}

// ServiceDesc describes ImporterService for grpc.Server registration.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ImporterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodParseMonster, ImporterServiceServer.ParseMonster),
		unary(MethodImportMonster, ImporterServiceServer.ImportMonster),
		unary(MethodParseMalice, ImporterServiceServer.ParseMalice),
		unary(MethodGetActor, ImporterServiceServer.GetActor),
		unary(MethodListActors, ImporterServiceServer.ListActors),
		unary(MethodRollPower, ImporterServiceServer.RollPower),
		unary(MethodGetRollLog, ImporterServiceServer.GetRollLog),
		unary(MethodClearRollLog, ImporterServiceServer.ClearRollLog),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "drawsteel/importer/v1alpha1/importer.proto",
}

// RegisterImporterServiceServer registers srv on s.
func RegisterImporterServiceServer(s grpc.ServiceRegistrar, srv ImporterServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// FullMethod returns "/<service>/<method>".
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// Client calls ImporterService on a connection.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps a client connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes method with req and returns the response struct.
func (c *Client) Call(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
