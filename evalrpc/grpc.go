package evalrpc

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"xdao.co/varbin/function"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "xdao.varbin.evalrpc.v1.Scalar"

// ScalarServer is the server API for the Scalar gRPC service.
//
// The service has one unary method per catalog overload, named by
// MethodName. Requests and responses are protobuf well-known wrapper types
// chosen by the overload's declared types, so this package does not require
// a protoc/codegen toolchain:
//
//	varbinary -> BytesValue
//	varchar   -> BytesValue
//	bigint    -> Int64Value
//	integer   -> Int32Value
type ScalarServer interface {
	Eval(ctx context.Context, name string, arg function.Value) (function.Value, error)
}

// MethodName returns the gRPC method name of an overload, e.g.
// from_hex(varchar) -> FromHexVarchar.
func MethodName(s function.Scalar) string {
	return camel(s.Name) + camel(string(s.Arg))
}

// FullMethod returns the full gRPC method path of an overload.
func FullMethod(s function.Scalar) string {
	return "/" + ServiceName + "/" + MethodName(s)
}

func camel(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// ServiceDesc builds the grpc.ServiceDesc for every overload in c.
func ServiceDesc(c *function.Catalog) grpc.ServiceDesc {
	list := c.List(function.CategoryAll)
	methods := make([]grpc.MethodDesc, 0, len(list))
	for _, s := range list {
		methods = append(methods, grpc.MethodDesc{MethodName: MethodName(s), Handler: handlerFor(s)})
	}
	return grpc.ServiceDesc{
		ServiceName: ServiceName,
		HandlerType: (*ScalarServer)(nil),
		Methods:     methods,
		Streams:     []grpc.StreamDesc{},
		Metadata:    "scalar.proto",
	}
}

// RegisterScalarServer registers the Scalar service for the overloads in c.
func RegisterScalarServer(s grpc.ServiceRegistrar, c *function.Catalog, srv ScalarServer) {
	desc := ServiceDesc(c)
	s.RegisterService(&desc, srv)
}

func handlerFor(sc function.Scalar) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	fullMethod := FullMethod(sc)
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := newMessage(sc.Arg)
		if err := dec(in); err != nil {
			return nil, err
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			arg, err := fromMessage(sc.Arg, req.(proto.Message))
			if err != nil {
				return nil, status.Error(codes.InvalidArgument, err.Error())
			}
			out, err := srv.(ScalarServer).Eval(ctx, sc.Name, arg)
			if err != nil {
				return nil, err
			}
			m, err := toMessage(out)
			if err != nil {
				return nil, status.Error(codes.Internal, err.Error())
			}
			return m, nil
		}
		if interceptor == nil {
			return handler(ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, in, info, handler)
	}
}
