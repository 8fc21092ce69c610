package evalrpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"xdao.co/varbin/function"
)

// Server exposes a function.Catalog over the Scalar gRPC service.
type Server struct {
	Catalog *function.Catalog
}

func (s *Server) Eval(_ context.Context, name string, arg function.Value) (function.Value, error) {
	if s == nil || s.Catalog == nil {
		return function.Value{}, status.Error(codes.FailedPrecondition, "missing catalog")
	}
	out, err := s.Catalog.Invoke(name, arg)
	if err != nil {
		return function.Value{}, mapErr(err)
	}
	return out, nil
}
