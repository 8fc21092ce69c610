package evalrpc

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

// UnaryLogger returns an interceptor that logs one record per call.
//
// Successful calls log at Debug, caller errors (bad input, unknown
// function) at Info, everything else at Error.
func UnaryLogger(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)

		level := slog.LevelError
		switch code {
		case codes.OK:
			level = slog.LevelDebug
		case codes.InvalidArgument, codes.OutOfRange, codes.Unimplemented:
			level = slog.LevelInfo
		}
		attrs := []slog.Attr{
			slog.String("method", info.FullMethod),
			slog.String("code", code.String()),
			slog.Duration("elapsed", time.Since(start)),
		}
		if m, ok := req.(proto.Message); ok {
			attrs = append(attrs, slog.Int("request_bytes", proto.Size(m)))
		}
		if err != nil {
			attrs = append(attrs, slog.String("error", status.Convert(err).Message()))
		}
		logger.LogAttrs(ctx, level, "scalar call", attrs...)
		return resp, err
	}
}
