package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor returns a Connect interceptor that logs every unary RPC
// and every server stream when it ends. Caller errors are logged at warn,
// everything else that fails at error.
func LoggingInterceptor() connect.Interceptor {
	return loggingInterceptor{}
}

type loggingInterceptor struct{}

func (loggingInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		start := time.Now()
		resp, err := next(ctx, req)
		logRPC(ctx, req.Spec().Procedure, false, start, err)
		return resp, err
	}
}

func (loggingInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

func (loggingInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		start := time.Now()
		err := next(ctx, conn)
		logRPC(ctx, conn.Spec().Procedure, true, start, err)
		return err
	}
}

func logRPC(ctx context.Context, procedure string, stream bool, start time.Time, err error) {
	attrs := []any{
		"procedure", procedure,
		"user_id", GetUserID(ctx), // empty if pre-auth
		"duration_ms", time.Since(start).Milliseconds(),
	}
	if stream {
		attrs = append(attrs, "stream", true)
	}

	if err == nil {
		slog.Info("RPC ok", attrs...)
		return
	}

	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		slog.Error("RPC error", append(attrs, "error", err)...)
		return
	}

	attrs = append(attrs, "code", connectErr.Code(), "error", connectErr.Message())
	switch connectErr.Code() {
	case connect.CodeInvalidArgument, connect.CodeNotFound, connect.CodeFailedPrecondition,
		connect.CodePermissionDenied, connect.CodeUnauthenticated, connect.CodeCanceled:
		slog.Warn("RPC error", attrs...)
	default:
		slog.Error("RPC error", attrs...)
	}
}
