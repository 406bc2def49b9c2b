// Package interceptors carries the server-side gRPC interceptors: slog
// bridging for the logging middleware and per-RPC metrics.
package interceptors

import (
	"context"
	"log/slog"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
)

// SlogLogger adapts *slog.Logger to the logging middleware's interface.
func SlogLogger(l *slog.Logger) logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
