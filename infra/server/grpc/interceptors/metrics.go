package interceptors

import (
	"context"

	"google.golang.org/grpc"

	"github.com/strelka-io/chatserver/internal/metrics"
)

// UnaryMetrics counts unary RPCs by full method name.
func UnaryMetrics(collector metrics.Collector) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		collector.RPCStarted(info.FullMethod)
		defer collector.RPCFinished(info.FullMethod)
		return handler(ctx, req)
	}
}

// StreamMetrics counts streaming RPCs by full method name.
func StreamMetrics(collector metrics.Collector) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		collector.RPCStarted(info.FullMethod)
		defer collector.RPCFinished(info.FullMethod)
		return handler(srv, ss)
	}
}
