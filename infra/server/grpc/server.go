// Package grpcsrv wires the gRPC server: codec, interceptor chain,
// optional tracing stats handler, and the listen/serve lifecycle.
package grpcsrv

import (
	"log/slog"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/strelka-io/chatserver/config"
	"github.com/strelka-io/chatserver/infra/server/grpc/interceptors"
	"github.com/strelka-io/chatserver/internal/chatpb"
	"github.com/strelka-io/chatserver/internal/metrics"
)

// Server wraps *grpc.Server so fx consumers depend on this package's
// type rather than the grpc one.
type Server struct {
	*grpc.Server
}

func New(cfg *config.Config, logger *slog.Logger, collector metrics.Collector) *Server {
	log := logger.With(slog.String("component", "grpc"))

	recoveryHandler := recovery.WithRecoveryHandler(func(p any) error {
		log.Error("rpc handler panic", slog.Any("panic", p))
		return status.Errorf(codes.Internal, "internal error")
	})

	logOpts := []logging.Option{
		logging.WithLogOnEvents(logging.StartCall, logging.FinishCall),
	}

	opts := []grpc.ServerOption{
		grpc.ForceServerCodecV2(chatpb.Codec{}),
		grpc.ChainUnaryInterceptor(
			interceptors.UnaryMetrics(collector),
			logging.UnaryServerInterceptor(interceptors.SlogLogger(log), logOpts...),
			recovery.UnaryServerInterceptor(recoveryHandler),
		),
		grpc.ChainStreamInterceptor(
			interceptors.StreamMetrics(collector),
			logging.StreamServerInterceptor(interceptors.SlogLogger(log), logOpts...),
			recovery.StreamServerInterceptor(recoveryHandler),
		),
	}
	if cfg.Tracing.Enabled {
		opts = append(opts, grpc.StatsHandler(otelgrpc.NewServerHandler()))
	}

	return &Server{Server: grpc.NewServer(opts...)}
}
