package grpcsrv

import (
	"context"
	"log/slog"
	"net"

	"go.uber.org/fx"

	"github.com/strelka-io/chatserver/config"
)

var Module = fx.Module("grpc-server",
	fx.Provide(New),
	fx.Invoke(func(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger, srv *Server) {
		lc.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				lis, err := net.Listen("tcp", cfg.ListenAddr)
				if err != nil {
					return err
				}
				logger.Info("chat server listening",
					slog.String("addr", lis.Addr().String()),
				)
				go func() {
					if err := srv.Serve(lis); err != nil {
						logger.Error("grpc serve stopped", slog.Any("error", err))
					}
				}()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				stopped := make(chan struct{})
				go func() {
					srv.GracefulStop()
					close(stopped)
				}()
				select {
				case <-stopped:
					return nil
				case <-ctx.Done():
					srv.Stop()
					return ctx.Err()
				}
			},
		})
	}),
)
