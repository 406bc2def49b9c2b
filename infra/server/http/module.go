package httpsrv

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/fx"

	"github.com/strelka-io/chatserver/config"
)

var Module = fx.Module("http-server",
	fx.Provide(NewRouter),
	fx.Invoke(func(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger, router chi.Router) {
		srv := &http.Server{
			Addr:              cfg.HTTP.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		}

		lc.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				lis, err := net.Listen("tcp", srv.Addr)
				if err != nil {
					return err
				}
				logger.Info("ops http listening", slog.String("addr", lis.Addr().String()))
				go func() {
					if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
						logger.Error("http serve stopped", slog.Any("error", err))
					}
				}()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return srv.Shutdown(ctx)
			},
		})
	}),
)
