package cmd

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/strelka-io/chatserver/config"
	otelinfra "github.com/strelka-io/chatserver/infra/otel"
	grpcsrv "github.com/strelka-io/chatserver/infra/server/grpc"
	httpsrv "github.com/strelka-io/chatserver/infra/server/http"
	"github.com/strelka-io/chatserver/internal/adapter/pubsub"
	"github.com/strelka-io/chatserver/internal/domain/directory"
	"github.com/strelka-io/chatserver/internal/domain/room"
	"github.com/strelka-io/chatserver/internal/handler/events"
	grpchandler "github.com/strelka-io/chatserver/internal/handler/grpc"
	"github.com/strelka-io/chatserver/internal/metrics"
	"github.com/strelka-io/chatserver/internal/service"
)

func NewApp(cfg *config.Config) *fx.App {
	return fx.New(
		fx.Provide(
			func() *config.Config { return cfg },
			ProvideLogger,
			ProvideWatermillLogger,
		),
		fx.Invoke(func(cfg *config.Config, logger *slog.Logger, level *slog.LevelVar) {
			cfg.Watch(logger, level)
		}),
		metrics.Module,
		pubsub.Module,
		directory.Module,
		room.Module,
		service.Module,
		events.Module,
		grpchandler.Module,
		grpcsrv.Module,
		httpsrv.Module,
		otelinfra.Module,
	)
}
