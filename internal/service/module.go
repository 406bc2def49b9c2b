package service

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/strelka-io/chatserver/config"
	"github.com/strelka-io/chatserver/internal/adapter/pubsub"
	"github.com/strelka-io/chatserver/internal/domain/directory"
	"github.com/strelka-io/chatserver/internal/domain/room"
	"github.com/strelka-io/chatserver/internal/metrics"
)

var Module = fx.Module("service",
	fx.Provide(
		fx.Annotate(
			func(
				cfg *config.Config,
				dir *directory.Directory,
				rm *room.Room,
				dispatcher pubsub.Dispatcher,
				collector metrics.Collector,
				logger *slog.Logger,
			) *ChatService {
				return NewChatService(dir, rm, dispatcher, collector, logger, cfg.Chat.SendBuffer)
			},
			fx.As(new(Chatter)),
		),
	),
)
