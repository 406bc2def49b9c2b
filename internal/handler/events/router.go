package events

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	"github.com/strelka-io/chatserver/internal/adapter/pubsub"
	"github.com/strelka-io/chatserver/internal/domain/event"
)

func NewRouter(wmLogger watermill.LoggerAdapter) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, wmLogger)
	if err != nil {
		return nil, err
	}
	router.AddMiddleware(
		middleware.Recoverer,
		middleware.CorrelationID,
	)
	return router, nil
}

// RegisterHandlers binds one consumer per event topic.
func RegisterHandlers(router *message.Router, dispatcher pubsub.Dispatcher, h *AuditHandler, logger *slog.Logger) {
	sub := dispatcher.Subscriber()

	configs := []struct {
		name    string
		topic   string
		handler message.NoPublishHandlerFunc
	}{
		{"audit.presence", event.TopicPresence, h.OnPresence},
		{"audit.mailbox", event.TopicMailbox, h.OnMailbox},
		{"audit.room", event.TopicRoom, h.OnRoom},
	}

	for _, c := range configs {
		router.AddConsumerHandler(c.name, c.topic, sub, c.handler).AddMiddleware(
			LoggingMiddleware(logger),
		)
	}
}
