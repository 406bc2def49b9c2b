package events

import (
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
)

// LoggingMiddleware reports handler latency and outcome per message.
func LoggingMiddleware(logger *slog.Logger) message.HandlerMiddleware {
	return func(h message.HandlerFunc) message.HandlerFunc {
		return func(msg *message.Message) ([]*message.Message, error) {
			start := time.Now()
			msgs, err := h(msg)

			logger.Debug("event handled",
				slog.String("msg_id", msg.UUID),
				slog.String("kind", msg.Metadata.Get("kind")),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.Bool("success", err == nil),
			)
			return msgs, err
		}
	}
}
