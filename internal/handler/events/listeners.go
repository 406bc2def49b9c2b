package events

import (
	"encoding/json"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/strelka-io/chatserver/internal/domain/event"
	"github.com/strelka-io/chatserver/internal/metrics"
)

// AuditHandler consumes the domain event stream and turns it into the
// audit log plus bus-level metrics. Domain counters are recorded at the
// service layer; here we only account for observed events per topic.
type AuditHandler struct {
	logger    *slog.Logger
	collector metrics.Collector
}

func NewAuditHandler(logger *slog.Logger, collector metrics.Collector) *AuditHandler {
	return &AuditHandler{
		logger:    logger.With(slog.String("component", "audit")),
		collector: collector,
	}
}

func (h *AuditHandler) OnPresence(msg *message.Message) error {
	ev, err := h.decode(msg)
	if err != nil {
		return nil // malformed events are terminal, not retryable
	}
	h.collector.EventObserved(event.TopicPresence)

	h.logger.Info("presence",
		slog.String("kind", string(ev.Kind)),
		slog.String("user", ev.User),
		slog.String("detail", ev.Detail),
	)
	return nil
}

func (h *AuditHandler) OnMailbox(msg *message.Message) error {
	ev, err := h.decode(msg)
	if err != nil {
		return nil
	}
	h.collector.EventObserved(event.TopicMailbox)

	h.logger.Info("mailbox",
		slog.String("kind", string(ev.Kind)),
		slog.String("user", ev.User),
		slog.String("recipient", ev.Recipient),
		slog.Int("count", ev.Count),
	)
	return nil
}

func (h *AuditHandler) OnRoom(msg *message.Message) error {
	ev, err := h.decode(msg)
	if err != nil {
		return nil
	}
	h.collector.EventObserved(event.TopicRoom)

	// Chat content stays at debug; joins and leaves are operational.
	if ev.Kind == event.KindChatLine {
		h.logger.Debug("chat line",
			slog.String("user", ev.User),
			slog.Int("delivered", ev.Count),
		)
		return nil
	}
	h.logger.Info("room",
		slog.String("kind", string(ev.Kind)),
		slog.String("user", ev.User),
	)
	return nil
}

func (h *AuditHandler) decode(msg *message.Message) (event.Event, error) {
	var ev event.Event
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		h.logger.Error("event decode failed",
			slog.String("msg_id", msg.UUID),
			slog.Any("err", err),
		)
		return event.Event{}, err
	}
	return ev, nil
}
