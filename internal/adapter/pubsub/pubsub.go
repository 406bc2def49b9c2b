// Package pubsub adapts the domain event stream onto a watermill
// Pub/Sub. The bus is the in-process gochannel implementation; state is
// single-process by design, so no external broker is involved.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/strelka-io/chatserver/internal/domain/event"
)

// Dispatcher is the high-level contract for outgoing domain events. It
// keeps publishers agnostic of the transport implementation.
type Dispatcher interface {
	Publish(ctx context.Context, ev event.Event) error
	Subscriber() message.Subscriber
}

type busDispatcher struct {
	bus *gochannel.GoChannel
}

func NewBus(logger watermill.LoggerAdapter) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 256,
	}, logger)
}

func NewDispatcher(bus *gochannel.GoChannel) Dispatcher {
	return &busDispatcher{bus: bus}
}

func (d *busDispatcher) Publish(ctx context.Context, ev event.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("event dispatcher: marshal failure: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	msg.Metadata.Set("kind", string(ev.Kind))

	if err := d.bus.Publish(ev.Topic(), msg); err != nil {
		return fmt.Errorf("event dispatcher: publish to %s: %w", ev.Topic(), err)
	}
	return nil
}

func (d *busDispatcher) Subscriber() message.Subscriber {
	return d.bus
}
