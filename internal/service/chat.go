// Package service implements the chat server's application logic on top
// of the directory and room domain types. Handlers talk to the Chatter
// interface; the service publishes domain events and records metrics as
// side effects so the transport layer stays thin.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/strelka-io/chatserver/internal/adapter/pubsub"
	"github.com/strelka-io/chatserver/internal/chatpb"
	"github.com/strelka-io/chatserver/internal/domain/directory"
	"github.com/strelka-io/chatserver/internal/domain/event"
	"github.com/strelka-io/chatserver/internal/domain/room"
	"github.com/strelka-io/chatserver/internal/metrics"
)

// Chatter is the handler-facing contract of the chat service.
type Chatter interface {
	// Login attempts to bring name online. The outcome distinguishes
	// invalid names, names already online and success.
	Login(ctx context.Context, name string) directory.Outcome
	// Logout flips name offline. Unknown names are a no-op.
	Logout(ctx context.Context, name string)
	// OnlineUsers returns the names currently online, sorted.
	OnlineUsers() []string
	// HasUser reports whether name has ever logged in successfully.
	HasUser(name string) bool

	// QueueMessage appends text from sender to recipient's mailbox,
	// formatted for later delivery. Returns directory.ErrMailboxFull
	// when the recipient's mailbox is bounded and at capacity.
	QueueMessage(ctx context.Context, sender, recipient, text string) error
	// Mailbox exposes recipient's mailbox for draining. ok is false for
	// names never seen by the directory.
	Mailbox(user string) (*directory.Mailbox, bool)
	// NoteDelivered records that n mailbox messages reached user.
	NoteDelivered(ctx context.Context, user string, n int)

	// JoinChat creates an endpoint bounded by ctx and adds it to the
	// room.
	JoinChat(ctx context.Context) *room.Endpoint
	// BindChatUser attaches name to ep on the first inbound line and
	// back-references the endpoint from the user's directory record.
	BindChatUser(ctx context.Context, ep *room.Endpoint, name string)
	// LeaveChat removes ep from the room and closes its send path.
	LeaveChat(ctx context.Context, ep *room.Endpoint)
	// BroadcastChat fans msg out to every endpoint except ep.
	BroadcastChat(ctx context.Context, ep *room.Endpoint, msg *chatpb.ChatMessage)
}

// ChatService is the production Chatter.
type ChatService struct {
	dir        *directory.Directory
	room       *room.Room
	dispatcher pubsub.Dispatcher
	collector  metrics.Collector
	logger     *slog.Logger

	sendBuffer int
}

func NewChatService(
	dir *directory.Directory,
	rm *room.Room,
	dispatcher pubsub.Dispatcher,
	collector metrics.Collector,
	logger *slog.Logger,
	sendBuffer int,
) *ChatService {
	return &ChatService{
		dir:        dir,
		room:       rm,
		dispatcher: dispatcher,
		collector:  collector,
		logger:     logger.With(slog.String("component", "service")),
		sendBuffer: sendBuffer,
	}
}

func (s *ChatService) Login(ctx context.Context, name string) directory.Outcome {
	outcome, _ := s.dir.Login(name)
	s.collector.LoginAttempt(outcome.String())

	switch outcome {
	case directory.OutcomeSuccess:
		s.collector.SessionOpened()
		s.publish(ctx, event.New(event.KindLoggedIn, name))
		s.logger.InfoContext(ctx, "user logged in", slog.String("user", name))
	default:
		ev := event.New(event.KindLoginRejected, name)
		ev.Detail = outcome.String()
		s.publish(ctx, ev)
		s.logger.InfoContext(ctx, "login rejected",
			slog.String("user", name),
			slog.String("outcome", outcome.String()),
		)
	}
	return outcome
}

func (s *ChatService) Logout(ctx context.Context, name string) {
	rec, ok := s.dir.Lookup(name)
	wasOnline := ok && rec.Online()
	s.dir.Logout(name)
	if wasOnline {
		s.collector.SessionClosed()
	}
	s.publish(ctx, event.New(event.KindLoggedOut, name))
	s.logger.InfoContext(ctx, "user logged out", slog.String("user", name))
}

func (s *ChatService) OnlineUsers() []string {
	names := s.dir.SnapshotOnline()
	sort.Strings(names)
	return names
}

func (s *ChatService) HasUser(name string) bool {
	_, ok := s.dir.Lookup(name)
	return ok
}

func (s *ChatService) QueueMessage(ctx context.Context, sender, recipient, text string) error {
	rec, ok := s.dir.Lookup(recipient)
	if !ok {
		return fmt.Errorf("queue message: unknown recipient %q", recipient)
	}

	if err := rec.Mailbox().Append(fmt.Sprintf("Message from %s: %s", sender, text)); err != nil {
		s.collector.MailboxOverflow()
		s.logger.WarnContext(ctx, "mailbox overflow",
			slog.String("recipient", recipient),
			slog.String("sender", sender),
		)
		return err
	}

	s.collector.MessageQueued()
	ev := event.New(event.KindMessageQueued, sender)
	ev.Recipient = recipient
	s.publish(ctx, ev)
	return nil
}

func (s *ChatService) Mailbox(user string) (*directory.Mailbox, bool) {
	rec, ok := s.dir.Lookup(user)
	if !ok {
		return nil, false
	}
	return rec.Mailbox(), true
}

func (s *ChatService) NoteDelivered(ctx context.Context, user string, n int) {
	if n <= 0 {
		return
	}
	for i := 0; i < n; i++ {
		s.collector.MessageDelivered()
	}
	ev := event.New(event.KindMailboxDrained, user)
	ev.Count = n
	s.publish(ctx, ev)
}

func (s *ChatService) JoinChat(ctx context.Context) *room.Endpoint {
	ep := room.NewEndpoint(ctx, s.sendBuffer)
	s.room.Join(ep)
	s.collector.ChatJoined()
	s.publish(ctx, event.New(event.KindChatJoined, ""))
	s.logger.DebugContext(ctx, "chat endpoint joined",
		slog.String("endpoint_id", ep.ID().String()),
		slog.Int("room_size", s.room.Size()),
	)
	return ep
}

func (s *ChatService) BindChatUser(ctx context.Context, ep *room.Endpoint, name string) {
	if name == "" || ep.User() != "" {
		return
	}
	ep.BindUser(name)
	if rec, ok := s.dir.Lookup(name); ok {
		rec.SetChatEndpoint(ep)
	}
	s.logger.DebugContext(ctx, "chat endpoint bound",
		slog.String("endpoint_id", ep.ID().String()),
		slog.String("user", name),
	)
}

func (s *ChatService) LeaveChat(ctx context.Context, ep *room.Endpoint) {
	s.room.Leave(ep.ID())
	ep.Close()
	if name := ep.User(); name != "" {
		if rec, ok := s.dir.Lookup(name); ok {
			rec.ClearChatEndpoint(ep)
		}
	}
	s.collector.ChatLeft()
	ev := event.New(event.KindChatLeft, ep.User())
	s.publish(ctx, ev)
	s.logger.DebugContext(ctx, "chat endpoint left",
		slog.String("endpoint_id", ep.ID().String()),
		slog.Uint64("dropped", ep.Dropped()),
	)
}

func (s *ChatService) BroadcastChat(ctx context.Context, ep *room.Endpoint, msg *chatpb.ChatMessage) {
	s.BindChatUser(ctx, ep, msg.GetUser())

	delivered, dropped := s.room.Broadcast(ep.ID(), msg)
	s.collector.ChatBroadcast(delivered, dropped)

	ev := event.New(event.KindChatLine, msg.GetUser())
	ev.Count = delivered
	s.publish(ctx, ev)

	if dropped > 0 {
		s.logger.WarnContext(ctx, "chat line dropped toward slow endpoints",
			slog.String("user", msg.GetUser()),
			slog.Int("dropped", dropped),
		)
	}
}

// publish is best-effort: a full bus must not stall protocol handling.
func (s *ChatService) publish(ctx context.Context, ev event.Event) {
	if err := s.dispatcher.Publish(ctx, ev); err != nil {
		s.logger.WarnContext(ctx, "event publish failed",
			slog.String("kind", string(ev.Kind)),
			slog.Any("error", err),
		)
	}
}
