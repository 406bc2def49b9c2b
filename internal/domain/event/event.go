// Package event defines the domain events the service publishes on the
// in-process bus: presence transitions, mailbox traffic and chat room
// activity. Listeners drive the audit log and metrics from these.
package event

import (
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindLoggedIn      Kind = "user.logged_in"
	KindLoggedOut     Kind = "user.logged_out"
	KindLoginRejected Kind = "user.login_rejected"

	KindMessageQueued  Kind = "message.queued"
	KindMailboxDrained Kind = "mailbox.drained"

	KindChatJoined Kind = "chat.joined"
	KindChatLeft   Kind = "chat.left"
	KindChatLine   Kind = "chat.line"
)

// Bus topics, one per event family.
const (
	TopicPresence = "chat.presence"
	TopicMailbox  = "chat.mailbox"
	TopicRoom     = "chat.room"
)

type Event struct {
	ID         string    `json:"id"`
	Kind       Kind      `json:"kind"`
	User       string    `json:"user,omitempty"`
	Recipient  string    `json:"recipient,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	Count      int       `json:"count,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func New(kind Kind, user string) Event {
	return Event{
		ID:         uuid.NewString(),
		Kind:       kind,
		User:       user,
		OccurredAt: time.Now().UTC(),
	}
}

// Topic routes the event to its bus topic.
func (e Event) Topic() string {
	switch e.Kind {
	case KindMessageQueued, KindMailboxDrained:
		return TopicMailbox
	case KindChatJoined, KindChatLeft, KindChatLine:
		return TopicRoom
	default:
		return TopicPresence
	}
}
