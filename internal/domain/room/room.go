// Package room implements the broadcast chat room: a registry of live
// chat endpoints and a best-effort fan-out of every inbound line to all
// endpoints except the sender's own.
package room

import (
	"sync"

	"github.com/google/uuid"

	"github.com/strelka-io/chatserver/internal/chatpb"
)

// Room is the set of endpoints with an open chat stream. Membership is a
// sync.Map so broadcast iteration never contends with join/leave.
type Room struct {
	endpoints sync.Map // uuid.UUID -> *Endpoint
}

func New() *Room {
	return &Room{}
}

// Join registers ep for broadcast delivery.
func (r *Room) Join(ep *Endpoint) {
	r.endpoints.Store(ep.ID(), ep)
}

// Leave removes the endpoint. Idempotent; broadcasts racing with Leave
// either see the endpoint or not, both are fine because Send on a closed
// endpoint is a counted no-op.
func (r *Room) Leave(id uuid.UUID) {
	r.endpoints.Delete(id)
}

// Broadcast fans msg out to every endpoint other than from. Sender
// suppression is by endpoint identity, not user name: two streams for
// one user still see each other. Returns how many endpoints accepted the
// line and how many dropped it.
func (r *Room) Broadcast(from uuid.UUID, msg *chatpb.ChatMessage) (delivered, dropped int) {
	r.endpoints.Range(func(k, v any) bool {
		if k.(uuid.UUID) == from {
			return true
		}
		if v.(*Endpoint).Send(msg) {
			delivered++
		} else {
			dropped++
		}
		return true
	})
	return delivered, dropped
}

// Size counts current members. Used by tests and the events listeners.
func (r *Room) Size() int {
	n := 0
	r.endpoints.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}
