package directory

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// ChatEndpoint is the back-reference a record holds while its user has a
// live chat stream. The record does not own the endpoint; the chat room
// does.
type ChatEndpoint interface {
	ID() uuid.UUID
}

// Record is one user known to the directory. Records are created on the
// first successful login under a name and retained for the life of the
// process; logout only flips the online flag, so the mailbox survives.
type Record struct {
	name    string
	online  atomic.Bool
	mailbox *Mailbox

	mu       sync.Mutex
	endpoint ChatEndpoint
}

func newRecord(name string, mailboxLimit int) *Record {
	return &Record{
		name:    name,
		mailbox: NewMailbox(mailboxLimit),
	}
}

func (r *Record) Name() string { return r.name }

func (r *Record) Online() bool { return r.online.Load() }

func (r *Record) Mailbox() *Mailbox { return r.mailbox }

// SetChatEndpoint attaches the live chat stream's endpoint to the record.
func (r *Record) SetChatEndpoint(ep ChatEndpoint) {
	r.mu.Lock()
	r.endpoint = ep
	r.mu.Unlock()
}

// ClearChatEndpoint detaches ep if it is still the attached endpoint.
// A newer stream's endpoint is left in place.
func (r *Record) ClearChatEndpoint(ep ChatEndpoint) {
	r.mu.Lock()
	if r.endpoint != nil && ep != nil && r.endpoint.ID() == ep.ID() {
		r.endpoint = nil
	}
	r.mu.Unlock()
}

func (r *Record) ChatEndpoint() ChatEndpoint {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.endpoint
}
