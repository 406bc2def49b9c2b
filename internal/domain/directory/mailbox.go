package directory

import (
	"errors"
	"strings"
	"sync"
)

// QueueState reports whether a mailbox still holds messages.
type QueueState int

const (
	Empty QueueState = iota
	NonEmpty
)

// ErrMailboxFull is returned by Append when a bounded mailbox is at
// capacity. The caller must surface it; messages are never dropped
// silently.
var ErrMailboxFull = errors.New("mailbox full")

// Mailbox is the FIFO queue of pending private messages for one user.
// Append and Pop are serialized per mailbox; different mailboxes are
// independent.
type Mailbox struct {
	mu    sync.Mutex
	limit int // 0 = unbounded
	queue []string
}

func NewMailbox(limit int) *Mailbox {
	return &Mailbox{limit: limit}
}

func (m *Mailbox) Append(msg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.limit > 0 && len(m.queue) >= m.limit {
		return ErrMailboxFull
	}
	m.queue = append(m.queue, msg)
	return nil
}

// Pop removes and returns the oldest message. state is the queue state
// after the pop: NonEmpty means another Pop would still succeed. ok
// reports whether a message was actually removed, so an empty-string
// message is not ambiguous with an empty queue.
func (m *Mailbox) Pop() (msg string, state QueueState, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queue) == 0 {
		return "", Empty, false
	}
	msg = m.queue[0]
	m.queue = m.queue[1:]
	if len(m.queue) > 0 {
		return msg, NonEmpty, true
	}
	return msg, Empty, true
}

// DrainAll concatenates every pending message in FIFO order and empties
// the queue. Derived form of Pop kept for callers that want the whole
// backlog in one string.
func (m *Mailbox) DrainAll() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var sb strings.Builder
	for _, msg := range m.queue {
		sb.WriteString(msg)
	}
	m.queue = nil
	return sb.String()
}

func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}
