package room

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/strelka-io/chatserver/internal/chatpb"
)

// Endpoint is the server-side handle to one live chat stream. Outbound
// lines are buffered toward the stream writer; Send never blocks the
// broadcasting goroutine.
type Endpoint struct {
	id     uuid.UUID
	sendCh chan *chatpb.ChatMessage

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once

	user    atomic.Value // string, bound on the first inbound line
	dropped atomic.Uint64
}

// NewEndpoint creates an endpoint whose lifetime is bounded by ctx
// (typically the stream context). buffer sizes the outbound queue.
func NewEndpoint(ctx context.Context, buffer int) *Endpoint {
	child, cancel := context.WithCancel(ctx)
	return &Endpoint{
		id:     uuid.New(),
		sendCh: make(chan *chatpb.ChatMessage, buffer),
		ctx:    child,
		cancel: cancel,
	}
}

func (e *Endpoint) ID() uuid.UUID { return e.id }

// BindUser records the user name the endpoint speaks for. First writer
// wins; chat streams carry the name on every line but bind once.
func (e *Endpoint) BindUser(name string) {
	e.user.CompareAndSwap(nil, name)
}

func (e *Endpoint) User() string {
	if v := e.user.Load(); v != nil {
		return v.(string)
	}
	return ""
}

// Send queues msg toward the client. It reports false, and counts the
// drop, when the endpoint is closed or its buffer is full; a slow
// consumer never stalls the sender.
func (e *Endpoint) Send(msg *chatpb.ChatMessage) bool {
	select {
	case <-e.ctx.Done():
		return false
	default:
	}
	select {
	case e.sendCh <- msg:
		return true
	default:
		e.dropped.Add(1)
		return false
	}
}

// Recv exposes the outbound queue to the stream writer goroutine. The
// channel is never closed; readers select on Done as well.
func (e *Endpoint) Recv() <-chan *chatpb.ChatMessage { return e.sendCh }

func (e *Endpoint) Done() <-chan struct{} { return e.ctx.Done() }

func (e *Endpoint) Dropped() uint64 { return e.dropped.Load() }

// Close stops the send path. Idempotent and safe against concurrent
// Send; the buffer channel is left open so late senders cannot panic.
func (e *Endpoint) Close() {
	e.closeOnce.Do(e.cancel)
}
