// Package metrics defines the Collector interface for recording chat
// server metrics, with a Prometheus implementation for production and a
// noop implementation for tests.
package metrics

// Collector records server activity. Implementations must be safe for
// concurrent use.
type Collector interface {
	// Session and login metrics
	LoginAttempt(outcome string)
	SessionOpened()
	SessionClosed()

	// Mailbox metrics
	MessageQueued()
	MessageDelivered()
	MailboxOverflow()

	// Chat room metrics
	ChatJoined()
	ChatLeft()
	ChatBroadcast(delivered, dropped int)

	// RPC metrics, labeled by full method name
	RPCStarted(method string)
	RPCFinished(method string)

	// Event bus metrics
	EventObserved(topic string)
}
