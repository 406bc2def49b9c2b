package metrics

// NoopCollector implements Collector without recording anything.
type NoopCollector struct{}

func NewNoopCollector() *NoopCollector { return &NoopCollector{} }

func (*NoopCollector) LoginAttempt(string)    {}
func (*NoopCollector) SessionOpened()         {}
func (*NoopCollector) SessionClosed()         {}
func (*NoopCollector) MessageQueued()         {}
func (*NoopCollector) MessageDelivered()      {}
func (*NoopCollector) MailboxOverflow()       {}
func (*NoopCollector) ChatJoined()            {}
func (*NoopCollector) ChatLeft()              {}
func (*NoopCollector) ChatBroadcast(int, int) {}
func (*NoopCollector) RPCStarted(string)      {}
func (*NoopCollector) RPCFinished(string)     {}
func (*NoopCollector) EventObserved(string)   {}
