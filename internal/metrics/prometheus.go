package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements Collector on a Prometheus registry.
type PrometheusCollector struct {
	loginAttemptsTotal *prometheus.CounterVec
	sessionsActive     prometheus.Gauge

	messagesQueuedTotal    prometheus.Counter
	messagesDeliveredTotal prometheus.Counter
	mailboxOverflowsTotal  prometheus.Counter

	chatEndpointsActive prometheus.Gauge
	chatBroadcastsTotal prometheus.Counter
	chatDropsTotal      prometheus.Counter

	rpcsStartedTotal *prometheus.CounterVec
	rpcsActive       *prometheus.GaugeVec

	eventsObservedTotal *prometheus.CounterVec
}

// NewPrometheusCollector creates a PrometheusCollector with all metrics
// registered on reg.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		loginAttemptsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chatserver_login_attempts_total",
			Help: "Total number of login attempts.",
		}, []string{"outcome"}),
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "chatserver_sessions_active",
			Help: "Number of users currently online.",
		}),

		messagesQueuedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chatserver_messages_queued_total",
			Help: "Total number of private messages appended to mailboxes.",
		}),
		messagesDeliveredTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chatserver_messages_delivered_total",
			Help: "Total number of private messages drained by recipients.",
		}),
		mailboxOverflowsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chatserver_mailbox_overflows_total",
			Help: "Total number of messages rejected by a full mailbox.",
		}),

		chatEndpointsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "chatserver_chat_endpoints_active",
			Help: "Number of live chat streams in the room.",
		}),
		chatBroadcastsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chatserver_chat_broadcasts_total",
			Help: "Total number of chat lines delivered to endpoints.",
		}),
		chatDropsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chatserver_chat_drops_total",
			Help: "Total number of chat lines dropped toward slow or closed endpoints.",
		}),

		rpcsStartedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chatserver_rpcs_started_total",
			Help: "Total number of RPCs accepted.",
		}, []string{"method"}),
		rpcsActive: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "chatserver_rpcs_active",
			Help: "Number of RPCs currently in flight.",
		}, []string{"method"}),

		eventsObservedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chatserver_events_observed_total",
			Help: "Total number of domain events consumed from the bus.",
		}, []string{"topic"}),
	}

	reg.MustRegister(
		c.loginAttemptsTotal,
		c.sessionsActive,
		c.messagesQueuedTotal,
		c.messagesDeliveredTotal,
		c.mailboxOverflowsTotal,
		c.chatEndpointsActive,
		c.chatBroadcastsTotal,
		c.chatDropsTotal,
		c.rpcsStartedTotal,
		c.rpcsActive,
		c.eventsObservedTotal,
	)

	return c
}

func (c *PrometheusCollector) LoginAttempt(outcome string) {
	c.loginAttemptsTotal.WithLabelValues(outcome).Inc()
}

func (c *PrometheusCollector) SessionOpened() { c.sessionsActive.Inc() }
func (c *PrometheusCollector) SessionClosed() { c.sessionsActive.Dec() }

func (c *PrometheusCollector) MessageQueued()    { c.messagesQueuedTotal.Inc() }
func (c *PrometheusCollector) MessageDelivered() { c.messagesDeliveredTotal.Inc() }
func (c *PrometheusCollector) MailboxOverflow()  { c.mailboxOverflowsTotal.Inc() }

func (c *PrometheusCollector) ChatJoined() { c.chatEndpointsActive.Inc() }
func (c *PrometheusCollector) ChatLeft()   { c.chatEndpointsActive.Dec() }

func (c *PrometheusCollector) ChatBroadcast(delivered, dropped int) {
	c.chatBroadcastsTotal.Add(float64(delivered))
	c.chatDropsTotal.Add(float64(dropped))
}

func (c *PrometheusCollector) RPCStarted(method string) {
	c.rpcsStartedTotal.WithLabelValues(method).Inc()
	c.rpcsActive.WithLabelValues(method).Inc()
}

func (c *PrometheusCollector) RPCFinished(method string) {
	c.rpcsActive.WithLabelValues(method).Dec()
}

func (c *PrometheusCollector) EventObserved(topic string) {
	c.eventsObservedTotal.WithLabelValues(topic).Inc()
}
