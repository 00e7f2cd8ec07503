package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/TabbycatDebate/tabbycat/types"
)

// PrometheusCollector implements types.MetricsCollector backed by
// Prometheus. Registration is lazy and happens once, on the first
// recorded observation.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	patchesApplied   *prometheus.CounterVec
	unitsUpserted    prometheus.Counter
	echoesSuppressed prometheus.Counter
	sortRecompute    *prometheus.HistogramVec
	unitsCurrent     prometheus.Gauge
	broadcasts       *prometheus.CounterVec
	remoteMessages   *prometheus.CounterVec

	envelopesSent     prometheus.Counter
	envelopesReceived prometheus.Counter
	envelopeBytes     *prometheus.HistogramVec
	decodeErrors      prometheus.Counter
	subscribeRetries  prometheus.Counter
}

// Compile-time assertion that PrometheusCollector implements
// MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace (defaults to "tabbycat" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "tabbycat"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.patchesApplied = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "store",
			Name:      "patches_applied_total",
			Help:      "Total attribute patches merged into existing entities, by attribute.",
		}, []string{"attribute"})

		p.unitsUpserted = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "store",
			Name:      "units_upserted_total",
			Help:      "Total brand-new units inserted from patches (server regeneration).",
		})

		p.echoesSuppressed = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "store",
			Name:      "echoes_suppressed_total",
			Help:      "Total inbound envelopes dropped as echoes of this session's writes.",
		})

		p.sortRecompute = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "store",
			Name:      "sort_recompute_seconds",
			Help:      "Display sort recomputation latency in seconds, by sort key.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12), // 100µs .. ~0.4s
		}, []string{"key"})

		p.unitsCurrent = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "store",
			Name:      "units_current",
			Help:      "Current number of units in the working set.",
		})

		p.broadcasts = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "store",
			Name:      "broadcasts_total",
			Help:      "Total broadcast outcomes (success, failure).",
		}, []string{"result"})

		p.remoteMessages = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "store",
			Name:      "remote_messages_total",
			Help:      "Total server-pushed messages surfaced, by message type.",
		}, []string{"type"})

		p.envelopesSent = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "channel",
			Name:      "envelopes_sent_total",
			Help:      "Total envelopes published to the broadcast channel.",
		})

		p.envelopesReceived = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "channel",
			Name:      "envelopes_received_total",
			Help:      "Total envelopes delivered from the broadcast channel.",
		})

		p.envelopeBytes = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "channel",
			Name:      "envelope_bytes",
			Help:      "Encoded envelope sizes in bytes, by direction (sent, received).",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 8), // 64B .. ~1MB
		}, []string{"direction"})

		p.decodeErrors = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "channel",
			Name:      "decode_errors_total",
			Help:      "Total inbound payloads that failed to decode.",
		})

		p.subscribeRetries = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "channel",
			Name:      "subscribe_retries_total",
			Help:      "Total subscription attempts that had to be retried.",
		})

		collectors := []prometheus.Collector{
			p.patchesApplied, p.unitsUpserted, p.echoesSuppressed,
			p.sortRecompute, p.unitsCurrent, p.broadcasts, p.remoteMessages,
			p.envelopesSent, p.envelopesReceived, p.envelopeBytes,
			p.decodeErrors, p.subscribeRetries,
		}
		for _, c := range collectors {
			// Ignore AlreadyRegisteredError so two collectors can share a
			// registry in tests.
			_ = p.reg.Register(c)
		}
	})
}

// RecordPatchApplied increments the per-attribute patch counter.
func (p *PrometheusCollector) RecordPatchApplied(attribute string, count int) {
	p.ensureRegistered()
	p.patchesApplied.WithLabelValues(attribute).Add(float64(count))
}

// RecordUnitUpserted increments the upsert counter.
func (p *PrometheusCollector) RecordUnitUpserted() {
	p.ensureRegistered()
	p.unitsUpserted.Inc()
}

// RecordEchoSuppressed increments the echo counter.
func (p *PrometheusCollector) RecordEchoSuppressed() {
	p.ensureRegistered()
	p.echoesSuppressed.Inc()
}

// RecordSortRecompute observes a sort recomputation latency.
func (p *PrometheusCollector) RecordSortRecompute(key types.SortKey, seconds float64) {
	p.ensureRegistered()
	p.sortRecompute.WithLabelValues(string(key)).Observe(seconds)
}

// RecordUnitCount sets the working-set size gauge.
func (p *PrometheusCollector) RecordUnitCount(count int) {
	p.ensureRegistered()
	p.unitsCurrent.Set(float64(count))
}

// RecordBroadcast increments the broadcast outcome counter.
func (p *PrometheusCollector) RecordBroadcast(result string) {
	p.ensureRegistered()
	p.broadcasts.WithLabelValues(result).Inc()
}

// RecordRemoteMessage increments the per-type message counter.
func (p *PrometheusCollector) RecordRemoteMessage(kind string) {
	p.ensureRegistered()
	p.remoteMessages.WithLabelValues(kind).Inc()
}

// RecordEnvelopeSent counts a published envelope and observes its size.
func (p *PrometheusCollector) RecordEnvelopeSent(bytes int) {
	p.ensureRegistered()
	p.envelopesSent.Inc()
	p.envelopeBytes.WithLabelValues("sent").Observe(float64(bytes))
}

// RecordEnvelopeReceived counts a delivered envelope and observes its size.
func (p *PrometheusCollector) RecordEnvelopeReceived(bytes int) {
	p.ensureRegistered()
	p.envelopesReceived.Inc()
	p.envelopeBytes.WithLabelValues("received").Observe(float64(bytes))
}

// RecordDecodeError increments the decode failure counter.
func (p *PrometheusCollector) RecordDecodeError() {
	p.ensureRegistered()
	p.decodeErrors.Inc()
}

// RecordSubscribeRetry increments the subscription retry counter.
func (p *PrometheusCollector) RecordSubscribeRetry(_ /* attempt */ int) {
	p.ensureRegistered()
	p.subscribeRetries.Inc()
}
