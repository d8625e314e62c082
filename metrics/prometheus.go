package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector is a Collector backed by Prometheus metrics.
type PrometheusCollector struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	visited  *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

var _ Collector = (*PrometheusCollector)(nil)

/*
NewPrometheus creates a Collector that registers its metrics with reg.

If reg is nil, prometheus.DefaultRegisterer is used. If namespace is empty,
"paralg" is used. Metrics that are already registered with reg by an earlier
collector are reused.
*/
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "paralg"
	}
	return &PrometheusCollector{
		calls: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calls_total",
			Help:      "Total parallel algorithm calls by operation, strategy, and result.",
		}, []string{"op", "strategy", "result"})),
		duration: register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "call_duration_seconds",
			Help:      "Duration of parallel algorithm calls in seconds, including fan-out and join.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12), // 1µs .. ~4s
		}, []string{"op", "strategy"})),
		visited: register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "elements",
			Help:      "Number of elements visited by a single worker.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"op"})),
		failures: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "failures_total",
			Help:      "Total worker failures by operation.",
		}, []string{"op"})),
	}
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func (p *PrometheusCollector) RecordCall(op, strategy string, _ int, duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	p.calls.WithLabelValues(op, strategy, result).Inc()
	p.duration.WithLabelValues(op, strategy).Observe(duration.Seconds())
}

func (p *PrometheusCollector) RecordWorker(op string, _, visited int) {
	p.visited.WithLabelValues(op).Observe(float64(visited))
}

func (p *PrometheusCollector) RecordFailure(op string, _ int, _ error) {
	p.failures.WithLabelValues(op).Inc()
}
