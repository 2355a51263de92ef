package metrics

import "github.com/prometheus/client_golang/prometheus"

// ChatMetrics exposes counters/histograms for the lead-qualification widget.
type ChatMetrics struct {
	sessionsStarted    prometheus.Counter
	transitionsTotal   *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	submissionsTotal   *prometheus.CounterVec
	submissionLatency  prometheus.Histogram
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		sessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "leadbot",
			Subsystem: "chat",
			Name:      "sessions_started_total",
			Help:      "Total widget sessions opened",
		}),
		transitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leadbot",
			Subsystem: "chat",
			Name:      "transitions_total",
			Help:      "Total step transitions taken",
		}, []string{"from", "to"}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leadbot",
			Subsystem: "chat",
			Name:      "validation_failures_total",
			Help:      "Total guard rejections by step",
		}, []string{"step"}),
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leadbot",
			Subsystem: "gateway",
			Name:      "submissions_total",
			Help:      "Total lead submission attempts",
		}, []string{"status"}),
		submissionLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "leadbot",
			Subsystem: "gateway",
			Name:      "submission_latency_seconds",
			Help:      "Latency of lead webhook POSTs",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.sessionsStarted, m.transitionsTotal, m.validationFailures, m.submissionsTotal, m.submissionLatency)
	return m
}

func (m *ChatMetrics) ObserveSessionStarted() {
	if m == nil {
		return
	}
	m.sessionsStarted.Inc()
}

func (m *ChatMetrics) ObserveTransition(from, to string) {
	if m == nil {
		return
	}
	m.transitionsTotal.WithLabelValues(from, to).Inc()
}

func (m *ChatMetrics) ObserveValidationFailure(step string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(step).Inc()
}

func (m *ChatMetrics) ObserveSubmission(status string, seconds float64) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(status).Inc()
	m.submissionLatency.Observe(seconds)
}
