package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	// HTTP server
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Исходящие вызовы внешних сервисов (checkout, cancellation)
	OutboundRequestsTotal   *prometheus.CounterVec
	OutboundRequestDuration *prometheus.HistogramVec

	// Состояние конфигуратора
	DraftsActive     prometheus.Gauge
	SubmissionsTotal *prometheus.CounterVec
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		OutboundRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "outbound_requests_total",
			Help:        "Total number of requests to external endpoints",
			ConstLabels: constLabels,
		}, []string{"target", "outcome"}),

		OutboundRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "outbound_request_duration_seconds",
			Help:        "External endpoint request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"target"}),

		DraftsActive: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "booking_drafts_active",
			Help:        "Number of booking drafts currently held in the session store",
			ConstLabels: constLabels,
		}),

		SubmissionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "checkout_submissions_total",
			Help:        "Checkout submissions by result",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}
}

// RecordSubmission фиксирует результат отправки на оплату
func (m *Metrics) RecordSubmission(result string) {
	m.SubmissionsTotal.WithLabelValues(result).Inc()
}

// RecordOutbound фиксирует исходящий вызов внешнего сервиса
func (m *Metrics) RecordOutbound(target string, outcome string, seconds float64) {
	m.OutboundRequestsTotal.WithLabelValues(target, outcome).Inc()
	m.OutboundRequestDuration.WithLabelValues(target).Observe(seconds)
}
