package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// AnalysisMetrics observes the simulated analysis pipeline and the chat
// responder. It registers on the same registry as the HTTP metrics so
// everything is exposed under one /metrics endpoint.
type AnalysisMetrics struct {
	uploadsTotal       *prometheus.CounterVec
	analysisTotal      *prometheus.CounterVec
	analysisDelay      *prometheus.HistogramVec
	analysisInFlight   prometheus.Gauge
	chatResponsesTotal *prometheus.CounterVec
	typingDelay        *prometheus.HistogramVec
}

func NewAnalysisMetrics(service string, registerer prometheus.Registerer) *AnalysisMetrics {
	uploadsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dfa",
			Subsystem: "documents",
			Name:      "uploads_total",
			Help:      "Total uploaded documents by classified type.",
		},
		[]string{"service", "document_type"},
	)
	analysisTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dfa",
			Subsystem: "analysis",
			Name:      "completed_total",
			Help:      "Total finished analysis tasks by status.",
		},
		[]string{"service", "status"},
	)
	analysisDelay := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dfa",
			Subsystem: "analysis",
			Name:      "delay_seconds",
			Help:      "Delay between document upload and analysis completion.",
			Buckets:   []float64{0.5, 1, 2, 3, 4, 5, 10, 30},
		},
		[]string{"service"},
	)
	analysisInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "dfa",
			Subsystem: "analysis",
			Name:      "in_flight_tasks",
			Help:      "Number of scheduled analysis tasks not yet completed.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	chatResponsesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dfa",
			Subsystem: "chat",
			Name:      "responses_total",
			Help:      "Total generated chat responses by kind.",
		},
		[]string{"service", "kind"},
	)
	typingDelay := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dfa",
			Subsystem: "chat",
			Name:      "typing_delay_seconds",
			Help:      "Simulated typing delay before a response is revealed.",
			Buckets:   []float64{0.5, 1, 1.5, 2, 2.5, 3, 4},
		},
		[]string{"service"},
	)

	registerer.MustRegister(
		uploadsTotal,
		analysisTotal,
		analysisDelay,
		analysisInFlight,
		chatResponsesTotal,
		typingDelay,
	)

	return &AnalysisMetrics{
		uploadsTotal:       uploadsTotal,
		analysisTotal:      analysisTotal,
		analysisDelay:      analysisDelay,
		analysisInFlight:   analysisInFlight,
		chatResponsesTotal: chatResponsesTotal,
		typingDelay:        typingDelay,
	}
}

func (m *AnalysisMetrics) RecordUpload(service, documentType string) {
	if m == nil {
		return
	}
	m.uploadsTotal.WithLabelValues(service, documentType).Inc()
	m.analysisInFlight.Inc()
}

func (m *AnalysisMetrics) FinishAnalysis(service string, uploadedAt time.Time, err error) {
	if m == nil {
		return
	}
	m.analysisInFlight.Dec()

	status := "success"
	if err != nil {
		status = "error"
	}
	m.analysisTotal.WithLabelValues(service, status).Inc()

	if lag := time.Since(uploadedAt); lag >= 0 {
		m.analysisDelay.WithLabelValues(service).Observe(lag.Seconds())
	}
}

func (m *AnalysisMetrics) RecordChatResponse(service, kind string, delay time.Duration) {
	if m == nil {
		return
	}
	m.chatResponsesTotal.WithLabelValues(service, kind).Inc()
	m.typingDelay.WithLabelValues(service).Observe(delay.Seconds())
}

// Registry returns the registry behind the HTTP metrics for co-registration.
func (m *HTTPServerMetrics) Registry() *prometheus.Registry {
	return m.registry
}
