package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	postingsTotal       *prometheus.CounterVec
	postingDuration     prometheus.Histogram
	summaryRequests     *prometheus.CounterVec
	monthlyReportsTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		postingsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_postings_total",
				Help: "Total number of transaction postings by outcome",
			},
			[]string{"outcome"},
		),
		postingDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_posting_duration_milliseconds",
				Help:    "Transaction posting duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		summaryRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_summary_requests_total",
				Help: "Total number of summary computations by type filter",
			},
			[]string{"type"},
		),
		monthlyReportsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_monthly_reports_total",
				Help: "Total number of monthly report generation runs by outcome",
			},
			[]string{"outcome"},
		),
	}
}

func (m *PrometheusMetrics) RecordPosting(outcome string, duration time.Duration) {
	m.postingsTotal.WithLabelValues(outcome).Inc()
	m.postingDuration.Observe(float64(duration.Milliseconds()))
}

func (m *PrometheusMetrics) RecordSummaryRequest(typeFilter string) {
	if typeFilter == "" {
		typeFilter = "all"
	}
	m.summaryRequests.WithLabelValues(typeFilter).Inc()
}

func (m *PrometheusMetrics) RecordMonthlyReport(outcome string) {
	m.monthlyReportsTotal.WithLabelValues(outcome).Inc()
}

// NoopMetrics discards all measurements. Used in tests.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface { return &NoopMetrics{} }

func (m *NoopMetrics) RecordPosting(outcome string, duration time.Duration) {}
func (m *NoopMetrics) RecordSummaryRequest(typeFilter string)               {}
func (m *NoopMetrics) RecordMonthlyReport(outcome string)                   {}
