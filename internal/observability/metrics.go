// Package observability exposes prometheus collectors for analysis runs.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run status label values.
const (
	RunStatusOK    = "ok"
	RunStatusError = "error"
)

// Drop reason label values.
const (
	DropReasonCorrected   = "corrected"
	DropReasonNoKeyphrase = "no_keyphrase"
)

// Metrics holds the collectors of the analysis pipeline. A nil *Metrics is a
// valid no-op receiver so library callers can opt out of instrumentation.
type Metrics struct {
	runs               *prometheus.CounterVec
	runDuration        prometheus.Histogram
	messagesAnalyzed   prometheus.Counter
	highlightsRetained prometheus.Counter
	highlightsDropped  *prometheus.CounterVec
}

// NewMetrics registers the pipeline collectors against the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "streamlens_analysis_runs_total",
			Help: "The total number of analysis runs",
		}, []string{"status"}),
		runDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "streamlens_analysis_run_duration_seconds",
			Help:    "Duration of one full analysis run",
			Buckets: prometheus.DefBuckets,
		}),
		messagesAnalyzed: factory.NewCounter(prometheus.CounterOpts{
			Name: "streamlens_messages_analyzed_total",
			Help: "The total number of chat messages fed into the pipeline",
		}),
		highlightsRetained: factory.NewCounter(prometheus.CounterOpts{
			Name: "streamlens_highlights_retained_total",
			Help: "The total number of highlights surviving the full pipeline",
		}),
		highlightsDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "streamlens_highlights_dropped_total",
			Help: "The total number of highlight candidates dropped, by reason",
		}, []string{"reason"}),
	}
}

// ObserveRun records one finished run with its status and duration.
func (m *Metrics) ObserveRun(status string, took time.Duration) {
	if m == nil {
		return
	}

	m.runs.WithLabelValues(status).Inc()
	m.runDuration.Observe(took.Seconds())
}

// AddMessages counts messages fed into a run.
func (m *Metrics) AddMessages(n int) {
	if m == nil {
		return
	}

	m.messagesAnalyzed.Add(float64(n))
}

// AddRetained counts highlights surviving a run.
func (m *Metrics) AddRetained(n int) {
	if m == nil {
		return
	}

	m.highlightsRetained.Add(float64(n))
}

// AddDropped counts dropped highlight candidates by reason.
func (m *Metrics) AddDropped(reason string, n int) {
	if m == nil || n <= 0 {
		return
	}

	m.highlightsDropped.WithLabelValues(reason).Add(float64(n))
}
