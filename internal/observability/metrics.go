package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the collectors recorded by the analysis service and HTTP server.
type Metrics struct {
	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration prometheus.Histogram
	MatchScore       prometheus.Histogram
	CacheLookups     *prometheus.CounterVec
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
}

// NewMetrics registers all collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AnalysesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resumatch_analyses_total",
				Help: "Total number of analyses by outcome",
			},
			[]string{"outcome"},
		),
		AnalysisDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "resumatch_analysis_duration_seconds",
				Help:    "Duration of a single analysis in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
		),
		MatchScore: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "resumatch_match_score",
				Help:    "Distribution of match scores",
				Buckets: prometheus.LinearBuckets(10, 10, 10),
			},
		),
		CacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resumatch_cache_lookups_total",
				Help: "Result cache lookups by result",
			},
			[]string{"result"},
		),
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resumatch_http_requests_total",
				Help: "HTTP requests by route and status code",
			},
			[]string{"route", "code"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "resumatch_http_request_duration_seconds",
				Help: "HTTP request latency by route",
			},
			[]string{"route"},
		),
	}
}
