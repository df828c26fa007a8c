package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ghtrail_upstream_requests_total",
		Help: "Total number of GitHub API requests, labelled by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ghtrail_upstream_request_duration_ms",
		Help:    "GitHub API request latency in milliseconds.",
		Buckets: []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"endpoint"})

	EnvelopesFetched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ghtrail_envelopes_fetched_total",
		Help: "Total number of event envelopes received from GitHub.",
	})

	RecordsProjected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ghtrail_records_projected_total",
		Help: "Total number of projection records produced, labelled by view.",
	}, []string{"view"})
)

// Outcome labels for UpstreamRequests
const (
	OutcomeOK        = "ok"
	OutcomeNotFound  = "not_found"
	OutcomeUpstream  = "upstream_error"
	OutcomeTransport = "transport_error"
)
