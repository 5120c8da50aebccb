// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	OutcomeSent      = "sent"
	OutcomeForbidden = "forbidden"
	OutcomeNotFound  = "not_found"
	OutcomeInvalid   = "invalid"
	OutcomeFailed    = "failed"
	OutcomeRecorded  = "recorded"
)

var (
	// RequestsTotal counts HTTP requests by method, route template and status code.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_relay_http_requests_total",
			Help: "HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quote_relay_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// QuoteEmailsTotal counts send attempts by outcome.
	QuoteEmailsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_relay_quote_emails_total",
			Help: "Quote email send attempts",
		},
		[]string{"outcome"},
	)

	// QuoteViewsTotal counts view records by source (pixel, explicit) and outcome.
	QuoteViewsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_relay_quote_views_total",
			Help: "Quote view records",
		},
		[]string{"source", "outcome"},
	)

	AuthFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_relay_auth_failures_total",
			Help: "Rejected bearer tokens",
		},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		QuoteEmailsTotal,
		QuoteViewsTotal,
		AuthFailuresTotal,
	)
}
