package monitoring

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iliyamo/fyyur/internal/repository"
)

// Write outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fyyur_http_requests_total",
			Help: "HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fyyur_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	DirectoryWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fyyur_directory_writes_total",
			Help: "Create, update and delete operations by entity and outcome",
		},
		[]string{"entity", "op", "outcome"},
	)
)

// ObserveWrite counts one write attempt and classifies its result.
func ObserveWrite(entity, op string, err error) {
	DirectoryWrites.WithLabelValues(entity, op, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, repository.ErrNotFound):
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}
