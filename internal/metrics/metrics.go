package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "interviewer"

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests received",
	}, []string{"method", "path", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	turns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "turns_total",
		Help:      "Interview turns processed, by outcome",
	}, []string{"outcome"})

	providerFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provider_failures_total",
		Help:      "Failed calls to external AI providers, by operation",
	}, []string{"operation"})

	analyses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analyses_total",
		Help:      "Interview analyses, by whether the model reply parsed",
	}, []string{"result"})

	persistenceFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "interview_persistence_failures_total",
		Help:      "Interview records that could not be saved",
	})
)

func ObserveHTTP(method, path, status string, seconds float64) {
	httpRequests.WithLabelValues(method, path, status).Inc()
	httpLatency.WithLabelValues(method, path, status).Observe(seconds)
}

func TurnCompleted() { turns.WithLabelValues("success").Inc() }

func TurnFailed() { turns.WithLabelValues("failure").Inc() }

func ProviderFailed(operation string) { providerFailures.WithLabelValues(operation).Inc() }

func AnalysisCompleted(parsed bool) {
	if parsed {
		analyses.WithLabelValues("parsed").Inc()
		return
	}
	analyses.WithLabelValues("parse_failed").Inc()
}

func PersistenceFailed() { persistenceFailures.Inc() }

func Handler() http.Handler {
	return promhttp.Handler()
}
