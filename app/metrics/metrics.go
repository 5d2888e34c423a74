package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Access-control metrics
var (
	ResolutionCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "access_resolution_cache_hits_total",
		Help: "Resolution cache lookups served without a user store read.",
	})

	ResolutionCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "access_resolution_cache_misses_total",
		Help: "Resolution cache lookups that required a user store read.",
	})

	ResolutionCacheInvalidations = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "access_resolution_cache_invalidations_total",
		Help: "Explicit resolution cache invalidations.",
	})

	ResolverErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "access_resolver_errors_total",
		Help: "User store reads that failed for infrastructure reasons.",
	})

	ActiveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "access_active_sessions",
		Help: "Sessions currently tracked by the registry.",
	})

	SessionsTerminated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "access_sessions_terminated_total",
			Help: "Sessions terminated, by initiator (logout or force_logout).",
		},
		[]string{"initiator"},
	)

	AuthFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "access_auth_failures_total",
			Help: "Authentication and authorization failures, by error code.",
		},
		[]string{"code"},
	)
)

// Register registers all access-control metrics with the default registry.
func Register() {
	prometheus.MustRegister(
		ResolutionCacheHits,
		ResolutionCacheMisses,
		ResolutionCacheInvalidations,
		ResolverErrors,
		ActiveSessions,
		SessionsTerminated,
		AuthFailures,
	)
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
