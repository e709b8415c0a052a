package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProviderRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tripplanner_provider_requests_total",
		Help: "Calls made to third-party travel data providers, by outcome.",
	}, []string{"provider", "outcome"})

	ProviderLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tripplanner_provider_request_duration_seconds",
		Help:    "Latency of third-party provider calls including retries.",
		Buckets: prometheus.DefBuckets,
	}, []string{"provider"})

	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tripplanner_cache_lookups_total",
		Help: "Cache lookups for acquired travel data, by cache and result.",
	}, []string{"cache", "result"})

	PlansGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tripplanner_plans_generated_total",
		Help: "Trip plans produced, by budget tier.",
	}, []string{"tier"})
)

// ObserveProvider records one provider call. Use with defer:
//
//	defer metrics.ObserveProvider("overpass", time.Now(), &err)
func ObserveProvider(provider string, start time.Time, errp *error) {
	outcome := "ok"
	if errp != nil && *errp != nil {
		outcome = "error"
	}
	ProviderRequests.WithLabelValues(provider, outcome).Inc()
	ProviderLatency.WithLabelValues(provider).Observe(time.Since(start).Seconds())
}

func CacheHit(cache string)  { CacheLookups.WithLabelValues(cache, "hit").Inc() }
func CacheMiss(cache string) { CacheLookups.WithLabelValues(cache, "miss").Inc() }
