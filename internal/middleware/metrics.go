package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialite_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// FeedCacheHits counts feed cache lookups by outcome (hit/miss).
	FeedCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialite_feed_cache_lookups_total",
		Help: "Feed cache lookups by outcome",
	}, []string{"outcome"})
)

// InitMetrics creates the Prometheus middleware for HTTP request metrics.
// The returned middleware registers the /metrics endpoint on the app it is
// attached to.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}
