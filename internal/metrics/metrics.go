package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wallet"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
	walletOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Balance mutations by operation type and outcome",
		},
		[]string{"operation", "outcome"},
	)
	poolConns = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_connections",
			Help:      "Database pool connections by state",
		},
		[]string{"state"},
	)
	poolAcquireWaits = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_empty_acquire_total",
			Help:      "Cumulative acquires that had to wait for a free connection",
		},
	)
)

func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	code := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(method, route, code).Inc()
	httpRequestDuration.WithLabelValues(method, route, code).Observe(elapsed.Seconds())
}

// ObserveOperation counts one mutation attempt. outcome is "success" or a failure kind.
func ObserveOperation(operation, outcome string) {
	walletOperationsTotal.WithLabelValues(operation, outcome).Inc()
}

// PoolSnapshot is the subset of pool statistics exported as gauges.
type PoolSnapshot struct {
	Total        int32
	Idle         int32
	Acquired     int32
	EmptyAcquire int64
}

func ObservePool(s PoolSnapshot) {
	poolConns.WithLabelValues("total").Set(float64(s.Total))
	poolConns.WithLabelValues("idle").Set(float64(s.Idle))
	poolConns.WithLabelValues("acquired").Set(float64(s.Acquired))
	poolAcquireWaits.Set(float64(s.EmptyAcquire))
}
