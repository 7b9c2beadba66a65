// internal/metrics/metrics.go
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "gamestore",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gamestore",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gamestore",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method"},
	)

	purchasesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gamestore",
			Subsystem: "store",
			Name:      "purchases_total",
			Help:      "Total number of completed game purchases.",
		},
		[]string{"status"},
	)

	subscriptionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gamestore",
			Subsystem: "store",
			Name:      "subscriptions_total",
			Help:      "Total number of subscription operations.",
		},
		[]string{"tier", "operation"},
	)

	walletTopUpsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gamestore",
			Subsystem: "store",
			Name:      "wallet_topups_total",
			Help:      "Total number of wallet top-ups.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		purchasesTotal,
		subscriptionsTotal,
		walletTopUpsTotal,
	)
}

// RecordPurchase increments the purchase counter for the given status.
func RecordPurchase(status string) {
	purchasesTotal.WithLabelValues(status).Inc()
}

// RecordSubscription increments the subscription counter for the given
// tier and operation ("created" or "cancelled").
func RecordSubscription(tier, operation string) {
	subscriptionsTotal.WithLabelValues(tier, operation).Inc()
}

// RecordWalletTopUp increments the wallet top-up counter.
func RecordWalletTopUp() {
	walletTopUpsTotal.Inc()
}

// Handler returns the HTTP handler exposing the application registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// statusRecorder captures the response status code for metrics labels.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware instruments HTTP handlers with request count, duration and
// in-flight gauges.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(recorder, r)

		httpRequests.WithLabelValues(r.Method, strconv.Itoa(recorder.status)).Inc()
		httpDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}
