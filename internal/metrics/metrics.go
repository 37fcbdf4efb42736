// Package metrics provides Prometheus instrumentation for the terminal.
//
// Wire it up once in cmd/api/main.go:
//
//	router.Use(metrics.Middleware())
//	router.Get("/metrics", metrics.Handler())
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestDuration tracks how long each HTTP request takes, broken down
	// by method, path and status code.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pos",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts all HTTP requests.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pos",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// CheckoutsTotal counts completed checkouts.
	CheckoutsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pos",
		Subsystem: "sales",
		Name:      "checkouts_total",
		Help:      "Total number of completed checkouts.",
	})

	// SaleAmountTotal accumulates gross revenue across checkouts.
	SaleAmountTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pos",
		Subsystem: "sales",
		Name:      "amount_total",
		Help:      "Gross revenue recorded at checkout.",
	})
)

// DefaultRegistry is the Prometheus registry used by the terminal.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		RequestDuration,
		RequestTotal,
		CheckoutsTotal,
		SaleAmountTotal,
	)
}

// RecordSale bumps the checkout counters for one completed transaction.
func RecordSale(total float64) {
	CheckoutsTotal.Inc()
	SaleAmountTotal.Add(total)
}

// responseRecorder wraps http.ResponseWriter to capture the status code.
type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records duration and count for every request. The path label
// is the chi route pattern, so product ids do not fan out into one label
// value per UUID.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rr, r)

			path := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					path = pattern
				}
			}

			status := strconv.Itoa(rr.status)
			RequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
			RequestTotal.WithLabelValues(r.Method, path, status).Inc()
		})
	}
}

// Handler exposes the metrics page; mount it on GET /metrics.
func Handler() http.HandlerFunc {
	h := promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{})
	return h.ServeHTTP
}
