package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus collectors on a private registry.
type Metrics struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	analyses        *prometheus.CounterVec
}

// NewMetrics creates and registers all collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "factlens",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route, method and status.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 1.5, 2, 3, 5},
		}, []string{"method", "route", "status"}),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "factlens",
			Name:      "analyses_total",
			Help:      "Completed analyses by verdict.",
		}, []string{"verdict"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestDuration,
		m.analyses,
	)
	return m
}

// ObserveVerdict counts a completed analysis.
func (m *Metrics) ObserveVerdict(isFake bool) {
	verdict := "authentic"
	if isFake {
		verdict = "fake"
	}
	m.analyses.WithLabelValues(verdict).Inc()
}

// TrackRateLimiter exports the number of clients the limiter is tracking.
func (m *Metrics) TrackRateLimiter(l *RateLimiter) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "factlens",
		Name:      "rate_limiter_clients",
		Help:      "Client addresses currently tracked by the rate limiter.",
	}, func() float64 {
		return float64(l.Len())
	}))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request latency labelled by chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := routePattern(r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requestDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}

// routePattern returns the matched chi pattern, or "unmatched" for 404s.
// Only meaningful once the router has run.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
