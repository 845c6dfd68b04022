package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collectors holds the Prometheus collectors for the API.
type Collectors struct {
	RequestDuration     *prometheus.HistogramVec
	RequestsInFlight    prometheus.Gauge
	InteractionsCreated *prometheus.CounterVec
	VideosCreated       prometheus.Counter
	CacheHits           prometheus.Counter
	CacheMisses         prometheus.Counter

	registry *prometheus.Registry
}

// New builds the collectors and registers them on a fresh registry together
// with the Go and process collectors.
func New() *Collectors {
	c := &Collectors{
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vidshare_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds, by route, method and status.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method", "status"},
		),
		RequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "vidshare_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served.",
			},
		),
		InteractionsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vidshare_interactions_created_total",
				Help: "Interactions stored, by type.",
			},
			[]string{"type"},
		),
		VideosCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "vidshare_videos_created_total",
				Help: "Videos created.",
			},
		),
		CacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "vidshare_stats_cache_hits_total",
				Help: "Interaction stats served from Redis.",
			},
		),
		CacheMisses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "vidshare_stats_cache_misses_total",
				Help: "Interaction stats lookups that went to the database.",
			},
		),
		registry: prometheus.NewRegistry(),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.RequestDuration,
		c.RequestsInFlight,
		c.InteractionsCreated,
		c.VideosCreated,
		c.CacheHits,
		c.CacheMisses,
	)
	return c
}

// Handler serves the /metrics endpoint.
func (c *Collectors) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Middleware records request duration and in-flight count. Routes are
// labelled by their mux template so ids do not explode cardinality.
func (c *Collectors) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		route := r.URL.Path
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		c.RequestsInFlight.Inc()
		defer c.RequestsInFlight.Dec()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sw, r)

		c.RequestDuration.
			WithLabelValues(route, r.Method, strconv.Itoa(sw.status)).
			Observe(time.Since(start).Seconds())
	})
}
