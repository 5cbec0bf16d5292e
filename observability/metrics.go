package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	scoreComputations prometheus.Counter
	storeErrors       prometheus.Counter
	syncDuration      prometheus.Histogram
}

func NewMetrics() *Metrics {
	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		scoreComputations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "score_computations_total",
			Help: "Total wellbeing score computations performed.",
		}),
		storeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "store_errors_total",
			Help: "Total health record store failures.",
		}),
		syncDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "provider_sync_duration_seconds",
			Help:    "Histogram of provider aggregation call durations.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	prometheus.MustRegister(
		m.httpRequestsTotal,
		m.httpDuration,
		m.scoreComputations,
		m.storeErrors,
		m.syncDuration,
	)

	return m
}

// Handler exposes the default registry for the /metrics route.
func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}

// Instrument records request counts and durations per route.
func (m *Metrics) Instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) ScoreComputed() {
	m.scoreComputations.Inc()
}

func (m *Metrics) StoreError() {
	m.storeErrors.Inc()
}

func (m *Metrics) ObserveSync(d time.Duration) {
	m.syncDuration.Observe(d.Seconds())
}
