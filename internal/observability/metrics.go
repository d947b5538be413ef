package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "liftinglog_http_requests_total",
			Help: "Count of HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "liftinglog_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// LastWorkoutPersisted tracks the unix time a workout was last written,
	// a cheap liveness signal for the write path.
	LastWorkoutPersisted = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "liftinglog_last_workout_persisted_timestamp_seconds",
			Help: "Unix timestamp of the most recently persisted workout.",
		},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration, LastWorkoutPersisted)
}

// MarkWorkoutPersisted records that a workout write just succeeded.
func MarkWorkoutPersisted() {
	LastWorkoutPersisted.SetToCurrentTime()
}

// Middleware instruments every request with count and latency metrics. The
// route template is used rather than the raw path so ids don't explode
// label cardinality.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(method, route, status).Inc()
		httpRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
