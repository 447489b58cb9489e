package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vspa_http_requests_total",
			Help: "HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)
	httpDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vspa_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// RegisterMetrics registers the HTTP collectors. Call once at startup.
func RegisterMetrics() {
	prometheus.MustRegister(httpRequests, httpDuration)
}

// Metrics records one counter increment and one latency observation per
// request. The route label uses the gin template (e.g. /api/users/:id) so
// cardinality stays bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		httpDuration.Observe(time.Since(start).Seconds())
	}
}
