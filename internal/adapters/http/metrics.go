package httpadapter

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "puzzler_http_requests_total",
		Help: "HTTP requests by route and status code",
	}, []string{"route", "code"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "puzzler_http_request_duration_seconds",
		Help:    "HTTP request latency by route",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~1.6s
	}, []string{"route"})

	solveRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "puzzler_solve_total",
		Help: "Solve calls by kind, method, and outcome",
	}, []string{"kind", "method", "outcome"})

	solveNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "puzzler_solve_nodes",
		Help:    "Configurations examined per solve call",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	})

	scrambles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "puzzler_scrambles_total",
		Help: "Generated puzzles by kind and difficulty",
	}, []string{"kind", "difficulty"})
)

// observeRequests records the request counter and latency histogram.
func observeRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
