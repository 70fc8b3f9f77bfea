package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics exposes request-level Prometheus instruments.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics registers the HTTP instruments on the default registry.
func NewHTTPMetrics() *HTTPMetrics {
	m := &HTTPMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "boarding_http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "boarding_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
	prometheus.MustRegister(m.requests, m.duration)
	return m
}

// QuoteMetrics counts price quote outcomes.
type QuoteMetrics struct {
	quotes *prometheus.CounterVec
}

// NewQuoteMetrics registers the pricing instruments on the default registry.
func NewQuoteMetrics() *QuoteMetrics {
	m := &QuoteMetrics{
		quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "boarding_price_quotes_total",
			Help: "Price quotes by outcome.",
		}, []string{"outcome"}),
	}
	prometheus.MustRegister(m.quotes)
	return m
}

// RecordQuote increments the quote counter for the given outcome.
func (m *QuoteMetrics) RecordQuote(outcome string) {
	if m == nil {
		return
	}
	m.quotes.WithLabelValues(strings.TrimSpace(outcome)).Inc()
}

// GinMiddleware records request counts and latencies.
func GinMiddleware(m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		m.requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
