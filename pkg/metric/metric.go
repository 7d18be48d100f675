// Package metric collects request-level Prometheus metrics and serves the
// scrape endpoint.
package metric

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration prometheus.Histogram
	loginsTotal     *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dda_http_requests_total",
			Help: "Total HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dda_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}),
		loginsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dda_logins_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
	}

	c.registry.MustRegister(
		c.requestsTotal,
		c.requestDuration,
		c.loginsTotal,
	)
	return c
}

// Middleware observes every request served by the router.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		c.requestsTotal.WithLabelValues(
			ctx.Request.Method,
			route,
			strconv.Itoa(ctx.Writer.Status()),
		).Inc()
		c.requestDuration.Observe(time.Since(start).Seconds())
	}
}

// RecordLogin counts a login attempt outcome ("success" or an error code).
func (c *Collector) RecordLogin(outcome string) {
	c.loginsTotal.WithLabelValues(outcome).Inc()
}

// Handler serves the Prometheus scrape endpoint.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
