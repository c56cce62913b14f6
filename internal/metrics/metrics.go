// Package metrics is the single source of truth for Prometheus metric names,
// labels, and help strings. Metrics register with the default registry via
// promauto at init time; the /metrics route serves them.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "kampus_admin"

// RequestsTotal counts handled HTTP requests by route, method, and status.
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled.",
	},
	[]string{"method", "path", "status"},
)

// RequestDuration measures request handling time per route.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP request handling.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

// Middleware records RequestsTotal and RequestDuration for every request.
// The route pattern, not the raw path, is used as the label to keep
// cardinality bounded.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		method := c.Method()
		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}

		RequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		RequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		return err
	}
}
