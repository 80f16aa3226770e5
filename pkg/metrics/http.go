package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Latency of handled HTTP requests
	HTTPRequestLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "susuhub_http_request_latency_seconds",
		Help:    "Latency of handled HTTP requests",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of handled HTTP requests by method, path and status
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "susuhub_http_requests_total",
		Help: "Total number of handled HTTP requests",
	}, []string{"method", "path", "status"})
)

func Init() {
	prometheus.MustRegister(
		HTTPRequestLatency,
		HTTPRequestsTotal,
	)
}

// Middleware records request counts and latency per route.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			HTTPRequestLatency.Observe(time.Since(start).Seconds())
			HTTPRequestsTotal.WithLabelValues(
				c.Request().Method,
				c.Path(),
				strconv.Itoa(status),
			).Inc()

			return err
		}
	}
}
