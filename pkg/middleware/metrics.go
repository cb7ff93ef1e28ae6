package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/prometheus"
)

type metricsMiddleware struct {
	logger *logrus.Logger
}

func NewMetricsMiddleware(logger *logrus.Logger) Middleware {
	return &metricsMiddleware{logger: logger}
}

// Middleware records request counts and latency per route. The route
// pattern is used instead of the raw path to keep cardinality bounded.
func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			}
		}

		prometheus.RequestTotal.WithLabelValues(
			c.Method(), path, strconv.Itoa(status),
		).Inc()

		if prometheus.Config.EnableLatency {
			prometheus.RequestLatency.WithLabelValues(c.Method(), path).
				Observe(float64(time.Since(start).Milliseconds()))
		}

		return err
	}
}
