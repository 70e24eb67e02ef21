package middleware

import (
	"time"

	"github.com/NeuralTrust/TrustDrift/pkg/common"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type metricsMiddleware struct {
	logger *logrus.Logger
	worker metrics.Worker
}

func NewMetricsMiddleware(logger *logrus.Logger, worker metrics.Worker) Middleware {
	return &metricsMiddleware{
		logger: logger,
		worker: worker,
	}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		startTime := time.Now()
		c.Locals(common.LatencyContextKey, startTime)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		// the matched pattern keeps label cardinality bounded
		route := c.Path()
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}
		elapsed := time.Since(startTime)
		m.worker.RecordRequest(c.Method(), route, status, elapsed)

		m.logger.WithFields(logrus.Fields{
			"method":     c.Method(),
			"route":      route,
			"status":     status,
			"elapsed_ms": elapsed.Milliseconds(),
		}).Debug("request served")
		return err
	}
}
