package middleware

import (
	"fmt"

	"github.com/NeuralTrust/TrustDrift/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type panicRecoverMiddleware struct {
	logger *logrus.Logger
}

func NewPanicRecoverMiddleware(logger *logrus.Logger) Middleware {
	return &panicRecoverMiddleware{logger: logger}
}

// Middleware also stamps every response with a request id so a recovered panic
// can be matched to its log line.
func (m *panicRecoverMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		requestID := c.Get(common.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(common.RequestIDHeader, requestID)

		defer func() {
			r := recover()
			if r == nil {
				return
			}
			fields := logrus.Fields{
				"error":      fmt.Sprint(r),
				"method":     c.Method(),
				"path":       c.Path(),
				"request_id": requestID,
			}
			if userID, ok := c.Locals(common.UserIDContextKey).(string); ok {
				fields["user_id"] = userID
			}
			m.logger.WithFields(fields).Error("HTTP server panic recovered")

			err = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":      "internal server error",
				"request_id": requestID,
			})
		}()

		return c.Next()
	}
}
