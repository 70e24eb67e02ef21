package http

import (
	"context"
	"errors"

	"github.com/NeuralTrust/TrustDrift/pkg/app/analysis"
	"github.com/NeuralTrust/TrustDrift/pkg/common"
	"github.com/NeuralTrust/TrustDrift/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	ErrInvalidJsonPayload = "invalid JSON payload"
	ErrUnauthenticated    = "Authorization required"
	errInternal           = "internal server error"
)

// statusFor maps service errors onto HTTP status codes. Unknown errors are 500.
func statusFor(err error) int {
	var notFound *domain.NotFoundError
	var denied *domain.AccessDeniedError
	switch {
	case errors.As(err, &notFound):
		return fiber.StatusNotFound
	case errors.As(err, &denied), errors.Is(err, domain.ErrDeepDiveRequired):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrMissingAPIKey):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNoDeepDivesLeft):
		return fiber.StatusTooManyRequests
	case errors.Is(err, analysis.ErrPlatformKeyUnset):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, logger *logrus.Logger, err error, msg string) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		logger.WithError(err).WithField("path", c.Path()).Error(msg)
		if status == fiber.StatusInternalServerError {
			return c.Status(status).JSON(fiber.Map{"error": errInternal})
		}
	} else {
		logger.WithError(err).WithField("path", c.Path()).Debug(msg)
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// callerID is the user resolved by the auth middleware.
func callerID(c *fiber.Ctx) (string, bool) {
	userID, ok := c.Locals(common.UserIDContextKey).(string)
	return userID, ok && userID != ""
}

func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": ErrUnauthenticated})
}
