package http

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/NeuralTrust/TrustDrift/pkg/app/analysis"
	"github.com/NeuralTrust/TrustDrift/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", domain.NewNotFoundError("case", "c1"), fiber.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", domain.NewNotFoundError("user", "u1")), fiber.StatusNotFound},
		{"access denied", domain.NewAccessDeniedError("case", "c1"), fiber.StatusForbidden},
		{"deep dive requires pro", domain.ErrDeepDiveRequired, fiber.StatusForbidden},
		{"invalid input", fmt.Errorf("%w: goal is required", domain.ErrInvalidInput), fiber.StatusBadRequest},
		{"missing key", domain.ErrMissingAPIKey, fiber.StatusBadRequest},
		{"quota exhausted", domain.ErrNoDeepDivesLeft, fiber.StatusTooManyRequests},
		{"platform key unset", analysis.ErrPlatformKeyUnset, fiber.StatusServiceUnavailable},
		{"deadline", context.DeadlineExceeded, fiber.StatusGatewayTimeout},
		{"unknown", errors.New("db down"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
