package http

import (
	"github.com/NeuralTrust/TrustDrift/pkg/app/user"
	"github.com/NeuralTrust/TrustDrift/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type saveAPIKeyHandler struct {
	logger  *logrus.Logger
	service user.Service
}

func NewSaveAPIKeyHandler(logger *logrus.Logger, service user.Service) Handler {
	return &saveAPIKeyHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Save the caller's provider API key
// @Tags Users
// @Accept json
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param request body request.SaveAPIKeyRequest true "API key"
// @Success 204 "Saved"
// @Failure 400 {object} map[string]interface{} "Invalid key"
// @Router /api/v1/user/api-key [put]
func (h *saveAPIKeyHandler) Handle(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthenticated(c)
	}
	var req request.SaveAPIKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	if err := h.service.SaveAPIKey(c.Context(), userID, &req); err != nil {
		return respondError(c, h.logger, err, "failed to save api key")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
