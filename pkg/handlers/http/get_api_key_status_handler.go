package http

import (
	"github.com/NeuralTrust/TrustDrift/pkg/app/user"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getAPIKeyStatusHandler struct {
	logger  *logrus.Logger
	service user.Service
}

func NewGetAPIKeyStatusHandler(logger *logrus.Logger, service user.Service) Handler {
	return &getAPIKeyStatusHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Check whether the caller saved an API key
// @Tags Users
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Success 200 {object} user.KeyStatus "Key status with a short preview"
// @Router /api/v1/user/api-key/status [get]
func (h *getAPIKeyStatusHandler) Handle(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthenticated(c)
	}
	status, err := h.service.KeyStatus(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "failed to read api key status")
	}
	return c.Status(fiber.StatusOK).JSON(status)
}
