package http

import (
	"github.com/NeuralTrust/TrustDrift/pkg/app/evalcase"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listCasesHandler struct {
	logger  *logrus.Logger
	service evalcase.Service
}

func NewListCasesHandler(logger *logrus.Logger, service evalcase.Service) Handler {
	return &listCasesHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary List cases
// @Description Owned and shared cases, most recently updated first
// @Tags Cases
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Success 200 {object} map[string]interface{} "Cases"
// @Router /api/v1/cases [get]
func (h *listCasesHandler) Handle(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthenticated(c)
	}
	cases, err := h.service.List(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "failed to list cases")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"cases": cases})
}
