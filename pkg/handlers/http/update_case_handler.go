package http

import (
	"github.com/NeuralTrust/TrustDrift/pkg/app/evalcase"
	"github.com/NeuralTrust/TrustDrift/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type updateCaseHandler struct {
	logger  *logrus.Logger
	service evalcase.Service
}

func NewUpdateCaseHandler(logger *logrus.Logger, service evalcase.Service) Handler {
	return &updateCaseHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Rename or describe a case
// @Description Owner only
// @Tags Cases
// @Accept json
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param case_id path string true "Case ID"
// @Param request body request.UpdateCaseRequest true "Changes"
// @Success 200 {object} evalcase.Case "Updated case"
// @Router /api/v1/cases/{case_id} [put]
func (h *updateCaseHandler) Handle(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthenticated(c)
	}
	caseID := c.Params("case_id")
	if caseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "case_id is required"})
	}
	var req request.UpdateCaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	updated, err := h.service.Update(c.Context(), caseID, userID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "failed to update case")
	}
	return c.Status(fiber.StatusOK).JSON(updated)
}
