package http

import (
	"github.com/NeuralTrust/TrustDrift/pkg/app/evalcase"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type deleteCaseHandler struct {
	logger  *logrus.Logger
	service evalcase.Service
}

func NewDeleteCaseHandler(logger *logrus.Logger, service evalcase.Service) Handler {
	return &deleteCaseHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Delete a case and all of its versions
// @Description Owner only
// @Tags Cases
// @Param Authorization header string true "Authorization token"
// @Param case_id path string true "Case ID"
// @Success 204 "Deleted"
// @Failure 403 {object} map[string]interface{} "Not the owner"
// @Router /api/v1/cases/{case_id} [delete]
func (h *deleteCaseHandler) Handle(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthenticated(c)
	}
	caseID := c.Params("case_id")
	if caseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "case_id is required"})
	}

	if err := h.service.Delete(c.Context(), caseID, userID); err != nil {
		return respondError(c, h.logger, err, "failed to delete case")
	}
	h.logger.WithFields(logrus.Fields{"case_id": caseID, "user_id": userID}).Info("case deleted")
	return c.SendStatus(fiber.StatusNoContent)
}
