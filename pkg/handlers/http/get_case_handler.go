package http

import (
	"github.com/NeuralTrust/TrustDrift/pkg/app/evalcase"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getCaseHandler struct {
	logger  *logrus.Logger
	service evalcase.Service
}

func NewGetCaseHandler(logger *logrus.Logger, service evalcase.Service) Handler {
	return &getCaseHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Retrieve a case with its versions
// @Tags Cases
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param case_id path string true "Case ID"
// @Success 200 {object} evalcase.Detail "Case"
// @Failure 403 {object} map[string]interface{} "Case not shared with caller"
// @Failure 404 {object} map[string]interface{} "Case not found"
// @Router /api/v1/cases/{case_id} [get]
func (h *getCaseHandler) Handle(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthenticated(c)
	}
	caseID := c.Params("case_id")
	if caseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "case_id is required"})
	}

	detail, err := h.service.Get(c.Context(), caseID, userID)
	if err != nil {
		return respondError(c, h.logger, err, "failed to get case")
	}
	return c.Status(fiber.StatusOK).JSON(detail)
}
