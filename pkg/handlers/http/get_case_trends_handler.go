package http

import (
	"github.com/NeuralTrust/TrustDrift/pkg/app/version"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getCaseTrendsHandler struct {
	logger *logrus.Logger
	finder version.Finder
}

func NewGetCaseTrendsHandler(logger *logrus.Logger, finder version.Finder) Handler {
	return &getCaseTrendsHandler{
		logger: logger,
		finder: finder,
	}
}

// Handle @Summary Cookedness and regression trends across versions
// @Tags Versions
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param case_id path string true "Case ID"
// @Success 200 {object} version.Trends "Trend series"
// @Router /api/v1/cases/{case_id}/trends [get]
func (h *getCaseTrendsHandler) Handle(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthenticated(c)
	}
	trends, err := h.finder.Trends(c.Context(), c.Params("case_id"), userID)
	if err != nil {
		return respondError(c, h.logger, err, "failed to compute trends")
	}
	return c.Status(fiber.StatusOK).JSON(trends)
}
