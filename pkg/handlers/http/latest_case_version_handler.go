package http

import (
	"github.com/NeuralTrust/TrustDrift/pkg/app/version"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type latestCaseVersionHandler struct {
	logger *logrus.Logger
	finder version.Finder
}

func NewLatestCaseVersionHandler(logger *logrus.Logger, finder version.Finder) Handler {
	return &latestCaseVersionHandler{
		logger: logger,
		finder: finder,
	}
}

// Handle @Summary Retrieve the newest version of a case
// @Tags Versions
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param case_id path string true "Case ID"
// @Success 200 {object} version.Version "Latest version"
// @Failure 404 {object} map[string]interface{} "Case has no versions"
// @Router /api/v1/cases/{case_id}/versions/latest [get]
func (h *latestCaseVersionHandler) Handle(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthenticated(c)
	}
	v, err := h.finder.Latest(c.Context(), c.Params("case_id"), userID)
	if err != nil {
		return respondError(c, h.logger, err, "failed to get latest version")
	}
	return c.Status(fiber.StatusOK).JSON(v)
}
