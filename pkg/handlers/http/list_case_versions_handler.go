package http

import (
	"github.com/NeuralTrust/TrustDrift/pkg/app/version"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listCaseVersionsHandler struct {
	logger *logrus.Logger
	finder version.Finder
}

func NewListCaseVersionsHandler(logger *logrus.Logger, finder version.Finder) Handler {
	return &listCaseVersionsHandler{
		logger: logger,
		finder: finder,
	}
}

// Handle @Summary List the versions of a case
// @Description Newest version first
// @Tags Versions
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param case_id path string true "Case ID"
// @Success 200 {object} map[string]interface{} "Version metadata"
// @Router /api/v1/cases/{case_id}/versions [get]
func (h *listCaseVersionsHandler) Handle(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthenticated(c)
	}
	versions, err := h.finder.List(c.Context(), c.Params("case_id"), userID)
	if err != nil {
		return respondError(c, h.logger, err, "failed to list versions")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"versions": versions})
}
