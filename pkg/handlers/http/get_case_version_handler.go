package http

import (
	"github.com/NeuralTrust/TrustDrift/pkg/app/version"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getCaseVersionHandler struct {
	logger *logrus.Logger
	finder version.Finder
}

func NewGetCaseVersionHandler(logger *logrus.Logger, finder version.Finder) Handler {
	return &getCaseVersionHandler{
		logger: logger,
		finder: finder,
	}
}

// Handle @Summary Retrieve a stored analysis version
// @Tags Versions
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param version_id path string true "Version ID"
// @Success 200 {object} version.Version "Version with its request and report"
// @Failure 403 {object} map[string]interface{} "Version not accessible"
// @Router /api/v1/versions/{version_id} [get]
func (h *getCaseVersionHandler) Handle(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthenticated(c)
	}
	versionID := c.Params("version_id")
	if versionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "version_id is required"})
	}

	v, err := h.finder.Get(c.Context(), versionID, userID)
	if err != nil {
		return respondError(c, h.logger, err, "failed to get version")
	}
	return c.Status(fiber.StatusOK).JSON(v)
}
