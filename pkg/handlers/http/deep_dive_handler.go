package http

import (
	"github.com/NeuralTrust/TrustDrift/pkg/app/analysis"
	"github.com/NeuralTrust/TrustDrift/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type deepDiveHandler struct {
	logger *logrus.Logger
	runner analysis.Runner
}

func NewDeepDiveHandler(logger *logrus.Logger, runner analysis.Runner) Handler {
	return &deepDiveHandler{
		logger: logger,
		runner: runner,
	}
}

// Handle @Summary Run a deep dive analysis
// @Description Pro only. Consumes one deep dive, runs at least ten cases and adds premium metrics
// @Tags Analysis
// @Accept json
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param request body request.AnalyzeRequest true "Analysis request"
// @Success 200 {object} analysis.Report "Deep dive report"
// @Failure 403 {object} map[string]interface{} "Pro subscription required"
// @Failure 429 {object} map[string]interface{} "No deep dives remaining"
// @Router /api/v1/deep-dive [post]
func (h *deepDiveHandler) Handle(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthenticated(c)
	}
	var req request.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to parse deep dive request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	req.UserID = userID

	report, err := h.runner.DeepDive(c.Context(), &req)
	if err != nil {
		return respondError(c, h.logger, err, "deep dive failed")
	}
	return c.Status(fiber.StatusOK).JSON(report)
}
