package http

import (
	"github.com/NeuralTrust/TrustDrift/pkg/app/analysis"
	"github.com/NeuralTrust/TrustDrift/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type analyzeHandler struct {
	logger *logrus.Logger
	runner analysis.Runner
}

func NewAnalyzeHandler(logger *logrus.Logger, runner analysis.Runner) Handler {
	return &analyzeHandler{
		logger: logger,
		runner: runner,
	}
}

// Handle @Summary Run a regression analysis
// @Description Asks both services the same questions, scores the drift and stores a new case version
// @Tags Analysis
// @Accept json
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param request body request.AnalyzeRequest true "Analysis request"
// @Success 200 {object} analysis.Report "Analysis report"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Case not accessible"
// @Router /api/v1/analyze [post]
func (h *analyzeHandler) Handle(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthenticated(c)
	}
	var req request.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to parse analyze request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	req.UserID = userID

	report, err := h.runner.Analyze(c.Context(), &req)
	if err != nil {
		return respondError(c, h.logger, err, "analysis failed")
	}
	return c.Status(fiber.StatusOK).JSON(report)
}
