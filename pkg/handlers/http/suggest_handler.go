package http

import (
	"github.com/NeuralTrust/TrustDrift/pkg/app/analysis"
	"github.com/NeuralTrust/TrustDrift/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type suggestHandler struct {
	logger    *logrus.Logger
	suggester analysis.Suggester
}

func NewSuggestHandler(logger *logrus.Logger, suggester analysis.Suggester) Handler {
	return &suggestHandler{
		logger:    logger,
		suggester: suggester,
	}
}

// Handle @Summary Review a prompt edit
// @Description Judges an old/new system prompt pair and proposes fixes
// @Tags Analysis
// @Accept json
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param request body request.SuggestRequest true "Prompt pair"
// @Success 200 {object} analysis.Insight "Prompt insight"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /api/v1/suggest [post]
func (h *suggestHandler) Handle(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthenticated(c)
	}
	var req request.SuggestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	req.UserID = userID

	insight, err := h.suggester.Suggest(c.Context(), &req)
	if err != nil {
		return respondError(c, h.logger, err, "prompt suggestion failed")
	}
	return c.Status(fiber.StatusOK).JSON(insight)
}
