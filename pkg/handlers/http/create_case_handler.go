package http

import (
	"github.com/NeuralTrust/TrustDrift/pkg/app/evalcase"
	"github.com/NeuralTrust/TrustDrift/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type createCaseHandler struct {
	logger  *logrus.Logger
	service evalcase.Service
}

func NewCreateCaseHandler(logger *logrus.Logger, service evalcase.Service) Handler {
	return &createCaseHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Create a case
// @Tags Cases
// @Accept json
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param request body request.CreateCaseRequest true "Case"
// @Success 201 {object} evalcase.Case "Case created"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Router /api/v1/cases [post]
func (h *createCaseHandler) Handle(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthenticated(c)
	}
	var req request.CreateCaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	req.UserID = userID

	created, err := h.service.Create(c.Context(), &req)
	if err != nil {
		return respondError(c, h.logger, err, "failed to create case")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
