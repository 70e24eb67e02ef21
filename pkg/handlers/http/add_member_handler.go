package http

import (
	"github.com/NeuralTrust/TrustDrift/pkg/app/evalcase"
	"github.com/NeuralTrust/TrustDrift/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type addMemberHandler struct {
	logger  *logrus.Logger
	service evalcase.Service
}

func NewAddMemberHandler(logger *logrus.Logger, service evalcase.Service) Handler {
	return &addMemberHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Share a case with another user
// @Description Owner only
// @Tags Cases
// @Accept json
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param case_id path string true "Case ID"
// @Param request body request.AddMemberRequest true "Member"
// @Success 201 {object} evalcase.Member "Member added"
// @Router /api/v1/cases/{case_id}/members [post]
func (h *addMemberHandler) Handle(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthenticated(c)
	}
	var req request.AddMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	member, err := h.service.AddMember(c.Context(), c.Params("case_id"), userID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "failed to add member")
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}
