package http

import (
	"github.com/NeuralTrust/TrustDrift/pkg/app/evalcase"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listMembersHandler struct {
	logger  *logrus.Logger
	service evalcase.Service
}

func NewListMembersHandler(logger *logrus.Logger, service evalcase.Service) Handler {
	return &listMembersHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary List who can read a case
// @Tags Cases
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param case_id path string true "Case ID"
// @Success 200 {object} map[string]interface{} "Members, owner first"
// @Router /api/v1/cases/{case_id}/members [get]
func (h *listMembersHandler) Handle(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthenticated(c)
	}
	members, err := h.service.Members(c.Context(), c.Params("case_id"), userID)
	if err != nil {
		return respondError(c, h.logger, err, "failed to list members")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"members": members})
}
