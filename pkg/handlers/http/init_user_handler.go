package http

import (
	"github.com/NeuralTrust/TrustDrift/pkg/app/user"
	"github.com/NeuralTrust/TrustDrift/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type initUserHandler struct {
	logger  *logrus.Logger
	service user.Service
}

func NewInitUserHandler(logger *logrus.Logger, service user.Service) Handler {
	return &initUserHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Initialize the caller's account
// @Description Creates the user on first login, refreshes email and display name afterwards
// @Tags Users
// @Accept json
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Param request body request.InitUserRequest true "Profile"
// @Success 200 {object} user.Profile "User with stats"
// @Router /api/v1/user/init [post]
func (h *initUserHandler) Handle(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthenticated(c)
	}
	var req request.InitUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	profile, err := h.service.Init(c.Context(), userID, &req)
	if err != nil {
		return respondError(c, h.logger, err, "failed to initialize user")
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}
