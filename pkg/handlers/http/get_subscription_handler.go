package http

import (
	"github.com/NeuralTrust/TrustDrift/pkg/app/user"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getSubscriptionHandler struct {
	logger  *logrus.Logger
	service user.Service
}

func NewGetSubscriptionHandler(logger *logrus.Logger, service user.Service) Handler {
	return &getSubscriptionHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Get the caller's subscription
// @Tags Subscription
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Success 200 {object} user.Subscription "Tier and deep dive quota"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /api/v1/subscription [get]
func (h *getSubscriptionHandler) Handle(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthenticated(c)
	}
	sub, err := h.service.Subscription(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "failed to read subscription")
	}
	return c.Status(fiber.StatusOK).JSON(sub)
}
