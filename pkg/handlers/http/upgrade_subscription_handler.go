package http

import (
	"github.com/NeuralTrust/TrustDrift/pkg/app/user"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type upgradeSubscriptionHandler struct {
	logger  *logrus.Logger
	service user.Service
}

func NewUpgradeSubscriptionHandler(logger *logrus.Logger, service user.Service) Handler {
	return &upgradeSubscriptionHandler{
		logger:  logger,
		service: service,
	}
}

// Handle @Summary Upgrade the caller to PRO
// @Description Grants the pro deep dive allowance; calling it again is a no-op
// @Tags Subscription
// @Produce json
// @Param Authorization header string true "Authorization token"
// @Success 200 {object} user.Upgrade "Upgrade result"
// @Router /api/v1/subscription/upgrade [post]
func (h *upgradeSubscriptionHandler) Handle(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return unauthenticated(c)
	}
	result, err := h.service.UpgradeToPro(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err, "failed to upgrade subscription")
	}
	h.logger.WithField("user_id", userID).Info("subscription upgraded")
	return c.Status(fiber.StatusOK).JSON(result)
}
