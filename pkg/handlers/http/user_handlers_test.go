package http

import (
	"testing"

	"github.com/NeuralTrust/TrustDrift/pkg/app/user"
	userMocks "github.com/NeuralTrust/TrustDrift/pkg/app/user/mocks"
	"github.com/NeuralTrust/TrustDrift/pkg/domain"
	domainUser "github.com/NeuralTrust/TrustDrift/pkg/domain/user"
	"github.com/NeuralTrust/TrustDrift/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestInitUserHandler(t *testing.T) {
	svc := userMocks.NewService(t)
	svc.EXPECT().
		Init(mock.Anything, testUserID, &request.InitUserRequest{Email: "a@b.io", DisplayName: "Ana"}).
		Return(&user.Profile{
			User:  &domainUser.User{ID: testUserID, Email: "a@b.io"},
			Stats: domainUser.Stats{TotalCases: 2, TotalVersions: 5},
		}, nil)

	app := newTestApp(false)
	app.Post("/api/v1/user/init", NewInitUserHandler(testLogger(), svc).Handle)

	resp, body := doJSON(t, app, "POST", "/api/v1/user/init", map[string]any{"email": "a@b.io", "display_name": "Ana"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "user")
	assert.Contains(t, body, "stats")
}

func TestSaveAPIKeyHandler(t *testing.T) {
	t.Run("saved", func(t *testing.T) {
		svc := userMocks.NewService(t)
		svc.EXPECT().SaveAPIKey(mock.Anything, testUserID, mock.Anything).Return(nil)

		app := newTestApp(false)
		app.Put("/api/v1/user/api-key", NewSaveAPIKeyHandler(testLogger(), svc).Handle)

		resp, _ := doJSON(t, app, "PUT", "/api/v1/user/api-key", map[string]any{"api_key": "gsk_1234567890"})
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	})

	t.Run("rejected", func(t *testing.T) {
		svc := userMocks.NewService(t)
		svc.EXPECT().SaveAPIKey(mock.Anything, testUserID, mock.Anything).Return(domain.ErrInvalidInput)

		app := newTestApp(false)
		app.Put("/api/v1/user/api-key", NewSaveAPIKeyHandler(testLogger(), svc).Handle)

		resp, _ := doJSON(t, app, "PUT", "/api/v1/user/api-key", map[string]any{"api_key": "x"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetAPIKeyStatusHandler(t *testing.T) {
	preview := "gsk_1234..."
	svc := userMocks.NewService(t)
	svc.EXPECT().KeyStatus(mock.Anything, testUserID).Return(&user.KeyStatus{HasAPIKey: true, Preview: &preview}, nil)

	app := newTestApp(false)
	app.Get("/api/v1/user/api-key/status", NewGetAPIKeyStatusHandler(testLogger(), svc).Handle)

	resp, body := doJSON(t, app, "GET", "/api/v1/user/api-key/status", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["has_api_key"])
	assert.Equal(t, preview, body["api_key_preview"])
}

func TestSubscriptionHandlers(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		svc := userMocks.NewService(t)
		svc.EXPECT().Subscription(mock.Anything, testUserID).Return(nil, domain.NewNotFoundError("user", testUserID))

		app := newTestApp(false)
		app.Get("/api/v1/subscription", NewGetSubscriptionHandler(testLogger(), svc).Handle)

		resp, _ := doJSON(t, app, "GET", "/api/v1/subscription", nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("upgrade", func(t *testing.T) {
		svc := userMocks.NewService(t)
		svc.EXPECT().UpgradeToPro(mock.Anything, testUserID).Return(&user.Upgrade{
			Message:      "Successfully upgraded to PRO",
			Subscription: user.Subscription{Tier: domainUser.TierPro, IsPremium: true, DeepDivesRemaining: 20},
		}, nil)

		app := newTestApp(false)
		app.Post("/api/v1/subscription/upgrade", NewUpgradeSubscriptionHandler(testLogger(), svc).Handle)

		resp, body := doJSON(t, app, "POST", "/api/v1/subscription/upgrade", nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "pro", body["tier"])
		assert.Equal(t, float64(20), body["deep_dives_remaining"])
	})
}
