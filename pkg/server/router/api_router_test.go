package router

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/TrustDrift/pkg/common"
	handlers "github.com/NeuralTrust/TrustDrift/pkg/handlers/http"
	"github.com/NeuralTrust/TrustDrift/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoHandler string

func (h echoHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).SendString(string(h))
}

func stubTransport() handlers.HandlerTransport {
	return handlers.HandlerTransport{
		AnalyzeHandler:             echoHandler("analyze"),
		DeepDiveHandler:            echoHandler("deep-dive"),
		SuggestHandler:             echoHandler("suggest"),
		InitUserHandler:            echoHandler("user-init"),
		SaveAPIKeyHandler:          echoHandler("api-key"),
		GetAPIKeyStatusHandler:     echoHandler("api-key-status"),
		GetSubscriptionHandler:     echoHandler("subscription"),
		UpgradeSubscriptionHandler: echoHandler("upgrade"),
		CreateCaseHandler:          echoHandler("create-case"),
		ListCasesHandler:           echoHandler("list-cases"),
		GetCaseHandler:             echoHandler("get-case"),
		UpdateCaseHandler:          echoHandler("update-case"),
		DeleteCaseHandler:          echoHandler("delete-case"),
		ListMembersHandler:         echoHandler("list-members"),
		AddMemberHandler:           echoHandler("add-member"),
		GetCaseVersionHandler:      echoHandler("get-version"),
		ListCaseVersionsHandler:    echoHandler("list-versions"),
		LatestCaseVersionHandler:   echoHandler("latest-version"),
		GetCaseTrendsHandler:       echoHandler("trends"),
		GetVersionHandler:          echoHandler("build"),
	}
}

func newRoutedApp(t *testing.T) *fiber.App {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	transport := &middleware.Transport{
		AuthMiddleware:         middleware.NewAuthMiddleware(logger, nil),
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(logger),
	}
	app := fiber.New()
	require.NoError(t, NewAPIRouter(transport, stubTransport(), "http://localhost/swagger.json").BuildRoutes(app))
	return app
}

func TestAPIRouter_Routes(t *testing.T) {
	app := newRoutedApp(t)

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{"POST", "/api/v1/analyze", "analyze"},
		{"POST", "/api/v1/deep-dive", "deep-dive"},
		{"PUT", "/api/v1/user/api-key", "api-key"},
		{"GET", "/api/v1/subscription", "subscription"},
		{"GET", "/api/v1/cases/c1", "get-case"},
		{"GET", "/api/v1/cases/c1/versions/latest", "latest-version"},
		{"GET", "/api/v1/cases/c1/trends", "trends"},
		{"GET", "/api/v1/versions/v1", "get-version"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set(common.UserIDHeader, "user_1")
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(body))
		})
	}
}

func TestAPIRouter_AuthOnlyGuardsAPI(t *testing.T) {
	app := newRoutedApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/cases", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/version", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAPIRouter_RequiresAuthMiddleware(t *testing.T) {
	err := NewAPIRouter(&middleware.Transport{}, stubTransport(), "").BuildRoutes(fiber.New())
	assert.ErrorIs(t, err, ErrMissingAuthMiddleware)
}
