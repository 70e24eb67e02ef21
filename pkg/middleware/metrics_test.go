package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/TrustDrift/pkg/common"
	metricsMocks "github.com/NeuralTrust/TrustDrift/pkg/infra/metrics/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware_RecordsRoutePattern(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	worker := metricsMocks.NewWorker(t)
	worker.EXPECT().RecordRequest("GET", "/api/v1/cases/:case_id", fiber.StatusNotFound, mock.Anything).Return()

	app := fiber.New()
	app.Use(NewMetricsMiddleware(logger, worker).Middleware())
	app.Get("/api/v1/cases/:case_id", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "case not found"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/cases/abc", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestPanicRecoverMiddleware(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	app := fiber.New()
	app.Use(NewPanicRecoverMiddleware(logger).Middleware())
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("boom")
	})

	req := httptest.NewRequest("GET", "/boom", nil)
	req.Header.Set(common.RequestIDHeader, "req-42")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "req-42", resp.Header.Get(common.RequestIDHeader))

	resp, err = app.Test(httptest.NewRequest("GET", "/missing", nil), -1)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(common.RequestIDHeader))
}

func TestCORSGlobalMiddleware_Preflight(t *testing.T) {
	app := fiber.New()
	app.Use(NewCORSGlobalMiddleware([]string{"https://app.trustdrift.io"}, []string{"GET", "POST"}, true, nil, "600").Middleware())
	app.Post("/api/v1/analyze", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest("OPTIONS", "/api/v1/analyze", nil)
	req.Header.Set("Origin", "https://app.trustdrift.io")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "https://app.trustdrift.io", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST", resp.Header.Get("Access-Control-Allow-Methods"))

	req = httptest.NewRequest("OPTIONS", "/api/v1/analyze", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}
