package http

import (
	"testing"

	"github.com/NeuralTrust/TrustDrift/pkg/app/version"
	versionMocks "github.com/NeuralTrust/TrustDrift/pkg/app/version/mocks"
	"github.com/NeuralTrust/TrustDrift/pkg/domain"
	domainVersion "github.com/NeuralTrust/TrustDrift/pkg/domain/version"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVersionApp(finder version.Finder) *fiber.App {
	logger := testLogger()
	app := newTestApp(false)
	app.Get("/api/v1/versions/:version_id", NewGetCaseVersionHandler(logger, finder).Handle)
	app.Get("/api/v1/cases/:case_id/versions", NewListCaseVersionsHandler(logger, finder).Handle)
	app.Get("/api/v1/cases/:case_id/versions/latest", NewLatestCaseVersionHandler(logger, finder).Handle)
	app.Get("/api/v1/cases/:case_id/trends", NewGetCaseTrendsHandler(logger, finder).Handle)
	return app
}

func TestGetCaseVersionHandler(t *testing.T) {
	finder := versionMocks.NewFinder(t)
	finder.EXPECT().Get(mock.Anything, "v1", testUserID).
		Return(&domainVersion.Version{ID: "v1", CaseID: "case_1", VersionNumber: 3, Verdict: "Regression"}, nil)
	finder.EXPECT().Get(mock.Anything, "v2", testUserID).
		Return(nil, domain.NewAccessDeniedError("version", "v2"))

	app := newVersionApp(finder)

	resp, body := doJSON(t, app, "GET", "/api/v1/versions/v1", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(3), body["version_number"])

	resp, _ = doJSON(t, app, "GET", "/api/v1/versions/v2", nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestListAndLatestCaseVersionHandlers(t *testing.T) {
	finder := versionMocks.NewFinder(t)
	finder.EXPECT().List(mock.Anything, "case_1", testUserID).Return([]domainVersion.Metadata{
		{ID: "v2", VersionNumber: 2, IsDeepDive: true},
		{ID: "v1", VersionNumber: 1},
	}, nil)
	finder.EXPECT().Latest(mock.Anything, "case_1", testUserID).Return(&domainVersion.Version{ID: "v2", VersionNumber: 2}, nil)

	app := newVersionApp(finder)

	resp, body := doJSON(t, app, "GET", "/api/v1/cases/case_1/versions", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	versions, ok := body["versions"].([]any)
	require.True(t, ok)
	require.Len(t, versions, 2)
	assert.Equal(t, true, versions[0].(map[string]any)["is_deep_dive"])

	resp, body = doJSON(t, app, "GET", "/api/v1/cases/case_1/versions/latest", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "v2", body["version_id"])
}

func TestGetCaseTrendsHandler(t *testing.T) {
	finder := versionMocks.NewFinder(t)
	finder.EXPECT().Trends(mock.Anything, "case_1", testUserID).Return(&version.Trends{
		Cookedness:        []int{10, 45},
		RegressionHistory: []version.RegressionPoint{{Version: 2, Verdict: "Regression"}},
		Tradeoff:          []version.TradeoffPoint{{Version: 2, NetEffect: "unsafe_helpfulness_gain", Cookedness: 45}},
	}, nil)

	app := newVersionApp(finder)

	resp, body := doJSON(t, app, "GET", "/api/v1/cases/case_1/trends", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, []any{float64(10), float64(45)}, body["cookedness_trend"])
}

func TestGetVersionHandler(t *testing.T) {
	app := fiber.New()
	app.Get("/version", NewGetVersionHandler(testLogger()).Handle)

	resp, body := doJSON(t, app, "GET", "/version", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "TrustDrift", body["app_name"])
}
