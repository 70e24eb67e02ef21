package http

import (
	"testing"

	"github.com/NeuralTrust/TrustDrift/pkg/app/analysis"
	analysisMocks "github.com/NeuralTrust/TrustDrift/pkg/app/analysis/mocks"
	"github.com/NeuralTrust/TrustDrift/pkg/domain"
	"github.com/NeuralTrust/TrustDrift/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAnalyzeHandler_UsesCallerIdentity(t *testing.T) {
	runner := analysisMocks.NewRunner(t)
	runner.EXPECT().
		Analyze(mock.Anything, mock.MatchedBy(func(r *request.AnalyzeRequest) bool {
			return r.UserID == testUserID && r.Goal == "tax advice"
		})).
		Return(&analysis.Report{RunID: "run_0000abcd"}, nil)

	app := newTestApp(false)
	app.Post("/api/v1/analyze", NewAnalyzeHandler(testLogger(), runner).Handle)

	resp, body := doJSON(t, app, "POST", "/api/v1/analyze", map[string]any{
		"user_id": "spoofed",
		"goal":    "tax advice",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "run_0000abcd", body["run_id"])
}

func TestAnalyzeHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		anonymous  bool
		body       any
		runnerErr  error
		wantStatus int
	}{
		{name: "anonymous", anonymous: true, body: map[string]any{}, wantStatus: fiber.StatusUnauthorized},
		{name: "malformed body", body: "{not json", wantStatus: fiber.StatusBadRequest},
		{name: "validation", body: map[string]any{}, runnerErr: domain.ErrInvalidInput, wantStatus: fiber.StatusBadRequest},
		{name: "case denied", body: map[string]any{}, runnerErr: domain.NewAccessDeniedError("case", "c1"), wantStatus: fiber.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := analysisMocks.NewRunner(t)
			if tt.runnerErr != nil {
				runner.EXPECT().Analyze(mock.Anything, mock.Anything).Return(nil, tt.runnerErr)
			}
			app := newTestApp(tt.anonymous)
			app.Post("/api/v1/analyze", NewAnalyzeHandler(testLogger(), runner).Handle)

			resp, body := doJSON(t, app, "POST", "/api/v1/analyze", tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestDeepDiveHandler(t *testing.T) {
	t.Run("quota exhausted", func(t *testing.T) {
		runner := analysisMocks.NewRunner(t)
		runner.EXPECT().DeepDive(mock.Anything, mock.Anything).Return(nil, domain.ErrNoDeepDivesLeft)

		app := newTestApp(false)
		app.Post("/api/v1/deep-dive", NewDeepDiveHandler(testLogger(), runner).Handle)

		resp, body := doJSON(t, app, "POST", "/api/v1/deep-dive", map[string]any{"goal": "g"})
		assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
		assert.Equal(t, domain.ErrNoDeepDivesLeft.Error(), body["error"])
	})

	t.Run("success", func(t *testing.T) {
		remaining := 3
		runner := analysisMocks.NewRunner(t)
		runner.EXPECT().DeepDive(mock.Anything, mock.Anything).
			Return(&analysis.Report{RunID: "deep_0000abcd", IsDeepDive: true, DeepDivesRemaining: &remaining}, nil)

		app := newTestApp(false)
		app.Post("/api/v1/deep-dive", NewDeepDiveHandler(testLogger(), runner).Handle)

		resp, body := doJSON(t, app, "POST", "/api/v1/deep-dive", map[string]any{"goal": "g"})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, true, body["is_deep_dive"])
		assert.Equal(t, float64(3), body["deep_dives_remaining"])
	})
}

func TestSuggestHandler(t *testing.T) {
	suggester := analysisMocks.NewSuggester(t)
	suggester.EXPECT().
		Suggest(mock.Anything, mock.MatchedBy(func(r *request.SuggestRequest) bool { return r.UserID == testUserID })).
		Return(&analysis.Insight{ChangeType: "tone", ShortSummary: "more assertive"}, nil)

	app := newTestApp(false)
	app.Post("/api/v1/suggest", NewSuggestHandler(testLogger(), suggester).Handle)

	resp, body := doJSON(t, app, "POST", "/api/v1/suggest", map[string]any{"old_prompt": "a", "new_prompt": "b"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "tone", body["change_type"])
}
