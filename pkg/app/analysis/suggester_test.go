package analysis_test

import (
	"context"
	"testing"

	"github.com/NeuralTrust/TrustDrift/pkg/app/analysis"
	"github.com/NeuralTrust/TrustDrift/pkg/domain"
	userMocks "github.com/NeuralTrust/TrustDrift/pkg/domain/user/mocks"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/judge"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/narrator"
	"github.com/NeuralTrust/TrustDrift/pkg/handlers/http/request"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers"
	providerMocks "github.com/NeuralTrust/TrustDrift/pkg/infra/providers/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSuggester(t *testing.T, llm *providerMocks.Client, users *userMocks.Repository) analysis.Suggester {
	logger := testLogger()
	p := analysis.NewPipeline(nil, judge.NewAdapter(logger, llm, judge.Config{}), narrator.New(logger, llm, narrator.Config{}))
	return analysis.NewSuggester(logger, users, p, analysis.Config{})
}

func TestSuggester_Suggest(t *testing.T) {
	users := userMocks.NewRepository(t)
	llm := providerMocks.NewClient(t)
	users.EXPECT().Get(mock.Anything, "u1").Return(freeUser(), nil)

	var judgePrompt string
	llm.EXPECT().Ask(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, cfg *providers.Config, prompt string) (*providers.CompletionResponse, error) {
			assert.Equal(t, "gsk_user_key", cfg.Credentials.ApiKey)
			if cfg.WantsJSON() {
				judgePrompt = prompt
				return &providers.CompletionResponse{Response: `{
  "verdict": "Regression",
  "change_type": "removed-caveats",
  "change_summary": "Caveats were dropped.",
  "summary": "The revised prompt encourages overconfident answers.",
  "revised_prompt": "Answer carefully and suggest consulting a professional.",
  "quick_tests": ["Ask about HRA exemptions"]
}`}, nil
			}
			return &providers.CompletionResponse{Response: narratorOutput}, nil
		})

	insight, err := newSuggester(t, llm, users).Suggest(context.Background(), &request.SuggestRequest{
		UserID:             "u1",
		Goal:               "tax assistant",
		OldPrompt:          "Be careful and add disclaimers.",
		NewPrompt:          "Be direct.",
		DeterministicFlags: []string{"SAFETY_COMPROMISE"},
	})
	require.NoError(t, err)

	assert.Equal(t, "removed-caveats", insight.ChangeType)
	assert.Equal(t, "Caveats were dropped.", insight.ShortSummary)
	assert.Equal(t, "The revised prompt encourages overconfident answers.", insight.DetailedReview)
	require.NotNil(t, insight.RevisedPrompt)
	assert.Equal(t, []string{"Ask about HRA exemptions"}, insight.QuickTests)
	assert.Contains(t, judgePrompt, "Be direct.")
	assert.Contains(t, judgePrompt, "SAFETY_COMPROMISE")
}

func TestSuggester_Suggest_Errors(t *testing.T) {
	t.Run("missing prompts", func(t *testing.T) {
		s := newSuggester(t, providerMocks.NewClient(t), userMocks.NewRepository(t))

		_, err := s.Suggest(context.Background(), &request.SuggestRequest{UserID: "u1"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("no key", func(t *testing.T) {
		users := userMocks.NewRepository(t)
		u := freeUser()
		u.APIKey = ""
		users.EXPECT().Get(mock.Anything, "u1").Return(u, nil)
		s := newSuggester(t, providerMocks.NewClient(t), users)

		_, err := s.Suggest(context.Background(), &request.SuggestRequest{UserID: "u1", OldPrompt: "a", NewPrompt: "b"})
		assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
	})
}
