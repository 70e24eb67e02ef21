package analysis

import (
	"context"

	"github.com/NeuralTrust/TrustDrift/pkg/domain/user"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation"
	"github.com/NeuralTrust/TrustDrift/pkg/handlers/http/request"
	"github.com/sirupsen/logrus"
)

const (
	// promptReviewScore stands in for the differ when only prompts are compared.
	promptReviewScore    = 50
	promptReviewQuestion = "N/A"
)

// Insight is the prompt-fixer view of a judgment.
type Insight struct {
	ChangeType     string                  `json:"change_type"`
	ShortSummary   string                  `json:"short_summary"`
	DetailedReview string                  `json:"detailed_review"`
	Findings       []string                `json:"findings"`
	Suggestions    []evaluation.Suggestion `json:"suggestions"`
	RevisedPrompt  *string                 `json:"revised_prompt"`
	QuickTests     []string                `json:"quick_tests"`
	MetricsToWatch []string                `json:"metrics_to_watch"`
}

//go:generate mockery --name=Suggester --dir=. --output=./mocks --filename=suggester_mock.go --case=underscore --with-expecter
type Suggester interface {
	// Suggest reviews a prompt edit on its own, without calling the services under test.
	Suggest(ctx context.Context, req *request.SuggestRequest) (*Insight, error)
}

type suggester struct {
	logger   *logrus.Logger
	users    user.Repository
	pipeline *Pipeline
	cfg      Config
}

func NewSuggester(logger *logrus.Logger, users user.Repository, pipeline *Pipeline, cfg Config) Suggester {
	return &suggester{
		logger:   logger,
		users:    users,
		pipeline: pipeline,
		cfg:      cfg,
	}
}

func (s *suggester) Suggest(ctx context.Context, req *request.SuggestRequest) (*Insight, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	u, err := s.users.Get(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	apiKey, _, err := selectKey(u, s.cfg.PlatformAPIKey)
	if err != nil {
		return nil, err
	}

	flags := evaluation.FlagSetFromStrings(req.DeterministicFlags)
	flags = flags.Union(evaluation.FlagSetFromStrings(req.RiskFlags))
	det := evaluation.DeterministicResult{Flags: flags, Score: promptReviewScore}

	j, _ := s.pipeline.Semantic(ctx, Input{
		Credentials: s.cfg.credentials(apiKey),
		Goal:        req.Goal,
		OldPrompt:   req.OldPrompt,
		NewPrompt:   req.NewPrompt,
		Pairs: []evaluation.ResponsePair{{
			Question: promptReviewQuestion,
			Old:      req.OldPrompt,
			New:      req.NewPrompt,
		}},
	}, det)

	s.logger.WithFields(logrus.Fields{
		"user_id":     req.UserID,
		"change_type": j.ChangeType,
		"confidence":  j.Confidence,
	}).Debug("prompt review complete")

	return &Insight{
		ChangeType:     j.ChangeType,
		ShortSummary:   j.ChangeSummary,
		DetailedReview: j.Summary,
		Findings:       j.Findings,
		Suggestions:    j.Suggestions,
		RevisedPrompt:  j.RevisedPrompt,
		QuickTests:     j.QuickTests,
		MetricsToWatch: j.MetricsToWatch,
	}, nil
}
