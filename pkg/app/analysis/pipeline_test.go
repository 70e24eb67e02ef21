package analysis_test

import (
	"context"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustDrift/pkg/app/analysis"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/arbitration"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/deepdive"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/judge"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/narrator"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers"
	providerMocks "github.com/NeuralTrust/TrustDrift/pkg/infra/providers/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const judgeOutput = `{
  "verdict": "Improved",
  "summary": "Answers are more direct.",
  "tradeoff_classification": "None",
  "direction_analysis": {"safety_direction": "degraded", "helpfulness_direction": "improved", "specificity_direction": "increased", "reasoning": "Dropped caveats."},
  "risk_flags": ["EDGE_CASE_LOSS"],
  "confidence": "high"
}`

const narratorOutput = "SUMMARY: The new prompt removed caveats from tax answers.\nSHIP_DECISION: Do not ship"

// scriptedLLM answers judge calls with JSON and narrator calls with plain text.
func scriptedLLM(t *testing.T) *providerMocks.Client {
	llm := providerMocks.NewClient(t)
	llm.EXPECT().Ask(mock.Anything, mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, cfg *providers.Config, _ string) (*providers.CompletionResponse, error) {
			if cfg.WantsJSON() {
				return &providers.CompletionResponse{Response: judgeOutput}, nil
			}
			return &providers.CompletionResponse{Response: narratorOutput}, nil
		})
	return llm
}

func TestPipeline_Evaluate_OverridesDegradedSafety(t *testing.T) {
	logger := testLogger()
	llm := scriptedLLM(t)
	p := analysis.NewPipeline(
		nil,
		judge.NewAdapter(logger, llm, judge.Config{
			HardRegressionFlags: evaluation.NewFlagSet(evaluation.FlagSafetyCompromise),
		}),
		narrator.New(logger, llm, narrator.Config{}),
	)

	out := p.Evaluate(context.Background(), analysis.Input{
		Credentials: providers.Credentials{ApiKey: "k"},
		Goal:        "tax assistant",
		Pairs:       regressedPairs("Can I claim HRA?"),
	})

	assert.True(t, out.Deterministic.Flags.Has(evaluation.FlagSafetyCompromise))
	assert.Equal(t, evaluation.VerdictRegression, out.Judgment.Verdict)
	assert.True(t, out.Judgment.RiskFlags.Has(evaluation.FlagSafetyCompromise))
	assert.True(t, out.Judgment.RiskFlags.Has(evaluation.FlagEdgeCaseLoss))
	assert.Contains(t, out.Judgment.Summary, "CRITICAL SAFETY DEGRADATION: SAFETY_COMPROMISE")
	require.Len(t, out.Decisions, 1)
	assert.Equal(t, arbitration.RuleSafetyOverride, out.Decisions[0].Rule)
	assert.Equal(t, evaluation.VerdictImproved, out.Decisions[0].From)

	assert.Equal(t, "The new prompt removed caveats from tax answers.", out.Judgment.NarratorSummary)
	assert.Equal(t, evaluation.ShipDoNotShip, out.Judgment.NarratorShipDecision)
	assert.Equal(t, out.Deterministic, out.Judgment.DeterministicInsights)
	assert.NotEmpty(t, out.Judgment.EvidenceSample)
	assert.NotEmpty(t, out.Judgment.FreeMetrics.ShippingConfidence)
	assert.NotEmpty(t, out.Cookedness.Severity)
}

func TestPipeline_DeepDive_IsDeterministic(t *testing.T) {
	logger := testLogger()
	llm := providerMocks.NewClient(t)
	clock := deepdive.WithClock(func() time.Time { return fixedNow })
	p := analysis.NewPipeline(nil, judge.NewAdapter(logger, llm, judge.Config{}), narrator.New(logger, llm, narrator.Config{}), clock)

	pairs := regressedPairs("q1", "q2", "q3")
	m1, v1 := p.DeepDive(pairs)
	m2, v2 := p.DeepDive(pairs)

	assert.Equal(t, m1, m2)
	assert.Equal(t, v1, v2)
	assert.Len(t, m1.PerCaseQuality, 3)
	assert.NotEmpty(t, m1.GeneratedAt)
}
