package narrator_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/NeuralTrust/TrustDrift/pkg/evaluation"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/narrator"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)
	return l
}

func sampleJudgment() evaluation.SemanticJudgment {
	return evaluation.SemanticJudgment{
		Verdict:   evaluation.VerdictRegression,
		Summary:   "Safety dropped",
		RiskFlags: evaluation.NewFlagSet("A", "B", "C", "D", "E", "F", "G"),
		FreeMetrics: evaluation.FreeMetrics{
			ShippingConfidence: evaluation.ShipDoNotShip,
		},
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantSummary string
		wantShip    evaluation.ShipDecision
	}{
		{
			name:        "both markers",
			raw:         "SUMMARY: Safety regressed on tax answers.\nSHIP_DECISION: Do not ship\nextra",
			wantSummary: "Safety regressed on tax answers.",
			wantShip:    evaluation.ShipDoNotShip,
		},
		{
			name:        "decision normalized",
			raw:         "SUMMARY: fine\nSHIP_DECISION: safe_to_ship",
			wantSummary: "fine",
			wantShip:    evaluation.ShipSafe,
		},
		{
			name:        "unknown decision defaults to monitoring",
			raw:         "SUMMARY: fine\nSHIP_DECISION: Maybe",
			wantSummary: "fine",
			wantShip:    evaluation.ShipWithMonitoring,
		},
		{
			name:        "bold decision",
			raw:         "SUMMARY: fine\nSHIP_DECISION: **Do not ship**",
			wantSummary: "fine",
			wantShip:    evaluation.ShipDoNotShip,
		},
		{
			name:        "decision with trailing period",
			raw:         "SUMMARY: fine\nSHIP_DECISION: Do not ship.",
			wantSummary: "fine",
			wantShip:    evaluation.ShipDoNotShip,
		},
		{
			name:        "bold canonical last line",
			raw:         "Line one\n**Safe to ship**",
			wantSummary: "Line one",
			wantShip:    evaluation.ShipSafe,
		},
		{
			name:        "summary marker with blank line",
			raw:         "SUMMARY: first\n\nsecond paragraph",
			wantSummary: "SUMMARY: first\n\nsecond paragraph",
			wantShip:    evaluation.ShipWithMonitoring,
		},
		{
			name:        "canonical last line",
			raw:         "Line one\n  Line two  \n\nSafe to ship",
			wantSummary: "Line one\nLine two",
			wantShip:    evaluation.ShipSafe,
		},
		{
			name:        "no decision found",
			raw:         "Just some prose",
			wantSummary: "Just some prose",
			wantShip:    evaluation.ShipWithMonitoring,
		},
		{
			name:        "empty output",
			raw:         "   ",
			wantSummary: "Narrator could not generate a proper summary.",
			wantShip:    evaluation.ShipWithMonitoring,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := narrator.Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSummary, got.Summary)
			assert.Equal(t, tt.wantShip, got.ShipDecision)
		})
	}
}

func TestParse_LongProseTruncated(t *testing.T) {
	got, err := narrator.Parse(strings.Repeat("a", 500))
	require.NoError(t, err)
	assert.Len(t, []rune(got.Summary), 400)
	assert.True(t, strings.HasSuffix(got.Summary, "…"))
}

func TestParse_EmptyDecision(t *testing.T) {
	_, err := narrator.Parse("SUMMARY: x\nSHIP_DECISION:   ")
	assert.ErrorIs(t, err, narrator.ErrMissingDecision)
}

func TestNarrator_Narrate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := mocks.NewClient(t)
		client.EXPECT().
			Ask(mock.Anything, mock.MatchedBy(func(c *providers.Config) bool {
				return c.Temperature == narrator.DefaultTemperature && c.MaxTokens == narrator.DefaultMaxTokens && !c.WantsJSON()
			}), mock.MatchedBy(func(p string) bool {
				return strings.Contains(p, `"verdict": "Regression"`) && !strings.Contains(p, `"G"`)
			})).
			Return(&providers.CompletionResponse{Response: "SUMMARY: Risky.\nSHIP_DECISION: do-not-ship"}, nil).Once()

		n := narrator.New(newLogger(), client, narrator.Config{})
		got := n.Narrate(context.Background(), providers.Credentials{ApiKey: "k"}, sampleJudgment())

		assert.Equal(t, "Risky.", got.Summary)
		assert.Equal(t, evaluation.ShipDoNotShip, got.ShipDecision)
	})

	t.Run("call error falls back", func(t *testing.T) {
		client := mocks.NewClient(t)
		client.EXPECT().Ask(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("rate limited")).Once()

		n := narrator.New(newLogger(), client, narrator.Config{})
		got := n.Narrate(context.Background(), providers.Credentials{}, sampleJudgment())

		assert.Equal(t, "Regression — Do not ship", got.Summary)
		assert.Equal(t, evaluation.ShipDoNotShip, got.ShipDecision)
		assert.Equal(t, "Regression — Do not ship\nSHIP_DECISION: Do not ship", got.Raw)
	})

	t.Run("empty decision falls back", func(t *testing.T) {
		client := mocks.NewClient(t)
		client.EXPECT().Ask(mock.Anything, mock.Anything, mock.Anything).
			Return(&providers.CompletionResponse{Response: "SUMMARY: x\nSHIP_DECISION:"}, nil).Once()

		n := narrator.New(newLogger(), client, narrator.Config{})
		got := n.Narrate(context.Background(), providers.Credentials{}, sampleJudgment())

		assert.Equal(t, evaluation.ShipDoNotShip, got.ShipDecision)
	})
}

func TestNarration_Apply(t *testing.T) {
	j := sampleJudgment()
	narrator.Narration{Raw: "r", Summary: "s", ShipDecision: evaluation.ShipSafe}.Apply(&j)

	assert.Equal(t, "r", j.NarratorRaw)
	assert.Equal(t, "s", j.NarratorSummary)
	assert.Equal(t, evaluation.ShipSafe, j.NarratorShipDecision)
}
