package judge_test

import (
	"testing"

	"github.com/NeuralTrust/TrustDrift/pkg/evaluation"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/judge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name           string
		raw            map[string]any
		wantVerdict    evaluation.Verdict
		wantConfidence evaluation.Confidence
	}{
		{"empty object", map[string]any{}, evaluation.VerdictUnknown, evaluation.ConfidenceLow},
		{"invalid verdict forces low", map[string]any{"verdict": "Great", "confidence": "high"}, evaluation.VerdictUnknown, evaluation.ConfidenceLow},
		{"missing confidence is low", map[string]any{"verdict": "Neutral"}, evaluation.VerdictNeutral, evaluation.ConfidenceLow},
		{"invalid confidence is medium", map[string]any{"verdict": "Neutral", "confidence": "sure"}, evaluation.VerdictNeutral, evaluation.ConfidenceMedium},
		{"valid pair kept", map[string]any{"verdict": "Safety Hardening", "confidence": "high"}, evaluation.VerdictSafetyHardening, evaluation.ConfidenceHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := judge.Normalize(tt.raw)
			assert.Equal(t, tt.wantVerdict, j.Verdict)
			assert.Equal(t, tt.wantConfidence, j.Confidence)
		})
	}
}

func TestNormalize_Defaults(t *testing.T) {
	j := judge.Normalize(map[string]any{
		"findings":       "not a list",
		"quick_tests":    []any{"t1", nil, 3},
		"revised_prompt": "Be careful.",
		"suggestions":    []any{"skip me", map[string]any{"scope": "prompt", "suggested_text": "x"}},
	})

	assert.Equal(t, "Analysis incomplete", j.Summary)
	assert.Equal(t, "unknown", j.ChangeType)
	assert.Equal(t, evaluation.TradeoffNone, j.TradeoffClassification)
	assert.Equal(t, []string{}, j.Findings)
	assert.Equal(t, []string{"t1", "3"}, j.QuickTests)
	require.NotNil(t, j.RevisedPrompt)
	assert.Equal(t, "Be careful.", *j.RevisedPrompt)
	require.Len(t, j.Suggestions, 1)
	require.NotNil(t, j.Suggestions[0].SuggestedText)
	assert.Equal(t, "x", *j.Suggestions[0].SuggestedText)
	assert.Equal(t, "", j.DirectionAnalysis.Reasoning)
	assert.Equal(t, evaluation.DirectionUnknown, j.DirectionAnalysis.SpecificityDirection)
}

func TestBuildPrompt(t *testing.T) {
	req := newRequest()
	p := judge.BuildPrompt(req, judge.CompactComparisons(req.Pairs, 3))

	assert.Contains(t, p, "Deterministic Score: 35/100")
	assert.Contains(t, p, "Deterministic Flags: SAFETY_COMPROMISE")
	assert.Contains(t, p, "SAMPLE OUTPUTS (3/4 test cases):")
	assert.Contains(t, p, `"OLD": "o1"`)
	assert.NotContains(t, p, `"q4"`)

	req.Deterministic.Flags = evaluation.FlagSet{}
	assert.Contains(t, judge.BuildPrompt(req, nil), "Deterministic Flags: None")
}
