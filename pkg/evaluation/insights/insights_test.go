package insights_test

import (
	"testing"

	"github.com/NeuralTrust/TrustDrift/pkg/evaluation"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/insights"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzer_BehaviorShift(t *testing.T) {
	a := insights.New(nil)

	tests := []struct {
		name  string
		pairs []evaluation.ResponsePair
		want  insights.BehaviorShift
	}{
		{
			name:  "assertive citation worsens posture",
			pairs: []evaluation.ResponsePair{{Old: "File online.", New: "Section 80C says you must file online now."}},
			want: insights.BehaviorShift{
				ConfidenceShift:  insights.MoreAssertive,
				SpecificityShift: insights.Increased,
				CitationBehavior: insights.Introduced,
				AdviceTone:       insights.Introduced,
				RiskPosture:      insights.Worsened,
			},
		},
		{
			name:  "hedged answer",
			pairs: []evaluation.ResponsePair{{Old: "It is 10%.", New: "It depends."}},
			want: insights.BehaviorShift{
				ConfidenceShift:  insights.MoreCautious,
				SpecificityShift: insights.Unchanged,
				CitationBehavior: insights.Unchanged,
				AdviceTone:       insights.Unchanged,
				RiskPosture:      insights.Unchanged,
			},
		},
		{
			name:  "citation already present",
			pairs: []evaluation.ResponsePair{{Old: "Section 1", New: "Section 1"}},
			want: insights.BehaviorShift{
				ConfidenceShift:  insights.MoreAssertive,
				SpecificityShift: insights.Unchanged,
				CitationBehavior: insights.Unchanged,
				AdviceTone:       insights.Unchanged,
				RiskPosture:      insights.Unchanged,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.BehaviorShift(tt.pairs))
		})
	}
}

func TestNovelty(t *testing.T) {
	det := evaluation.NewFlagSet(evaluation.FlagSafetyCompromise)

	got := insights.Novelty(det, evaluation.NewFlagSet(evaluation.FlagSafetyCompromise, evaluation.FlagHallucination))
	assert.Equal(t, []evaluation.Flag{evaluation.FlagHallucination}, got.IntroducedErrors)
	assert.Equal(t, []evaluation.Flag{evaluation.FlagSafetyCompromise}, got.InheritedErrors)
	assert.True(t, got.HasNewRisk)

	none := insights.Novelty(det, evaluation.FlagSet{})
	assert.False(t, none.HasNewRisk)
	assert.Empty(t, none.IntroducedErrors)
}

func TestTradeoffOf(t *testing.T) {
	longer := []evaluation.ResponsePair{{Old: "ab", New: "abcd"}}
	shorter := []evaluation.ResponsePair{{Old: "abcd", New: "ab"}}

	assert.Equal(t, insights.Tradeoff{HelpfulnessDelta: 2, SafetyDelta: -40, NetEffect: insights.NetUnsafeHelpfulnessGain}, insights.TradeoffOf(longer, 40))
	assert.Equal(t, insights.NetNeutral, insights.TradeoffOf(longer, 0).NetEffect)
	assert.Equal(t, insights.NetNeutral, insights.TradeoffOf(shorter, 40).NetEffect)
}

func TestAdvice(t *testing.T) {
	assert.Equal(t, []string{"No major architectural issues detected."}, insights.Advice(evaluation.FlagSet{}, evaluation.FlagSet{}))

	got := insights.Advice(
		evaluation.NewFlagSet(evaluation.FlagDetailLoss, evaluation.FlagHallucination),
		evaluation.NewFlagSet(evaluation.FlagConfidenceInflation, evaluation.FlagDetailLoss),
	)
	assert.Len(t, got, 2)
	assert.Contains(t, got[0], "uncertainty layer")
	assert.Contains(t, got[1], "direct answer")
}
