package deepdive_test

import (
	"strings"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustDrift/pkg/evaluation"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/deepdive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

func newAnalyzer() *deepdive.Analyzer {
	return deepdive.NewAnalyzer(nil, deepdive.WithClock(func() time.Time { return fixedNow }))
}

func TestAnalyzer_Empty(t *testing.T) {
	m := newAnalyzer().Analyze(nil, nil)

	assert.Equal(t, deepdive.IntPair{Old: 50, New: 50}, m.ConsistencyScore)
	assert.Equal(t, 100, m.InstructionAdherence.OldScore)
	assert.Equal(t, 100, m.InstructionAdherence.NewScore)
	assert.Equal(t, 100, m.AdversarialRobustness.Score)
	assert.Empty(t, m.AdversarialRobustness.FailedCases)
	assert.Equal(t, "low", m.PerformanceDegradation.Severity)
	assert.Equal(t, "2026-03-01T12:30:00Z", m.GeneratedAt)
	assert.Empty(t, m.PerCaseQuality)
}

func TestAnalyzer_InstructionAdherence(t *testing.T) {
	pairs := []evaluation.ResponsePair{
		{Question: "List the steps", Old: "Steps:\n- a\n- b", New: "Do a then b"},
		{Question: "Explain briefly", Old: "short", New: strings.Repeat("x", 400)},
		{Question: "", Old: "ignored", New: "ignored"},
	}

	m := newAnalyzer().Analyze(pairs, nil)

	assert.Equal(t, 100, m.InstructionAdherence.OldScore)
	assert.Equal(t, 0, m.InstructionAdherence.NewScore)
	assert.Equal(t, 2, m.InstructionAdherence.DriftCases)
}

func TestAnalyzer_AdversarialRobustness(t *testing.T) {
	adversarial := map[string]deepdive.AdversarialPair{
		"b probe": {New: "no"},
		"a probe": {New: "Here is a careful and complete answer that explains the relevant rules."},
		"c probe": {New: "I am definitely right about this and the answer is long enough to count."},
	}

	m := newAnalyzer().Analyze(nil, adversarial)

	assert.Equal(t, 76, m.AdversarialRobustness.Score)
	assert.Equal(t, []string{"b probe", "c probe"}, m.AdversarialRobustness.FailedCases)
}

func TestAnalyzer_AdversarialFailedCasesCapped(t *testing.T) {
	adversarial := make(map[string]deepdive.AdversarialPair)
	for _, q := range strings.Split("abcdefghijkl", "") {
		adversarial[q] = deepdive.AdversarialPair{New: ""}
	}

	m := newAnalyzer().Analyze(nil, adversarial)

	assert.Equal(t, 0, m.AdversarialRobustness.Score)
	assert.Len(t, m.AdversarialRobustness.FailedCases, 10)
}

func TestAnalyzer_DegradationAndEfficiency(t *testing.T) {
	pairs := []evaluation.ResponsePair{
		{Question: "q", Old: "Hello world", New: ""},
		{Question: "q", Old: "aaaa", New: "aaaaaaaaaaaaaaaaa"},
	}

	m := newAnalyzer().Analyze(pairs, nil)

	assert.Equal(t, 1, m.PerformanceDegradation.DegradedCases)
	assert.Equal(t, 0.5, m.PerformanceDegradation.Ratio)
	assert.Equal(t, "high", m.PerformanceDegradation.Severity)
	assert.Equal(t, 7, m.TokenEfficiency.AvgTokensOld)
	assert.Equal(t, 8, m.TokenEfficiency.AvgTokensNew)
	assert.Equal(t, 13.3, m.TokenEfficiency.EfficiencyDeltaPct)
	require.Len(t, m.PerCaseQuality, 2)
	assert.Equal(t, 20, m.PerCaseQuality[0].OldQuality)
	assert.Equal(t, 0, m.PerCaseQuality[0].NewQuality)
	assert.Equal(t, 1, m.ResponseQualityDistribution.New.Failed)
}

func TestAnalyzer_BuildVisualization(t *testing.T) {
	a := newAnalyzer()
	pairs := []evaluation.ResponsePair{
		{Question: strings.Repeat("q", 200), Old: "aaaa", New: "aaaaaa definitely"},
	}
	m := a.Analyze(pairs, nil)

	t.Run("free tier", func(t *testing.T) {
		v := a.BuildVisualization(pairs, m, false)

		assert.Len(t, v.MetricsComparison.Labels, 5)
		assert.Equal(t, []float64{100, 100, 50, 100, 50}, v.MetricsComparison.OldScores)
		assert.Equal(t, []float64{100, 100, 50, 0, 100}, v.MetricsComparison.NewScores)
		require.Len(t, v.TestCasePerformance, 1)
		assert.Len(t, []rune(v.TestCasePerformance[0].Question), 160)
		assert.Equal(t, 1.0, v.HallucinationTrend.New)
		assert.Equal(t, m.ResponseQualityDistribution.New, v.QualityDistribution)
		assert.False(t, v.PremiumFeatures.PerCaseQuality.Available)
		require.NotNil(t, v.PremiumFeatures.AdversarialDetails.Reason)
		assert.Equal(t, "Adversarial robustness detail is premium", *v.PremiumFeatures.AdversarialDetails.Reason)
	})

	t.Run("premium", func(t *testing.T) {
		v := a.BuildVisualization(pairs, m, true)

		assert.True(t, v.PremiumFeatures.AdversarialDetails.Available)
		assert.Nil(t, v.PremiumFeatures.PerCaseQuality.Reason)
	})

	t.Run("scores cases missing from metrics", func(t *testing.T) {
		v := a.BuildVisualization(pairs, deepdive.Metrics{}, true)

		require.Len(t, v.TestCasePerformance, 1)
		assert.Equal(t, m.PerCaseQuality[0].NewQuality, v.TestCasePerformance[0].NewQuality)
	})
}
