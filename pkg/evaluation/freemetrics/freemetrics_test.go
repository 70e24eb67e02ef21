package freemetrics_test

import (
	"strings"
	"testing"

	"github.com/NeuralTrust/TrustDrift/pkg/evaluation"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/freemetrics"
	"github.com/stretchr/testify/assert"
)

func pairsOf(newTexts ...string) []evaluation.ResponsePair {
	out := make([]evaluation.ResponsePair, len(newTexts))
	for i, n := range newTexts {
		out[i] = evaluation.ResponsePair{Old: n, New: n}
	}
	return out
}

func TestCalculator_Empty(t *testing.T) {
	m := freemetrics.New(nil).Compute(nil)

	assert.Equal(t, 0, m.UserImpactScore)
	assert.Equal(t, 40, m.TrustStabilityIndex)
	assert.Equal(t, evaluation.RiskLow, m.OperationalRisk)
	assert.Equal(t, evaluation.RegressionSurface{Scope: freemetrics.ScopeLocalized}, m.RegressionSurface)
	assert.Equal(t, evaluation.ShipSafe, m.ShippingConfidence)
}

func TestCalculator_MeaningfulChanges(t *testing.T) {
	tests := []struct {
		name       string
		pair       evaluation.ResponsePair
		wantImpact int
		wantCases  int
	}{
		{"new answer where none existed", evaluation.ResponsePair{Old: "", New: "hello"}, 98, 1},
		{"refusal appears", evaluation.ResponsePair{Old: "Sure, here it is", New: "I cannot do that"}, 96, 1},
		{"large length shift", evaluation.ResponsePair{Old: strings.Repeat("a", 100), New: strings.Repeat("a", 400)}, 96, 1},
		{"both shift and refusal", evaluation.ResponsePair{Old: strings.Repeat("a", 100), New: strings.Repeat("unable ", 100)}, 100, 2},
		{"new side empty is ignored", evaluation.ResponsePair{Old: "something", New: ""}, 0, 0},
		{"small change", evaluation.ResponsePair{Old: "The tax is due in July.", New: "Tax is due in July."}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := freemetrics.New(nil).Compute([]evaluation.ResponsePair{tt.pair})
			assert.Equal(t, tt.wantImpact, m.UserImpactScore)
			assert.Equal(t, tt.wantCases, m.RegressionSurface.AffectedCases)
		})
	}
}

func TestCalculator_TrustStability(t *testing.T) {
	c := freemetrics.New(nil)

	t.Run("length consistency", func(t *testing.T) {
		m := c.Compute(pairsOf(strings.Repeat("a", 100), strings.Repeat("b", 80)))
		assert.Equal(t, 64, m.TrustStabilityIndex)
	})

	t.Run("refusal flips", func(t *testing.T) {
		m := c.Compute(pairsOf("I cannot help", "fine", "unable"))
		assert.Equal(t, 28, m.TrustStabilityIndex)
	})
}

func TestCalculator_OperationalRisk(t *testing.T) {
	c := freemetrics.New(nil)

	tests := []struct {
		name     string
		texts    []string
		wantRisk evaluation.OperationalRisk
		wantShip evaluation.ShipDecision
	}{
		{"unsafe and overconfident across cases", []string{"this is illegal", "it always works"}, evaluation.RiskHigh, evaluation.ShipDoNotShip},
		{"unsafe topic only", []string{"could cause harm"}, evaluation.RiskMedium, evaluation.ShipWithMonitoring},
		{"overconfident only", []string{"Guaranteed result"}, evaluation.RiskMedium, evaluation.ShipWithMonitoring},
		{"clean", []string{"File before July."}, evaluation.RiskLow, evaluation.ShipSafe},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := c.Compute(pairsOf(tt.texts...))
			assert.Equal(t, tt.wantRisk, m.OperationalRisk)
			assert.Equal(t, tt.wantShip, m.ShippingConfidence)
		})
	}
}

func TestCalculator_RegressionSurface(t *testing.T) {
	pairs := pairsOf("a", "b", "c", "d", "e", "f")
	pairs[0] = evaluation.ResponsePair{Old: "", New: "now answered"}

	m := freemetrics.New(nil).Compute(pairs)

	assert.Equal(t, 0.167, m.RegressionSurface.Pct)
	assert.Equal(t, freemetrics.ScopeLocalized, m.RegressionSurface.Scope)
	assert.Equal(t, evaluation.ShipWithMonitoring, m.ShippingConfidence)
}
