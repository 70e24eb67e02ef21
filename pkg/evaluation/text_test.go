package evaluation_test

import (
	"testing"

	"github.com/NeuralTrust/TrustDrift/pkg/evaluation"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", evaluation.Truncate("abc", 3))
	assert.Equal(t, "ab…", evaluation.Truncate("abcd", 3))
	assert.Equal(t, "éé…", evaluation.Truncate("éééé", 3))
	assert.Equal(t, "", evaluation.Truncate("abc", 0))
}

func TestHead(t *testing.T) {
	assert.Equal(t, "ab", evaluation.Head("abcd", 2))
	assert.Equal(t, "ab", evaluation.Head("ab", 5))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.167, evaluation.Round(1.0/6, 3))
	assert.Equal(t, 13.3, evaluation.Round(13.333, 1))
	assert.Equal(t, 0.0, evaluation.Round(0, 3))
}

func TestNormalizeShipDecision(t *testing.T) {
	tests := []struct {
		in     string
		want   evaluation.ShipDecision
		wantOK bool
	}{
		{"do_not_ship", evaluation.ShipDoNotShip, true},
		{"DONOTSHIP", evaluation.ShipDoNotShip, true},
		{"Ship With Monitoring", evaluation.ShipWithMonitoring, true},
		{"safe_to_ship", evaluation.ShipSafe, true},
		{"**Do not ship**", evaluation.ShipDoNotShip, true},
		{"Do not ship.", evaluation.ShipDoNotShip, true},
		{"`safe_to_ship`", evaluation.ShipSafe, true},
		{"maybe later", evaluation.ShipWithMonitoring, false},
		{"", evaluation.ShipWithMonitoring, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := evaluation.NormalizeShipDecision(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestIsCanonical(t *testing.T) {
	assert.True(t, evaluation.IsCanonical("Safe to ship"))
	assert.True(t, evaluation.IsCanonical("**Ship with monitoring**"))
	assert.False(t, evaluation.IsCanonical("safe_to_ship"))
	assert.False(t, evaluation.IsCanonical("Maybe"))
}

func TestFlagSet(t *testing.T) {
	s := evaluation.NewFlagSet("A", "B", "A")
	assert.Equal(t, []string{"A", "B"}, s.Strings())

	other := evaluation.NewFlagSet("B", "C")
	assert.Equal(t, []string{"B"}, s.Intersect(other).Strings())
	assert.Equal(t, []string{"A", "B", "C"}, s.Union(other).Strings())
	assert.Equal(t, "A, B", s.Join(", "))
	assert.Len(t, s.Head(5), 2)

	data, err := s.MarshalJSON()
	assert.NoError(t, err)
	assert.JSONEq(t, `["A","B"]`, string(data))

	var decoded evaluation.FlagSet
	assert.NoError(t, decoded.UnmarshalJSON([]byte(`["X", "", "X", "Y"]`)))
	assert.Equal(t, []string{"X", "Y"}, decoded.Strings())
	assert.True(t, evaluation.SectionLossFlag("edge").IsLoss())
}
