package version

import (
	domainVersion "github.com/NeuralTrust/TrustDrift/pkg/domain/version"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/insights"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
)

type RegressionPoint struct {
	Version          int      `json:"version"`
	Verdict          string   `json:"verdict"`
	IntroducedErrors []string `json:"introduced_errors"`
}

type TradeoffPoint struct {
	Version    int                `json:"version"`
	NetEffect  insights.NetEffect `json:"net_effect,omitempty"`
	Cookedness int                `json:"cookedness"`
}

// Trends are oldest-first series over a case's versions.
type Trends struct {
	Cookedness        []int             `json:"cookedness_trend"`
	RegressionHistory []RegressionPoint `json:"regression_history"`
	Tradeoff          []TradeoffPoint   `json:"helpfulness_safety_tradeoff"`
}

// snapshot is the part of a stored analysis response the trends read back.
type snapshot struct {
	ErrorNovelty insights.ErrorNovelty `json:"error_novelty"`
	Tradeoff     insights.Tradeoff     `json:"tradeoff"`
}

func buildTrends(logger *logrus.Logger, versions []domainVersion.Version) *Trends {
	t := &Trends{
		Cookedness:        make([]int, 0, len(versions)),
		RegressionHistory: make([]RegressionPoint, 0, len(versions)),
		Tradeoff:          make([]TradeoffPoint, 0, len(versions)),
	}
	for i := range versions {
		v := &versions[i]
		snap, err := decodeSnapshot(v.AnalysisResponse)
		if err != nil {
			logger.WithError(err).WithField("version_id", v.ID).Warn("unreadable analysis snapshot in trends")
		}

		introduced := make([]string, len(snap.ErrorNovelty.IntroducedErrors))
		for j, f := range snap.ErrorNovelty.IntroducedErrors {
			introduced[j] = string(f)
		}
		t.Cookedness = append(t.Cookedness, v.CookednessScore)
		t.RegressionHistory = append(t.RegressionHistory, RegressionPoint{
			Version:          v.VersionNumber,
			Verdict:          v.Verdict,
			IntroducedErrors: introduced,
		})
		t.Tradeoff = append(t.Tradeoff, TradeoffPoint{
			Version:    v.VersionNumber,
			NetEffect:  snap.Tradeoff.NetEffect,
			Cookedness: v.CookednessScore,
		})
	}
	return t
}

func decodeSnapshot(raw map[string]interface{}) (snapshot, error) {
	var snap snapshot
	if raw == nil {
		return snap, nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &snap,
	})
	if err != nil {
		return snap, err
	}
	return snap, decoder.Decode(raw)
}
