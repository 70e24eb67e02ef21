package deepdive

import "github.com/NeuralTrust/TrustDrift/pkg/evaluation"

const (
	chartQuestionLimit = 160
	baselineScore      = 100
	neutralEfficiency  = 50
)

var radarLabels = []string{
	"Instruction Adherence",
	"Adversarial Robustness",
	"Consistency",
	"Hallucination (↓)",
	"Efficiency",
}

type MetricsComparison struct {
	Labels    []string  `json:"labels"`
	OldScores []float64 `json:"old_scores"`
	NewScores []float64 `json:"new_scores"`
}

type CasePerformance struct {
	Case       int    `json:"case"`
	OldQuality int    `json:"old_quality"`
	NewQuality int    `json:"new_quality"`
	Question   string `json:"question"`
}

type PremiumFeature struct {
	Available bool    `json:"available"`
	Reason    *string `json:"reason"`
}

type PremiumFeatures struct {
	AdversarialDetails PremiumFeature `json:"adversarial_details"`
	PerCaseQuality     PremiumFeature `json:"per_case_quality"`
}

type Visualization struct {
	MetricsComparison           MetricsComparison   `json:"metrics_comparison"`
	TestCasePerformance         []CasePerformance   `json:"test_case_performance"`
	HallucinationTrend          RatePair            `json:"hallucination_trend"`
	TokenEfficiency             TokenEfficiency     `json:"token_efficiency"`
	ResponseQualityDistribution DistributionPair    `json:"response_quality_distribution"`
	QualityDistribution         QualityDistribution `json:"quality_distribution"`
	PremiumFeatures             PremiumFeatures     `json:"premium_features"`
}

// BuildVisualization shapes already computed metrics into chart series.
// Cases missing from m.PerCaseQuality are scored on the fly.
func (a *Analyzer) BuildVisualization(pairs []evaluation.ResponsePair, m Metrics, premium bool) Visualization {
	perf := make([]CasePerformance, 0, len(pairs))
	for i, p := range pairs {
		cp := CasePerformance{Case: i + 1, Question: evaluation.Head(p.Question, chartQuestionLimit)}
		if i < len(m.PerCaseQuality) {
			cp.OldQuality = m.PerCaseQuality[i].OldQuality
			cp.NewQuality = m.PerCaseQuality[i].NewQuality
		} else {
			cp.OldQuality = a.scorer.Score(p.Old, p.Question)
			cp.NewQuality = a.scorer.Score(p.New, p.Question)
		}
		perf = append(perf, cp)
	}

	efficiency := min(100, max(0, neutralEfficiency+m.TokenEfficiency.EfficiencyDeltaPct))

	return Visualization{
		MetricsComparison: MetricsComparison{
			Labels: append([]string(nil), radarLabels...),
			OldScores: []float64{
				float64(m.InstructionAdherence.OldScore),
				baselineScore,
				float64(m.ConsistencyScore.Old),
				float64(int((1 - m.HallucinationRate.Old) * 100)),
				neutralEfficiency,
			},
			NewScores: []float64{
				float64(m.InstructionAdherence.NewScore),
				float64(m.AdversarialRobustness.Score),
				float64(m.ConsistencyScore.New),
				float64(int((1 - m.HallucinationRate.New) * 100)),
				efficiency,
			},
		},
		TestCasePerformance:         perf,
		HallucinationTrend:          m.HallucinationRate,
		TokenEfficiency:             m.TokenEfficiency,
		ResponseQualityDistribution: m.ResponseQualityDistribution,
		QualityDistribution:         m.ResponseQualityDistribution.New,
		PremiumFeatures: PremiumFeatures{
			AdversarialDetails: premiumFeature(premium, "Adversarial robustness detail is premium"),
			PerCaseQuality:     premiumFeature(premium, "Per-case drilldown is premium"),
		},
	}
}

func premiumFeature(available bool, reason string) PremiumFeature {
	if available {
		return PremiumFeature{Available: true}
	}
	return PremiumFeature{Reason: &reason}
}
