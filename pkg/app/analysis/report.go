package analysis

import (
	"time"

	"github.com/NeuralTrust/TrustDrift/pkg/evaluation"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/arbitration"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/cookedness"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/deepdive"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/insights"
	"github.com/NeuralTrust/TrustDrift/pkg/handlers/http/request"
)

type ShipRecommendation string

const (
	RecommendDoNotShip ShipRecommendation = "DO_NOT_SHIP"
	RecommendReview    ShipRecommendation = "REVIEW"
	RecommendSafe      ShipRecommendation = "SAFE_TO_SHIP"
)

func RecommendationFor(v evaluation.Verdict) ShipRecommendation {
	switch v {
	case evaluation.VerdictRegression:
		return RecommendDoNotShip
	case evaluation.VerdictNeutral:
		return RecommendReview
	default:
		return RecommendSafe
	}
}

const (
	APISourcePlatform = "platform"
	APISourceUser     = "user"

	// apiCallsPerRun counts the judge and narrator calls billed to the key.
	apiCallsPerRun = 2
)

type Results struct {
	Old []evaluation.QuestionResponse `json:"old"`
	New []evaluation.QuestionResponse `json:"new"`
}

type Evaluation struct {
	Deterministic evaluation.DeterministicResult `json:"deterministic"`
	LLMJudge      evaluation.SemanticJudgment    `json:"llm_judge"`
	Arbitration   []arbitration.Decision         `json:"arbitration,omitempty"`
}

type Scores struct {
	DeterministicScore int               `json:"deterministic_score"`
	QualityScore       int               `json:"quality_score"`
	SafetyScore        int               `json:"safety_score"`
	Cookedness         cookedness.Result `json:"cookedness"`
}

type Verdict struct {
	Final              evaluation.Verdict `json:"final"`
	Reason             string             `json:"reason"`
	ShipRecommendation ShipRecommendation `json:"ship_recommendation"`
}

// Report is the canonical analysis response. It is stored verbatim as the version snapshot.
type Report struct {
	RunID              string                  `json:"run_id"`
	CaseID             string                  `json:"case_id"`
	CaseName           string                  `json:"case_name"`
	VersionID          string                  `json:"version_id,omitempty"`
	VersionNumber      int                     `json:"version_number,omitempty"`
	CreatedAt          time.Time               `json:"created_at"`
	IsDeepDive         bool                    `json:"is_deep_dive"`
	Inputs             *request.AnalyzeRequest `json:"inputs"`
	TestCases          []string                `json:"test_cases"`
	Results            Results                 `json:"results"`
	Evaluation         Evaluation              `json:"evaluation"`
	Scores             Scores                  `json:"scores"`
	Verdict            Verdict                 `json:"verdict"`
	BehavioralShift    insights.BehaviorShift  `json:"behavioral_shift"`
	ErrorNovelty       insights.ErrorNovelty   `json:"error_novelty"`
	Tradeoff           insights.Tradeoff       `json:"tradeoff"`
	ArchitectureAdvice []string                `json:"architecture_advice"`
	DeepDiveMetrics    *deepdive.Metrics       `json:"deep_dive_metrics,omitempty"`
	VisualizationData  *deepdive.Visualization `json:"visualization_data,omitempty"`
	DeepDivesRemaining *int                    `json:"deep_dives_remaining,omitempty"`
	APICallsUsed       int                     `json:"api_calls_used"`
	Provider           string                  `json:"provider"`
	APISource          string                  `json:"api_source"`
}

func buildReport(
	runID string,
	req *request.AnalyzeRequest,
	questions []string,
	pairs []evaluation.ResponsePair,
	out Outcome,
	createdAt time.Time,
) *Report {
	oldResults, newResults := evaluation.SplitPairs(pairs)
	det := out.Deterministic.Score
	verdict := out.Judgment.Verdict
	return &Report{
		RunID:     runID,
		CreatedAt: createdAt.UTC(),
		Inputs:    req,
		TestCases: questions,
		Results:   Results{Old: oldResults, New: newResults},
		Evaluation: Evaluation{
			Deterministic: out.Deterministic,
			LLMJudge:      out.Judgment,
			Arbitration:   out.Decisions,
		},
		Scores: Scores{
			DeterministicScore: det,
			QualityScore:       det,
			SafetyScore:        max(0, 100-det),
			Cookedness:         out.Cookedness,
		},
		Verdict: Verdict{
			Final:              verdict,
			Reason:             out.Judgment.Summary,
			ShipRecommendation: RecommendationFor(verdict),
		},
		BehavioralShift:    out.BehaviorShift,
		ErrorNovelty:       out.ErrorNovelty,
		Tradeoff:           out.Tradeoff,
		ArchitectureAdvice: out.Advice,
		APICallsUsed:       apiCallsPerRun,
	}
}
