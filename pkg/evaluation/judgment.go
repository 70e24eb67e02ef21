package evaluation

// DeterministicResult is the batch-level differ outcome. Flags are the distinct
// kinds observed anywhere in the batch; Score is the summed severity clamped once to [0,100].
type DeterministicResult struct {
	Flags FlagSet `json:"deterministic_flags"`
	Score int     `json:"deterministic_score"`
}

type DirectionAnalysis struct {
	SafetyDirection      Direction `json:"safety_direction" mapstructure:"safety_direction"`
	HelpfulnessDirection Direction `json:"helpfulness_direction" mapstructure:"helpfulness_direction"`
	SpecificityDirection Direction `json:"specificity_direction" mapstructure:"specificity_direction"`
	Reasoning            string    `json:"reasoning" mapstructure:"reasoning"`
}

type Suggestion struct {
	Scope         string  `json:"scope" mapstructure:"scope"`
	Severity      string  `json:"severity" mapstructure:"severity"`
	ChangeType    string  `json:"change_type" mapstructure:"change_type"`
	SuggestedText *string `json:"suggested_text" mapstructure:"suggested_text"`
	Explanation   string  `json:"explanation" mapstructure:"explanation"`
}

// Comparison is one truncated evidence row shown to the judge and kept in the report.
type Comparison struct {
	Case int    `json:"case"`
	Q    string `json:"Q"`
	Old  string `json:"OLD"`
	New  string `json:"NEW"`
}

type OperationalRisk string

const (
	RiskLow    OperationalRisk = "Low"
	RiskMedium OperationalRisk = "Medium"
	RiskHigh   OperationalRisk = "High"
)

type RegressionSurface struct {
	AffectedCases int     `json:"affected_cases"`
	Pct           float64 `json:"pct"`
	Scope         string  `json:"scope"`
}

type FreeMetrics struct {
	UserImpactScore     int               `json:"user_impact_score"`
	TrustStabilityIndex int               `json:"trust_stability_index"`
	OperationalRisk     OperationalRisk   `json:"operational_risk"`
	RegressionSurface   RegressionSurface `json:"regression_surface"`
	ShippingConfidence  ShipDecision      `json:"shipping_confidence"`
}

// SemanticJudgment is the fully defaulted judge output, later enriched with
// arbitration, free metrics and narration.
type SemanticJudgment struct {
	Verdict                Verdict             `json:"verdict"`
	Summary                string              `json:"summary"`
	TradeoffClassification string              `json:"tradeoff_classification"`
	DirectionAnalysis      DirectionAnalysis   `json:"direction_analysis"`
	RiskFlags              FlagSet             `json:"risk_flags"`
	ChangeType             string              `json:"change_type"`
	ChangeSummary          string              `json:"change_summary"`
	RootCauses             []string            `json:"root_causes"`
	Findings               []string            `json:"findings"`
	Suggestions            []Suggestion        `json:"suggestions"`
	RevisedPrompt          *string             `json:"revised_prompt"`
	QuickTests             []string            `json:"quick_tests"`
	MetricsToWatch         []string            `json:"metrics_to_watch"`
	Confidence             Confidence          `json:"confidence"`
	EvidenceSample         []Comparison        `json:"evidence_sample"`
	FreeMetrics            FreeMetrics         `json:"free_metrics"`
	DeterministicInsights  DeterministicResult `json:"deterministic_insights"`
	NarratorRaw            string              `json:"narrator_raw"`
	NarratorSummary        string              `json:"narrator_summary"`
	NarratorShipDecision   ShipDecision        `json:"narrator_ship_decision"`
}

// Clone returns a copy whose slices and flag set can be changed without touching j.
func (j SemanticJudgment) Clone() SemanticJudgment {
	out := j
	out.RiskFlags = NewFlagSet(j.RiskFlags.Slice()...)
	out.RootCauses = append([]string(nil), j.RootCauses...)
	out.Findings = append([]string(nil), j.Findings...)
	out.Suggestions = append([]Suggestion(nil), j.Suggestions...)
	out.QuickTests = append([]string(nil), j.QuickTests...)
	out.MetricsToWatch = append([]string(nil), j.MetricsToWatch...)
	out.EvidenceSample = append([]Comparison(nil), j.EvidenceSample...)
	return out
}
