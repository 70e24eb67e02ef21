package evaluation

import "strings"

// ResponsePair is one test question answered by both the old and the new service.
// Error-marker responses ("ERROR: ...") are ordinary text for every scorer.
type ResponsePair struct {
	Question string `json:"question" yaml:"question"`
	Old      string `json:"old_response" yaml:"old"`
	New      string `json:"new_response" yaml:"new"`
}

// QuestionResponse is the per-side projection stored in reports.
type QuestionResponse struct {
	Question string `json:"question"`
	Response string `json:"response"`
}

// ErrorMarkerPrefix prefixes responses that stand in for a failed upstream call.
const ErrorMarkerPrefix = "ERROR: "

func ErrorMarker(err error) string {
	return ErrorMarkerPrefix + err.Error()
}

// SplitPairs returns the old and new sides of pairs in question order.
func SplitPairs(pairs []ResponsePair) (old []QuestionResponse, new []QuestionResponse) {
	old = make([]QuestionResponse, 0, len(pairs))
	new = make([]QuestionResponse, 0, len(pairs))
	for _, p := range pairs {
		old = append(old, QuestionResponse{Question: p.Question, Response: p.Old})
		new = append(new, QuestionResponse{Question: p.Question, Response: p.New})
	}
	return old, new
}

type Verdict string

const (
	VerdictImproved        Verdict = "Improved"
	VerdictSafetyHardening Verdict = "Safety Hardening"
	VerdictNeutral         Verdict = "Neutral"
	VerdictRegression      Verdict = "Regression"
	VerdictUnknown         Verdict = "Unknown"
)

func (v Verdict) Valid() bool {
	switch v {
	case VerdictImproved, VerdictSafetyHardening, VerdictNeutral, VerdictRegression, VerdictUnknown:
		return true
	}
	return false
}

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

func (c Confidence) Valid() bool {
	return c == ConfidenceHigh || c == ConfidenceMedium || c == ConfidenceLow
}

type Direction string

const (
	DirectionImproved  Direction = "improved"
	DirectionNeutral   Direction = "neutral"
	DirectionDegraded  Direction = "degraded"
	DirectionIncreased Direction = "increased"
	DirectionDecreased Direction = "decreased"
	DirectionUnknown   Direction = "unknown"
)

const (
	TradeoffSafetyVsHelpfulness = "Safety_vs_Helpfulness"
	TradeoffEfficiencyVsDetail  = "Efficiency_vs_Detail"
	TradeoffNone                = "None"
)

// ShipDecision is one of the three canonical release recommendations.
type ShipDecision string

const (
	ShipDoNotShip      ShipDecision = "Do not ship"
	ShipWithMonitoring ShipDecision = "Ship with monitoring"
	ShipSafe           ShipDecision = "Safe to ship"
)

var shipDecisionLookup = map[string]ShipDecision{
	"do not ship":          ShipDoNotShip,
	"donotship":            ShipDoNotShip,
	"do-not-ship":          ShipDoNotShip,
	"do_not_ship":          ShipDoNotShip,
	"ship with monitoring": ShipWithMonitoring,
	"safe to ship":         ShipSafe,
	"safe_to_ship":         ShipSafe,
}

// NormalizeShipDecision maps free-form decision text onto a canonical value.
// Surrounding markdown and punctuation are ignored. Unknown text maps to
// ShipWithMonitoring with ok=false.
func NormalizeShipDecision(s string) (ShipDecision, bool) {
	if d, ok := shipDecisionLookup[strings.ToLower(trimDecoration(s))]; ok {
		return d, true
	}
	return ShipWithMonitoring, false
}

// IsCanonical reports whether s is one of the canonical decisions, ignoring case
// and surrounding markdown or punctuation.
func IsCanonical(s string) bool {
	switch strings.ToLower(trimDecoration(s)) {
	case "do not ship", "ship with monitoring", "safe to ship":
		return true
	}
	return false
}

func trimDecoration(s string) string {
	return strings.Trim(strings.TrimSpace(s), " \t*_`'\".,;:!#-")
}
