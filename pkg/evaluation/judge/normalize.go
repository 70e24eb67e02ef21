package judge

import (
	"fmt"

	"github.com/NeuralTrust/TrustDrift/pkg/evaluation"
	"github.com/mitchellh/mapstructure"
)

const (
	defaultSummary       = "Analysis incomplete"
	defaultChangeType    = "unknown"
	defaultChangeSummary = "Could not determine"
)

// Normalize turns a decoded judge object into a fully defaulted judgment.
// Missing or mistyped fields take defaults; it never fails.
func Normalize(raw map[string]any) evaluation.SemanticJudgment {
	j := evaluation.SemanticJudgment{
		Summary:                stringOr(raw, "summary", defaultSummary),
		TradeoffClassification: stringOr(raw, "tradeoff_classification", evaluation.TradeoffNone),
		ChangeType:             stringOr(raw, "change_type", defaultChangeType),
		ChangeSummary:          stringOr(raw, "change_summary", defaultChangeSummary),
		RiskFlags:              evaluation.FlagSetFromStrings(stringList(raw["risk_flags"])),
		RootCauses:             stringList(raw["root_causes"]),
		Findings:               stringList(raw["findings"]),
		Suggestions:            suggestions(raw["suggestions"]),
		QuickTests:             stringList(raw["quick_tests"]),
		MetricsToWatch:         stringList(raw["metrics_to_watch"]),
		DirectionAnalysis:      directions(raw["direction_analysis"]),
	}

	if s, ok := raw["revised_prompt"].(string); ok {
		j.RevisedPrompt = &s
	}

	j.Confidence = evaluation.ConfidenceLow
	if c, present := raw["confidence"]; present {
		s, _ := c.(string)
		j.Confidence = evaluation.Confidence(s)
	}

	v, _ := raw["verdict"].(string)
	j.Verdict = evaluation.Verdict(v)
	if !j.Verdict.Valid() {
		j.Verdict = evaluation.VerdictUnknown
		j.Confidence = evaluation.ConfidenceLow
	}
	if !j.Confidence.Valid() {
		j.Confidence = evaluation.ConfidenceMedium
	}
	return j
}

func stringOr(raw map[string]any, key, def string) string {
	if s, ok := raw[key].(string); ok {
		return s
	}
	return def
}

func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch t := item.(type) {
		case nil:
		case string:
			out = append(out, t)
		default:
			out = append(out, fmt.Sprint(t))
		}
	}
	return out
}

func suggestions(v any) []evaluation.Suggestion {
	items, ok := v.([]any)
	if !ok {
		return []evaluation.Suggestion{}
	}
	out := make([]evaluation.Suggestion, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		var s evaluation.Suggestion
		if err := mapstructure.WeakDecode(m, &s); err != nil {
			continue
		}
		out = append(out, s)
	}
	return out
}

func directions(v any) evaluation.DirectionAnalysis {
	var d evaluation.DirectionAnalysis
	if m, ok := v.(map[string]any); ok {
		_ = mapstructure.WeakDecode(m, &d)
	}
	for _, dir := range []*evaluation.Direction{&d.SafetyDirection, &d.HelpfulnessDirection, &d.SpecificityDirection} {
		if *dir == "" {
			*dir = evaluation.DirectionUnknown
		}
	}
	return d
}
