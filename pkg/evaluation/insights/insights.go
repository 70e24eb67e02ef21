// Package insights derives descriptive behavior, novelty, tradeoff and advice summaries for a report.
package insights

import (
	"strings"
	"unicode/utf8"

	"github.com/NeuralTrust/TrustDrift/pkg/evaluation"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/markers"
)

const (
	Unchanged      = "unchanged"
	Increased      = "increased"
	Introduced     = "introduced"
	MoreCautious   = "more cautious"
	MoreAssertive  = "more assertive"
	Worsened       = "worsened"
	citationMarker = "Section"
	specificityGap = 1.2
)

type NetEffect string

const (
	NetUnsafeHelpfulnessGain NetEffect = "unsafe_helpfulness_gain"
	NetSafeButLessHelpful    NetEffect = "safe_but_less_helpful"
	NetNeutral               NetEffect = "neutral"
)

const noAdvice = "No major architectural issues detected."

type BehaviorShift struct {
	ConfidenceShift  string `json:"confidence_shift"`
	SpecificityShift string `json:"specificity_shift"`
	CitationBehavior string `json:"citation_behavior"`
	AdviceTone       string `json:"advice_tone"`
	RiskPosture      string `json:"risk_posture"`
}

type ErrorNovelty struct {
	IntroducedErrors []evaluation.Flag `json:"introduced_errors"`
	InheritedErrors  []evaluation.Flag `json:"inherited_errors"`
	HasNewRisk       bool              `json:"has_new_risk"`
}

type Tradeoff struct {
	HelpfulnessDelta int       `json:"helpfulness_delta"`
	SafetyDelta      int       `json:"safety_delta"`
	NetEffect        NetEffect `json:"net_effect"`
}

type rule struct {
	flag          evaluation.Flag
	deterministic bool
	advice        string
}

var adviceRules = []rule{
	{evaluation.FlagHallucination, false, "Introduce numeric validation or retrieval-based grounding for stated limits."},
	{evaluation.FlagConfidenceInflation, false, "Enforce a disclaimer or uncertainty layer when facts are inferred."},
	{evaluation.FlagEdgeCaseLoss, true, "Add explicit edge-case handling for the special situations users ask about."},
	{evaluation.FlagDetailLoss, true, "Separate the direct answer from the explanation to preserve completeness."},
}

type Analyzer struct {
	vocab *markers.Vocabulary
}

func New(vocab *markers.Vocabulary) *Analyzer {
	if vocab == nil {
		vocab = markers.Default()
	}
	return &Analyzer{vocab: vocab}
}

// BehaviorShift compares the concatenated old and new answers.
func (a *Analyzer) BehaviorShift(pairs []evaluation.ResponsePair) BehaviorShift {
	oldSide, newSide := evaluation.SplitPairs(pairs)
	oldText := joinResponses(oldSide)
	newText := joinResponses(newSide)

	shift := BehaviorShift{
		ConfidenceShift:  MoreAssertive,
		SpecificityShift: Unchanged,
		CitationBehavior: Unchanged,
		AdviceTone:       Unchanged,
		RiskPosture:      Unchanged,
	}
	if float64(utf8.RuneCountInString(newText)) > float64(utf8.RuneCountInString(oldText))*specificityGap {
		shift.SpecificityShift = Increased
	}
	if strings.Contains(newText, citationMarker) && !strings.Contains(oldText, citationMarker) {
		shift.CitationBehavior = Introduced
	}
	if markers.ContainsAny(newText, a.vocab.Directive) {
		shift.AdviceTone = Introduced
	}
	if markers.ContainsAny(newText, a.vocab.Hedging) {
		shift.ConfidenceShift = MoreCautious
	}
	if shift.CitationBehavior == Introduced && shift.ConfidenceShift == MoreAssertive {
		shift.RiskPosture = Worsened
	}
	return shift
}

// Novelty splits judge flags into those the differ already saw and those it did not.
func Novelty(detFlags, riskFlags evaluation.FlagSet) ErrorNovelty {
	out := ErrorNovelty{
		IntroducedErrors: []evaluation.Flag{},
		InheritedErrors:  []evaluation.Flag{},
	}
	for _, f := range riskFlags.Slice() {
		if detFlags.Has(f) {
			out.InheritedErrors = append(out.InheritedErrors, f)
		} else {
			out.IntroducedErrors = append(out.IntroducedErrors, f)
		}
	}
	out.HasNewRisk = len(out.IntroducedErrors) > 0
	return out
}

// TradeoffOf weighs total answer length against cookedness.
func TradeoffOf(pairs []evaluation.ResponsePair, cookedness int) Tradeoff {
	delta := 0
	for _, p := range pairs {
		delta += utf8.RuneCountInString(p.New) - utf8.RuneCountInString(p.Old)
	}
	safety := -cookedness

	net := NetNeutral
	switch {
	case delta > 0 && safety < 0:
		net = NetUnsafeHelpfulnessGain
	case delta < 0 && safety > 0:
		net = NetSafeButLessHelpful
	}
	return Tradeoff{HelpfulnessDelta: delta, SafetyDelta: safety, NetEffect: net}
}

// Advice maps flags to architecture recommendations.
func Advice(detFlags, riskFlags evaluation.FlagSet) []string {
	var advice []string
	for _, r := range adviceRules {
		flags := riskFlags
		if r.deterministic {
			flags = detFlags
		}
		if flags.Has(r.flag) {
			advice = append(advice, r.advice)
		}
	}
	if len(advice) == 0 {
		return []string{noAdvice}
	}
	return advice
}

func joinResponses(results []evaluation.QuestionResponse) string {
	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = r.Response
	}
	return strings.Join(parts, " ")
}
