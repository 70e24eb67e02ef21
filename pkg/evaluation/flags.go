package evaluation

import (
	"encoding/json"
	"strings"
)

type Flag string

const (
	// deterministic flags
	FlagSafetyCompromise    Flag = "SAFETY_COMPROMISE"
	FlagSafetyHardening     Flag = "SAFETY_HARDENING"
	FlagConfidenceInflation Flag = "CONFIDENCE_INFLATION"
	FlagNewDomainAssertion  Flag = "NEW_DOMAIN_ASSERTION"
	FlagOverEvasion         Flag = "OVER_EVASION"

	// semantic flags
	FlagHallucination         Flag = "HALLUCINATION"
	FlagWrongSectionReference Flag = "WRONG_SECTION_REFERENCE"
	FlagNumericHallucination  Flag = "NUMERIC_HALLUCINATION"
	FlagInventedPenalty       Flag = "INVENTED_PENALTY"
	FlagEdgeCaseLoss          Flag = "EDGE_CASE_LOSS"
	FlagDetailLoss            Flag = "DETAIL_LOSS"
	FlagAssumptionLoss        Flag = "ASSUMPTION_LOSS"

	// hard-regression flags
	FlagHallucinationIncrease Flag = "HALLUCINATION_INCREASE"
	FlagLegalMisinfoIncrease  Flag = "LEGAL_MISINFO_INCREASE"
	FlagUnsafeAdviceIncrease  Flag = "UNSAFE_ADVICE_INCREASE"

	FlagJudgeUnavailable Flag = "JUDGE_UNAVAILABLE"
	FlagAnalysisFailure  Flag = "ANALYSIS_FAILURE"
)

// SectionLossFlag names the flag raised when a structural section disappears.
func SectionLossFlag(section string) Flag {
	return Flag(strings.ToUpper(section) + "_LOSS")
}

// IsLoss reports whether the flag describes lost content.
func (f Flag) IsLoss() bool {
	return strings.HasSuffix(string(f), "_LOSS")
}

// DefaultHardRegressionFlags are the deterministic flags that let arbitration force a regression.
func DefaultHardRegressionFlags() FlagSet {
	return NewFlagSet(FlagHallucinationIncrease, FlagLegalMisinfoIncrease, FlagUnsafeAdviceIncrease)
}

// FlagSet is an insertion-ordered set of flags. The zero value is empty and ready to use.
type FlagSet struct {
	order []Flag
	index map[Flag]struct{}
}

func NewFlagSet(flags ...Flag) FlagSet {
	var s FlagSet
	for _, f := range flags {
		s.Add(f)
	}
	return s
}

// FlagSetFromStrings builds a set from raw strings, skipping blanks.
func FlagSetFromStrings(values []string) FlagSet {
	var s FlagSet
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		s.Add(Flag(v))
	}
	return s
}

func (s *FlagSet) Add(f Flag) {
	if s.index == nil {
		s.index = make(map[Flag]struct{})
	}
	if _, ok := s.index[f]; ok {
		return
	}
	s.index[f] = struct{}{}
	s.order = append(s.order, f)
}

func (s FlagSet) Has(f Flag) bool {
	_, ok := s.index[f]
	return ok
}

func (s FlagSet) Len() int {
	return len(s.order)
}

// Slice returns a copy of the flags in insertion order.
func (s FlagSet) Slice() []Flag {
	out := make([]Flag, len(s.order))
	copy(out, s.order)
	return out
}

func (s FlagSet) Strings() []string {
	out := make([]string, len(s.order))
	for i, f := range s.order {
		out[i] = string(f)
	}
	return out
}

// Head returns at most n flags in insertion order.
func (s FlagSet) Head(n int) []Flag {
	if n > len(s.order) {
		n = len(s.order)
	}
	out := make([]Flag, n)
	copy(out, s.order[:n])
	return out
}

// Intersect keeps the flags of s that are also in other, in s order.
func (s FlagSet) Intersect(other FlagSet) FlagSet {
	var out FlagSet
	for _, f := range s.order {
		if other.Has(f) {
			out.Add(f)
		}
	}
	return out
}

// Union returns s followed by the flags of other not already present.
func (s FlagSet) Union(other FlagSet) FlagSet {
	out := NewFlagSet(s.order...)
	for _, f := range other.order {
		out.Add(f)
	}
	return out
}

func (s FlagSet) Any(pred func(Flag) bool) bool {
	for _, f := range s.order {
		if pred(f) {
			return true
		}
	}
	return false
}

func (s FlagSet) Join(sep string) string {
	return strings.Join(s.Strings(), sep)
}

func (s FlagSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Strings())
}

func (s *FlagSet) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*s = FlagSetFromStrings(values)
	return nil
}
