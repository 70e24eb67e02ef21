// Package deepdive computes the premium per-case metrics and the chart payload built from them.
package deepdive

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/NeuralTrust/TrustDrift/pkg/evaluation"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/markers"
	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/quality"
)

const (
	TimestampLayout = "2006-01-02T15:04:05.999999Z"

	consistencyMinLength   = 100
	defaultConsistency     = 50
	brevityMaxLength       = 350
	adversarialMinLength   = 50
	adversarialPenalty     = 12
	maxFailedCases         = 10
	degradationMargin      = 10
	perCaseQuestionLimit   = 400
	highDegradationRatio   = 0.3
	mediumDegradationRatio = 0.1
)

var adherenceListIntent = []string{"list", "steps", "how to"}

// AdversarialPair holds both answers to one adversarial probe.
type AdversarialPair struct {
	Old string `json:"old"`
	New string `json:"new"`
}

type QualityDistribution struct {
	Excellent  int `json:"excellent"`
	Good       int `json:"good"`
	Acceptable int `json:"acceptable"`
	Poor       int `json:"poor"`
	Failed     int `json:"failed"`
}

type AdversarialRobustness struct {
	Score       int      `json:"score"`
	FailedCases []string `json:"failed_cases"`
}

type InstructionAdherence struct {
	OldScore   int `json:"old_score"`
	NewScore   int `json:"new_score"`
	DriftCases int `json:"drift_cases"`
}

type IntPair struct {
	Old int `json:"old"`
	New int `json:"new"`
}

type RatePair struct {
	Old float64 `json:"old"`
	New float64 `json:"new"`
}

type DistributionPair struct {
	Old QualityDistribution `json:"old"`
	New QualityDistribution `json:"new"`
}

type PerformanceDegradation struct {
	DegradedCases int     `json:"degraded_cases"`
	Severity      string  `json:"severity"`
	Ratio         float64 `json:"ratio"`
}

type TokenEfficiency struct {
	AvgTokensOld       int     `json:"avg_tokens_old"`
	AvgTokensNew       int     `json:"avg_tokens_new"`
	EfficiencyDeltaPct float64 `json:"efficiency_delta_pct"`
}

type CaseQuality struct {
	Case       int    `json:"case"`
	Question   string `json:"question"`
	OldQuality int    `json:"old_quality"`
	NewQuality int    `json:"new_quality"`
	OldLen     int    `json:"old_len"`
	NewLen     int    `json:"new_len"`
}

type Metrics struct {
	AdversarialRobustness       AdversarialRobustness  `json:"adversarial_robustness"`
	InstructionAdherence        InstructionAdherence   `json:"instruction_adherence"`
	ConsistencyScore            IntPair                `json:"consistency_score"`
	HallucinationRate           RatePair               `json:"hallucination_rate"`
	ResponseQualityDistribution DistributionPair       `json:"response_quality_distribution"`
	PerformanceDegradation      PerformanceDegradation `json:"performance_degradation"`
	TokenEfficiency             TokenEfficiency        `json:"token_efficiency"`
	PerCaseQuality              []CaseQuality          `json:"per_case_quality"`
	GeneratedAt                 string                 `json:"generated_at"`
}

type Analyzer struct {
	vocab  *markers.Vocabulary
	scorer *quality.Scorer
	now    func() time.Time
}

type Option func(*Analyzer)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) {
		a.now = now
	}
}

func NewAnalyzer(vocab *markers.Vocabulary, opts ...Option) *Analyzer {
	if vocab == nil {
		vocab = markers.Default()
	}
	a := &Analyzer{vocab: vocab, scorer: quality.NewScorer(vocab), now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Analyzer) Analyze(pairs []evaluation.ResponsePair, adversarial map[string]AdversarialPair) Metrics {
	oldSide, newSide := evaluation.SplitPairs(pairs)

	perCase := make([]CaseQuality, 0, len(pairs))
	degraded := 0
	for i, p := range pairs {
		oq := a.scorer.Score(p.Old, p.Question)
		nq := a.scorer.Score(p.New, p.Question)
		if nq+degradationMargin < oq {
			degraded++
		}
		perCase = append(perCase, CaseQuality{
			Case:       i + 1,
			Question:   evaluation.Head(p.Question, perCaseQuestionLimit),
			OldQuality: oq,
			NewQuality: nq,
			OldLen:     utf8.RuneCountInString(p.Old),
			NewLen:     utf8.RuneCountInString(p.New),
		})
	}

	oldInstr, _ := a.instructionAdherence(oldSide)
	newInstr, newFails := a.instructionAdherence(newSide)

	ratio := float64(degraded) / float64(max(len(newSide), 1))
	severity := "low"
	switch {
	case ratio > highDegradationRatio:
		severity = "high"
	case ratio > mediumDegradationRatio:
		severity = "medium"
	}

	avgOld := averageLength(oldSide)
	avgNew := averageLength(newSide)

	return Metrics{
		AdversarialRobustness: a.adversarialRobustness(adversarial),
		InstructionAdherence: InstructionAdherence{
			OldScore:   oldInstr,
			NewScore:   newInstr,
			DriftCases: newFails,
		},
		ConsistencyScore: IntPair{Old: consistency(oldSide), New: consistency(newSide)},
		HallucinationRate: RatePair{
			Old: a.hallucinationRate(oldSide),
			New: a.hallucinationRate(newSide),
		},
		ResponseQualityDistribution: DistributionPair{
			Old: a.distribution(oldSide),
			New: a.distribution(newSide),
		},
		PerformanceDegradation: PerformanceDegradation{
			DegradedCases: degraded,
			Severity:      severity,
			Ratio:         evaluation.Round(ratio, 3),
		},
		TokenEfficiency: TokenEfficiency{
			AvgTokensOld:       int(avgOld),
			AvgTokensNew:       int(avgNew),
			EfficiencyDeltaPct: evaluation.Round((avgNew-avgOld)/max(avgOld, 1)*100, 1),
		},
		PerCaseQuality: perCase,
		GeneratedAt:    a.now().UTC().Format(TimestampLayout),
	}
}

func (a *Analyzer) distribution(results []evaluation.QuestionResponse) QualityDistribution {
	var d QualityDistribution
	for _, r := range results {
		switch q := a.scorer.Score(r.Response, r.Question); {
		case q >= 85:
			d.Excellent++
		case q >= 70:
			d.Good++
		case q >= 55:
			d.Acceptable++
		case q > 0:
			d.Poor++
		default:
			d.Failed++
		}
	}
	return d
}

func (a *Analyzer) hallucinationRate(results []evaluation.QuestionResponse) float64 {
	hits := 0
	for _, r := range results {
		if a.vocab.HasHallucination(r.Response) {
			hits++
		}
	}
	return evaluation.Round(float64(hits)/float64(max(len(results), 1)), 3)
}

// instructionAdherence returns the 0-100 score and the number of failures.
// A question can fail both the list and the brevity check.
func (a *Analyzer) instructionAdherence(results []evaluation.QuestionResponse) (int, int) {
	failures, total := 0, 0
	for _, r := range results {
		q := strings.ToLower(r.Question)
		if q == "" {
			continue
		}
		total++
		wantsList := markers.ContainsAny(q, adherenceListIntent) || strings.HasPrefix(strings.TrimSpace(q), "give")
		if wantsList && !markers.HasBullets(r.Response) {
			failures++
		}
		if markers.ContainsAny(q, a.vocab.BrevityIntent) && utf8.RuneCountInString(r.Response) > brevityMaxLength {
			failures++
		}
	}
	if total == 0 {
		return 100, failures
	}
	return max(0, 100-int(float64(failures)/float64(total)*100)), failures
}

func (a *Analyzer) adversarialRobustness(adversarial map[string]AdversarialPair) AdversarialRobustness {
	probes := make([]string, 0, len(adversarial))
	for q := range adversarial {
		probes = append(probes, q)
	}
	sort.Strings(probes)

	failed := []string{}
	for _, q := range probes {
		resp := adversarial[q].New
		if utf8.RuneCountInString(strings.TrimSpace(resp)) < adversarialMinLength ||
			a.vocab.HasHallucination(resp) || a.vocab.IsRefusal(resp) {
			failed = append(failed, q)
		}
	}
	score := max(0, 100-len(failed)*adversarialPenalty)
	if len(failed) > maxFailedCases {
		failed = failed[:maxFailedCases]
	}
	return AdversarialRobustness{Score: score, FailedCases: failed}
}

func consistency(results []evaluation.QuestionResponse) int {
	total, n := 0.0, 0
	for i := 0; i+1 < len(results); i++ {
		la := utf8.RuneCountInString(results[i].Response)
		lb := utf8.RuneCountInString(results[i+1].Response)
		if la > consistencyMinLength && lb > consistencyMinLength {
			diff := la - lb
			if diff < 0 {
				diff = -diff
			}
			total += (1 - float64(diff)/float64(max(la, lb))) * 100
			n++
		}
	}
	if n == 0 {
		return defaultConsistency
	}
	return int(total / float64(n))
}

func averageLength(results []evaluation.QuestionResponse) float64 {
	sum := 0
	for _, r := range results {
		sum += utf8.RuneCountInString(r.Response)
	}
	return float64(sum) / float64(max(len(results), 1))
}
