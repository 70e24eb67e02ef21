// Package quality estimates response quality on a 0-100 scale from explainable text heuristics.
package quality

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/NeuralTrust/TrustDrift/pkg/evaluation/markers"
)

const (
	baseFloor          = 20.0
	baseSpan           = 70.0
	lengthSaturation   = 2000
	structurePerBreak  = 1.5
	maxStructureBreaks = 6
	listBonus          = 6.0
	listPenalty        = -8.0
	refusalPenalty     = -40.0
	overclaimPenalty   = -30.0
	verbosityPenalty   = -8.0
	verbosityMinLength = 1500
	verbosityMaxAvg    = 30.0
)

type Scorer struct {
	vocab *markers.Vocabulary
}

func NewScorer(vocab *markers.Vocabulary) *Scorer {
	if vocab == nil {
		vocab = markers.Default()
	}
	return &Scorer{vocab: vocab}
}

// Score returns 0 for blank text. The question only influences the list-format check.
func (s *Scorer) Score(text, question string) int {
	txt := strings.TrimSpace(text)
	if txt == "" {
		return 0
	}
	length := utf8.RuneCountInString(txt)

	score := baseFloor + float64(min(length, lengthSaturation))/lengthSaturation*baseSpan
	score += float64(min(maxStructureBreaks, strings.Count(txt, "\n"))) * structurePerBreak

	if question != "" && markers.ContainsAny(question, s.vocab.ListIntent) {
		if markers.HasBullets(txt) {
			score += listBonus
		} else {
			score += listPenalty
		}
	}

	if s.vocab.IsRefusal(txt) {
		score += refusalPenalty
	}
	if s.vocab.HasHallucination(txt) {
		score += overclaimPenalty
	}

	if length > verbosityMinLength && averageSentenceLength(txt) < verbosityMaxAvg {
		score += verbosityPenalty
	}
	return Clamp(score)
}

// Clamp rounds half-to-even and bounds the value to [0,100].
func Clamp(v float64) int {
	r := int(math.RoundToEven(v))
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return r
}

func averageSentenceLength(txt string) float64 {
	total, count := 0, 0
	for _, piece := range strings.Split(txt, ".") {
		if strings.TrimSpace(piece) == "" {
			continue
		}
		total += utf8.RuneCountInString(piece)
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}
