package narrator

import (
	"errors"
	"strings"

	"github.com/NeuralTrust/TrustDrift/pkg/evaluation"
)

const (
	summaryMarker   = "SUMMARY:"
	decisionMarker  = "SHIP_DECISION:"
	truncatedLength = 400
	linesLength     = 800
	emptySummary    = "Narrator could not generate a proper summary."
)

var ErrMissingDecision = errors.New("narrator output has an empty ship decision")

// Parse extracts the summary and decision from free-form narrator text.
// It fails only when the decision marker is present with nothing after it.
func Parse(raw string) (Narration, error) {
	text := strings.TrimSpace(raw)
	out := Narration{Raw: text}

	var ship string
	switch {
	case strings.Contains(text, decisionMarker):
		parts := strings.Split(text, decisionMarker)
		out.Summary = strings.TrimSpace(strings.ReplaceAll(parts[0], summaryMarker, ""))
		decision := strings.TrimSpace(parts[1])
		if decision == "" {
			return Narration{}, ErrMissingDecision
		}
		ship = strings.TrimSpace(strings.SplitN(decision, "\n", 2)[0])

	case strings.Contains(text, summaryMarker) && strings.Contains(text, "\n\n"):
		// without the decision marker the blank-line split never yields a decision
		out.Summary = evaluation.Truncate(text, truncatedLength)
		ship = string(evaluation.ShipWithMonitoring)

	default:
		lines := nonEmptyLines(text)
		switch {
		case len(lines) == 0:
			out.Summary = emptySummary
			ship = string(evaluation.ShipWithMonitoring)
		case evaluation.IsCanonical(lines[len(lines)-1]):
			ship = lines[len(lines)-1]
			out.Summary = evaluation.Head(strings.Join(lines[:len(lines)-1], "\n"), linesLength)
		default:
			out.Summary = evaluation.Truncate(text, truncatedLength)
			ship = string(evaluation.ShipWithMonitoring)
		}
	}

	// unknown decisions fall back to ShipWithMonitoring
	out.ShipDecision, _ = evaluation.NormalizeShipDecision(ship)
	return out, nil
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
