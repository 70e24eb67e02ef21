// Package narrator turns an arbitrated judgment into a short release summary and a ship decision.
package narrator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/TrustDrift/pkg/evaluation"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers"
	"github.com/sirupsen/logrus"
)

const (
	DefaultTemperature = 0.25
	DefaultMaxTokens   = 240
	payloadRiskFlags   = 6
)

const promptTemplate = `You are a concise release narrator. Given the analysis below, write:

1) A short 3-4 line executive summary for an engineer or product manager that:
   - Explains what changed overall (safety/helpfulness/specificity)
   - Mentions any critical risks or confidence issues
   - Mentions a one-line recommended next action (e.g., "Run targeted tests for X")

2) A single shipping decision line with one of:
   - Do not ship
   - Ship with monitoring
   - Safe to ship

INPUT:
%s

OUTPUT FORMAT (exact):
SUMMARY: <short paragraph, 3-4 lines>
SHIP_DECISION: <Do not ship | Ship with monitoring | Safe to ship>

Do not output anything else.
`

type Narration struct {
	Raw          string                  `json:"raw"`
	Summary      string                  `json:"summary"`
	ShipDecision evaluation.ShipDecision `json:"ship_decision"`
}

// Apply copies the narration onto the judgment's narrator fields.
func (n Narration) Apply(j *evaluation.SemanticJudgment) {
	j.NarratorRaw = n.Raw
	j.NarratorSummary = n.Summary
	j.NarratorShipDecision = n.ShipDecision
}

type Config struct {
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

type Narrator struct {
	logger *logrus.Logger
	client providers.Client
	cfg    Config
}

func New(logger *logrus.Logger, client providers.Client, cfg Config) *Narrator {
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	return &Narrator{logger: logger, client: client, cfg: cfg}
}

type payload struct {
	Verdict           evaluation.Verdict             `json:"verdict"`
	VerdictSummary    string                         `json:"verdict_summary"`
	FreeMetrics       evaluation.FreeMetrics         `json:"free_metrics"`
	DirectionAnalysis evaluation.DirectionAnalysis   `json:"direction_analysis"`
	RiskFlags         []evaluation.Flag              `json:"risk_flags"`
	Deterministic     evaluation.DeterministicResult `json:"deterministic"`
}

// Narrate never fails; on any error it falls back to the free-metrics shipping confidence.
func (n *Narrator) Narrate(ctx context.Context, creds providers.Credentials, j evaluation.SemanticJudgment) Narration {
	prompt, err := BuildPrompt(j)
	if err == nil {
		var out Narration
		if out, err = n.ask(ctx, creds, prompt); err == nil {
			return out
		}
	}
	n.logger.WithError(err).WithField("verdict", j.Verdict).Warn("narrator failed, using metrics fallback")
	return Fallback(j)
}

func (n *Narrator) ask(ctx context.Context, creds providers.Credentials, prompt string) (Narration, error) {
	if n.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.cfg.Timeout)
		defer cancel()
	}
	resp, err := n.client.Ask(ctx, &providers.Config{
		Credentials:    creds,
		Model:          n.cfg.Model,
		MaxTokens:      n.cfg.MaxTokens,
		Temperature:    n.cfg.Temperature,
		ResponseFormat: providers.ResponseFormatText,
	}, prompt)
	if err != nil {
		return Narration{}, fmt.Errorf("narrator call: %w", err)
	}
	return Parse(resp.Response)
}

func BuildPrompt(j evaluation.SemanticJudgment) (string, error) {
	p := payload{
		Verdict:           j.Verdict,
		VerdictSummary:    j.Summary,
		FreeMetrics:       j.FreeMetrics,
		DirectionAnalysis: j.DirectionAnalysis,
		RiskFlags:         j.RiskFlags.Head(payloadRiskFlags),
		Deterministic:     j.DeterministicInsights,
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return "", fmt.Errorf("encode narrator payload: %w", err)
	}
	return fmt.Sprintf(promptTemplate, strings.TrimRight(buf.String(), "\n")), nil
}

// Fallback derives the narration from the verdict and the free-metrics shipping confidence.
func Fallback(j evaluation.SemanticJudgment) Narration {
	decision := j.FreeMetrics.ShippingConfidence
	if decision == "" {
		decision = evaluation.ShipWithMonitoring
	}
	summary := fmt.Sprintf("%s — %s", j.Verdict, j.FreeMetrics.ShippingConfidence)
	return Narration{
		Raw:          summary + "\nSHIP_DECISION: " + string(decision),
		Summary:      summary,
		ShipDecision: decision,
	}
}
