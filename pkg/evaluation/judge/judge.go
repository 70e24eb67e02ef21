// Package judge asks an LLM for a structured semantic verdict on an old/new
// behavior change and falls back to deterministic signals when it cannot get one.
package judge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/TrustDrift/pkg/evaluation"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers"
	"github.com/sirupsen/logrus"
)

const (
	DefaultMaxTokens = 2000
	DefaultBackoff   = 600 * time.Millisecond

	systemPrompt = "You are an AI evaluation engine. Reply ONLY with valid JSON that follows the exact schema you are given. " +
		"Do not add commentary or markdown. If you cannot answer, return {\"verdict\": \"Unknown\"}."
)

var errNotObject = errors.New("judge output is not a JSON object")

// Strategy is one judge attempt configuration, tried in order until one yields a JSON object.
type Strategy struct {
	Temperature float64 `mapstructure:"temperature"`
	Description string  `mapstructure:"description"`
}

func DefaultStrategies() []Strategy {
	return []Strategy{
		{Temperature: 0.3, Description: "Low temperature (precise)"},
		{Temperature: 0.7, Description: "Medium temperature (balanced)"},
		{Temperature: 0.1, Description: "Very low temperature (deterministic)"},
	}
}

type Config struct {
	Model               string
	MaxTokens           int
	Strategies          []Strategy
	Backoff             time.Duration
	AttemptTimeout      time.Duration
	HardRegressionFlags evaluation.FlagSet
}

type Request struct {
	Credentials   providers.Credentials
	Goal          string
	OldPrompt     string
	NewPrompt     string
	Pairs         []evaluation.ResponsePair
	Deterministic evaluation.DeterministicResult
}

type Adapter struct {
	logger *logrus.Logger
	client providers.Client
	cfg    Config
}

func NewAdapter(logger *logrus.Logger, client providers.Client, cfg Config) *Adapter {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if len(cfg.Strategies) == 0 {
		cfg.Strategies = DefaultStrategies()
	}
	if cfg.Backoff < 0 {
		cfg.Backoff = 0
	}
	if cfg.HardRegressionFlags.Len() == 0 {
		cfg.HardRegressionFlags = evaluation.DefaultHardRegressionFlags()
	}
	return &Adapter{logger: logger, client: client, cfg: cfg}
}

// HardRegressionFlags returns the flags that mark a deterministic hard regression.
func (a *Adapter) HardRegressionFlags() evaluation.FlagSet {
	return a.cfg.HardRegressionFlags
}

// Judge never fails: when every strategy is exhausted it returns the deterministic fallback.
func (a *Adapter) Judge(ctx context.Context, req Request) evaluation.SemanticJudgment {
	comparisons := CompactComparisons(req.Pairs, compareCases)
	prompt := BuildPrompt(req, comparisons)

	var judgment evaluation.SemanticJudgment
	raw, err := a.run(ctx, req.Credentials, prompt)
	if err != nil {
		a.logger.WithError(err).WithField("deterministic_score", req.Deterministic.Score).
			Warn("semantic judge unavailable, using deterministic fallback")
		judgment = Fallback(req.Deterministic, a.cfg.HardRegressionFlags)
	} else {
		judgment = Normalize(raw)
	}

	judgment.EvidenceSample = comparisons
	judgment.DeterministicInsights = req.Deterministic
	return judgment
}

func (a *Adapter) run(ctx context.Context, creds providers.Credentials, prompt string) (map[string]any, error) {
	var lastErr error
	for i, strategy := range a.cfg.Strategies {
		if i > 0 && a.cfg.Backoff > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(a.cfg.Backoff):
			}
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entry := a.logger.WithFields(logrus.Fields{
			"attempt":     i + 1,
			"temperature": strategy.Temperature,
			"strategy":    strategy.Description,
		})
		raw, err := a.attempt(ctx, creds, prompt, strategy)
		if err != nil {
			entry.WithError(err).Debug("judge attempt failed")
			lastErr = err
			continue
		}
		entry.WithField("verdict", raw["verdict"]).Debug("judge attempt succeeded")
		return raw, nil
	}
	if lastErr == nil {
		lastErr = errors.New("no judge strategies configured")
	}
	return nil, fmt.Errorf("all %d judge attempts failed: %w", len(a.cfg.Strategies), lastErr)
}

func (a *Adapter) attempt(ctx context.Context, creds providers.Credentials, prompt string, s Strategy) (map[string]any, error) {
	if a.cfg.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.AttemptTimeout)
		defer cancel()
	}
	resp, err := a.client.Ask(ctx, &providers.Config{
		Credentials:    creds,
		Model:          a.cfg.Model,
		MaxTokens:      a.cfg.MaxTokens,
		Temperature:    s.Temperature,
		SystemPrompt:   systemPrompt,
		ResponseFormat: providers.ResponseFormatJSON,
	}, prompt)
	if err != nil {
		return nil, err
	}
	var parsed any
	if err := json.Unmarshal([]byte(resp.Response), &parsed); err != nil {
		return nil, fmt.Errorf("decode judge output: %w", err)
	}
	obj, ok := parsed.(map[string]any)
	if !ok {
		return nil, errNotObject
	}
	return obj, nil
}
