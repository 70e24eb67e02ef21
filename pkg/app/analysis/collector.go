package analysis

import (
	"context"
	"fmt"
	"maps"
	"time"

	"github.com/NeuralTrust/TrustDrift/pkg/evaluation"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/fetcher"
	"github.com/NeuralTrust/TrustDrift/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	DefaultThrottle = 1200 * time.Millisecond
	questionVar     = "question"
	sideOld         = "old"
	sideNew         = "new"
)

// Targets describes the two services under comparison. They share the request
// shape; only the URL differs.
type Targets struct {
	OldURL       string
	NewURL       string
	Headers      map[string]string
	BodyTemplate map[string]any
	Variables    map[string]any
	ResponsePath string
}

//go:generate mockery --name=Collector --dir=. --output=./mocks --filename=collector_mock.go --case=underscore --with-expecter
type Collector interface {
	// Collect asks every question of both services in order. Upstream failures
	// become error-marker responses; only cancellation aborts the batch.
	Collect(ctx context.Context, targets Targets, questions []string) ([]evaluation.ResponsePair, error)
}

type collector struct {
	logger   *logrus.Logger
	fetcher  fetcher.Fetcher
	throttle time.Duration
}

func NewCollector(logger *logrus.Logger, f fetcher.Fetcher, throttle time.Duration) Collector {
	if throttle < 0 {
		throttle = 0
	}
	return &collector{logger: logger, fetcher: f, throttle: throttle}
}

func (c *collector) Collect(ctx context.Context, targets Targets, questions []string) ([]evaluation.ResponsePair, error) {
	// One token per question: the first goes out immediately, the rest are spaced by throttle.
	limiter := rate.NewLimiter(rate.Every(c.throttle), 1)
	pairs := make([]evaluation.ResponsePair, 0, len(questions))

	for i, q := range questions {
		if err := limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("collect question %d/%d: %w", i+1, len(questions), err)
		}
		vars := maps.Clone(targets.Variables)
		if vars == nil {
			vars = make(map[string]any, 1)
		}
		vars[questionVar] = q

		pairs = append(pairs, evaluation.ResponsePair{
			Question: q,
			Old:      c.ask(ctx, sideOld, targets.OldURL, targets, vars, i),
			New:      c.ask(ctx, sideNew, targets.NewURL, targets, vars, i),
		})
	}
	return pairs, nil
}

func (c *collector) ask(ctx context.Context, side, url string, targets Targets, vars map[string]any, index int) string {
	resp, err := c.fetcher.Fetch(ctx, fetcher.Target{
		URL:          url,
		Headers:      targets.Headers,
		BodyTemplate: targets.BodyTemplate,
		Variables:    vars,
		ResponsePath: targets.ResponsePath,
	})
	if err != nil {
		prometheus.UpstreamErrors.WithLabelValues(side).Inc()
		c.logger.WithError(err).WithFields(logrus.Fields{
			"side":     side,
			"question": index + 1,
		}).Warn("upstream call failed")
		return evaluation.ErrorMarker(err)
	}
	return resp
}
