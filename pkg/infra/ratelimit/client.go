package ratelimit

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/TrustDrift/pkg/infra/providers"
)

type limitedClient struct {
	inner   providers.Client
	limiter Limiter
}

// NewLimitedClient waits on the limiter, keyed by the caller's API key, before every call.
func NewLimitedClient(inner providers.Client, limiter Limiter) providers.Client {
	return &limitedClient{inner: inner, limiter: limiter}
}

func (c *limitedClient) Ask(ctx context.Context, config *providers.Config, prompt string) (*providers.CompletionResponse, error) {
	if err := c.limiter.Wait(ctx, Key(config.Credentials.ApiKey)); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	return c.inner.Ask(ctx, config, prompt)
}
