// Package ratelimit gates outbound LLM calls with a per-key sliding window.
package ratelimit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLimit  = 30
	DefaultWindow = time.Minute
	// waitMargin is added to computed waits so the oldest call has surely left the window.
	waitMargin = time.Second
	keyPrefix  = "ratelimit:llm:"
)

type Limiter interface {
	// Wait blocks until a call is allowed for key, then records it.
	Wait(ctx context.Context, key string) error
	Remaining(ctx context.Context, key string) (int, error)
}

type Config struct {
	Limit  int
	Window time.Duration
}

func (c Config) withDefaults() Config {
	if c.Limit <= 0 {
		c.Limit = DefaultLimit
	}
	if c.Window <= 0 {
		c.Window = DefaultWindow
	}
	return c
}

type Opts struct {
	TimeProvider func() time.Time
	UuidProvider func() uuid.UUID
	Sleep        func(ctx context.Context, d time.Duration) error
}

func (o *Opts) resolve() Opts {
	out := Opts{TimeProvider: time.Now, UuidProvider: uuid.New, Sleep: sleep}
	if o == nil {
		return out
	}
	if o.TimeProvider != nil {
		out.TimeProvider = o.TimeProvider
	}
	if o.UuidProvider != nil {
		out.UuidProvider = o.UuidProvider
	}
	if o.Sleep != nil {
		out.Sleep = o.Sleep
	}
	return out
}

// Key derives a storage key that does not expose the raw credential.
func Key(apiKey string) string {
	sum := sha256.Sum256([]byte(apiKey))
	return keyPrefix + hex.EncodeToString(sum[:8])
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
