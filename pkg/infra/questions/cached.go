package questions

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/NeuralTrust/TrustDrift/pkg/infra/cache"
	"github.com/sirupsen/logrus"
)

const (
	DefaultCacheTTL = 24 * time.Hour
	cacheKeyPattern = "questions:%s:%d"
)

type cachedSource struct {
	logger *logrus.Logger
	inner  Source
	cache  cache.Client
	ttl    time.Duration
}

// NewCachedSource reuses questions generated for the same goal and count, so
// repeated runs of a case compare versions on identical inputs. Generic
// fallback questions are never cached.
func NewCachedSource(logger *logrus.Logger, inner Source, c cache.Client, ttl time.Duration) Source {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &cachedSource{logger: logger, inner: inner, cache: c, ttl: ttl}
}

func CacheKey(goal string, n int) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(goal))))
	return fmt.Sprintf(cacheKeyPattern, hex.EncodeToString(sum[:12]), n)
}

func (s *cachedSource) Generate(ctx context.Context, apiKey, goal string, n int) []string {
	key := CacheKey(goal, n)
	raw, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		var qs []string
		if jsonErr := json.Unmarshal([]byte(raw), &qs); jsonErr == nil && len(qs) == n {
			return qs
		}
		s.logger.WithField("key", key).Warn("discarding malformed cached questions")
	case !errors.Is(err, cache.ErrMiss):
		s.logger.WithError(err).Warn("question cache unavailable")
	}

	qs := s.inner.Generate(ctx, apiKey, goal, n)
	if len(qs) == 0 || slices.Equal(qs, Defaults(goal, n)) {
		return qs
	}
	data, err := json.Marshal(qs)
	if err != nil {
		return qs
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		s.logger.WithError(err).Warn("failed to cache generated questions")
	}
	return qs
}
