package ratelimit

import (
	"context"
	"sync"
	"time"
)

type localLimiter struct {
	cfg  Config
	opts Opts
	mu   sync.Mutex
	// calls holds per-key call times, oldest first
	calls map[string][]time.Time
}

func NewLocalLimiter(cfg Config, opts *Opts) Limiter {
	return &localLimiter{
		cfg:   cfg.withDefaults(),
		opts:  opts.resolve(),
		calls: make(map[string][]time.Time),
	}
}

func (l *localLimiter) Wait(ctx context.Context, key string) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		wait, ok := l.tryAcquire(key)
		if ok {
			return nil
		}
		if err := l.opts.Sleep(ctx, wait); err != nil {
			return err
		}
	}
}

func (l *localLimiter) Remaining(_ context.Context, key string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return max(0, l.cfg.Limit-len(l.prune(key, l.opts.TimeProvider()))), nil
}

func (l *localLimiter) tryAcquire(key string) (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.opts.TimeProvider()
	calls := l.prune(key, now)
	if len(calls) < l.cfg.Limit {
		l.calls[key] = append(calls, now)
		return 0, true
	}
	return l.cfg.Window - now.Sub(calls[0]) + waitMargin, false
}

// prune must be called with mu held.
func (l *localLimiter) prune(key string, now time.Time) []time.Time {
	calls := l.calls[key]
	cutoff := now.Add(-l.cfg.Window)
	i := 0
	for i < len(calls) && !calls[i].After(cutoff) {
		i++
	}
	calls = calls[i:]
	l.calls[key] = calls
	return calls
}
