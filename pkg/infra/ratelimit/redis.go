package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

type redisLimiter struct {
	redis    *redis.Client
	cfg      Config
	opts     Opts
	logger   *logrus.Logger
	fallback Limiter
}

// NewRedisLimiter shares the window across instances. When Redis errors it degrades to an in-process window.
func NewRedisLimiter(redisClient *redis.Client, cfg Config, opts *Opts, logger *logrus.Logger) Limiter {
	cfg = cfg.withDefaults()
	return &redisLimiter{
		redis:    redisClient,
		cfg:      cfg,
		opts:     opts.resolve(),
		logger:   logger,
		fallback: NewLocalLimiter(cfg, opts),
	}
}

func (r *redisLimiter) Wait(ctx context.Context, key string) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		wait, ok, err := r.tryAcquire(ctx, key)
		if err != nil {
			r.logger.WithError(err).WithField("key", key).Warn("redis rate limiter unavailable, using local window")
			return r.fallback.Wait(ctx, key)
		}
		if ok {
			return nil
		}
		if err := r.opts.Sleep(ctx, wait); err != nil {
			return err
		}
	}
}

func (r *redisLimiter) Remaining(ctx context.Context, key string) (int, error) {
	now := r.opts.TimeProvider()
	count, err := r.redis.ZCount(ctx, key, windowStart(now, r.cfg.Window), millis(now)).Result()
	if err != nil {
		return r.fallback.Remaining(ctx, key)
	}
	return max(0, r.cfg.Limit-int(count)), nil
}

// acquireScript trims the window, then records the call only when the window
// has room. Returns {1, 0} on success or {0, msUntilOldestExpires}.
var acquireScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
redis.call('ZREMRANGEBYSCORE', key, '-inf', '(' .. (now - window))
if redis.call('ZCARD', key) < limit then
  redis.call('ZADD', key, now, ARGV[4])
  redis.call('PEXPIRE', key, window)
  return {1, 0}
end
local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
if #oldest == 0 then
  return {0, 0}
end
return {0, window - (now - tonumber(oldest[2]))}
`)

func (r *redisLimiter) tryAcquire(ctx context.Context, key string) (time.Duration, bool, error) {
	now := r.opts.TimeProvider()
	member := fmt.Sprintf("%d:%s", now.UnixMilli(), r.opts.UuidProvider().String())

	res, err := acquireScript.Run(ctx, r.redis, []string{key},
		now.UnixMilli(), r.cfg.Window.Milliseconds(), r.cfg.Limit, member,
	).Slice()
	if err != nil {
		return 0, false, fmt.Errorf("failed to acquire slot: %w", err)
	}
	if len(res) != 2 {
		return 0, false, fmt.Errorf("unexpected acquire reply: %v", res)
	}
	acquired, _ := res[0].(int64)
	if acquired == 1 {
		return 0, true, nil
	}
	waitMs, _ := res[1].(int64)
	return time.Duration(max(0, waitMs))*time.Millisecond + waitMargin, false, nil
}

func windowStart(now time.Time, window time.Duration) string {
	return strconv.FormatInt(now.Add(-window).UnixMilli(), 10)
}

func millis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
