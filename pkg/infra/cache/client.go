// Package cache is a two-level string cache: an in-process TTL map in front of Redis.
package cache

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	DefaultLocalTTL = 5 * time.Minute
	writeTimeout    = 2 * time.Second
	pingTimeout     = 5 * time.Second
)

// ErrMiss is returned by Get when neither level holds the key.
var ErrMiss = errors.New("cache miss")

type Config struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

// Connect dials Redis and verifies it answers a PING.
func Connect(config Config, logger *logrus.Logger) (*redis.Client, error) {
	options := &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	}
	if config.TLS {
		options.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402
		}
	}
	redisClient := redis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.WithFields(logrus.Fields{
			"host":  config.Host,
			"port":  config.Port,
			"error": err.Error(),
		}).Error("failed to connect to redis")
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"host": config.Host,
		"port": config.Port,
	}).Info("redis connected successfully")
	return redisClient, nil
}

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore --with-expecter
type Client interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

type client struct {
	redisClient *redis.Client
	local       *TTLMap
}

// NewClient builds the cache. A nil redisClient keeps it purely in-process.
func NewClient(redisClient *redis.Client, localTTL time.Duration) Client {
	if localTTL <= 0 {
		localTTL = DefaultLocalTTL
	}
	return &client{
		redisClient: redisClient,
		local:       NewTTLMap(localTTL),
	}
}

func (c *client) Get(ctx context.Context, key string) (string, error) {
	if value, ok := c.local.Get(key); ok {
		return value, nil
	}
	if c.redisClient == nil {
		return "", ErrMiss
	}
	value, err := c.redisClient.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMiss
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	c.local.Set(key, value, 0)
	return value, nil
}

func (c *client) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	if c.redisClient != nil {
		ctx, cancel := context.WithTimeout(ctx, writeTimeout)
		defer cancel()
		if err := c.redisClient.Set(ctx, key, value, expiration).Err(); err != nil {
			return fmt.Errorf("redis set %s: %w", key, err)
		}
	}
	c.local.Set(key, value, expiration)
	return nil
}

func (c *client) Delete(ctx context.Context, key string) error {
	c.local.Delete(key)
	if c.redisClient == nil {
		return nil
	}
	if err := c.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
