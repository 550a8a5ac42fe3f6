package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

type RedisConfig struct {
	// URL takes precedence over Addr/Password/DB when set, e.g.
	// redis://:secret@cache:6379/0.
	URL      string
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// RedisCache stores profiles as JSON strings. Each entry is written with a
// single SET ... EX so the value and its expiry land atomically.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache connects to redis and verifies the connection with a ping.
func NewRedisCache(ctx context.Context, cfg RedisConfig) (*RedisCache, error) {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		opts = parsed
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", opts.Addr, err)
	}

	return NewRedisCacheFromClient(client, cfg.Prefix), nil
}

// NewRedisCacheFromClient wraps an existing client. The cache takes
// ownership: Close closes the client.
func NewRedisCacheFromClient(client *redis.Client, prefix string) *RedisCache {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &RedisCache{client: client, prefix: prefix}
}

func (c *RedisCache) Get(ctx context.Context, token domain.UserToken) (domain.Profile, bool, error) {
	raw, err := c.client.Get(ctx, Key(c.prefix, token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Profile{}, false, nil
	}
	if err != nil {
		return domain.Profile{}, false, fmt.Errorf("%w: session cache get: %v", domain.ErrUnavailable, err)
	}

	var profile domain.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		// A corrupt entry is treated as absent; the next validation overwrites it.
		slogx.FromContext(ctx).Warn("discarding undecodable session entry",
			slogx.Token("token", string(token)), "err", err)
		return domain.Profile{}, false, nil
	}
	return profile, true, nil
}

func (c *RedisCache) Set(ctx context.Context, token domain.UserToken, profile domain.Profile, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("%w: session ttl must be positive, got %s", domain.ErrInvalidInput, ttl)
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("%w: encode session profile: %v", domain.ErrInternal, err)
	}

	if err := c.client.Set(ctx, Key(c.prefix, token), raw, ttl).Err(); err != nil {
		return fmt.Errorf("%w: session cache set: %v", domain.ErrUnavailable, err)
	}
	return nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: redis ping: %v", domain.ErrUnavailable, err)
	}
	return nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
