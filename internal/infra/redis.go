package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"travelai/internal/config"
)

// InitRedis connects to TRAVELAI_REDIS_URL, which may be host:port or a redis:// URL.
func InitRedis(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
	if parsed, err := redis.ParseURL(cfg.RedisURL); err == nil {
		opts = parsed
		if cfg.RedisPassword != "" {
			opts.Password = cfg.RedisPassword
		}
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	log.Info().Str("addr", opts.Addr).Msg("Redis connected")
	return client, nil
}
