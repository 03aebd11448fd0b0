package store_fx

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"travelai/cmd/fx/memcache_fx"
	"travelai/internal/config"
	"travelai/internal/infra"
	"travelai/internal/repositories"
	mem "travelai/pkg/memcache"
)

// RedisModule keeps saved trips and revoked tokens in Redis.
var RedisModule = fx.Options(
	fx.Provide(provideRedis),
	fx.Provide(provideRedisSavedTripStore),
	fx.Provide(repositories.NewRedisTokenDenylist),
)

// MemoryModule keeps them in process memory; everything is lost on restart.
var MemoryModule = fx.Options(
	memcache_fx.Module,
	fx.Provide(provideMemorySavedTripStore),
	fx.Provide(provideMemoryDenylist),
)

// For picks the module matching the configured backend.
func For(cfg *config.Config) fx.Option {
	if cfg.UsesRedis() {
		return RedisModule
	}
	return MemoryModule
}

func provideRedis(lc fx.Lifecycle, cfg *config.Config, log zerolog.Logger) (*redis.Client, error) {
	client, err := infra.InitRedis(context.Background(), cfg, log)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func provideRedisSavedTripStore(rdb *redis.Client, log zerolog.Logger) repositories.SavedTripStore {
	return repositories.NewRedisSavedTripStore(rdb, log.With().Str("component", "saved_trip_store").Logger())
}

func provideMemorySavedTripStore(store *mem.Store, log zerolog.Logger) repositories.SavedTripStore {
	return repositories.NewMemorySavedTripStore(store, log.With().Str("component", "saved_trip_store").Logger())
}

func provideMemoryDenylist(store *mem.Store) repositories.TokenDenylist {
	return repositories.NewMemoryTokenDenylist(store)
}
