package memcache_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripplanner/internal/config"
	"tripplanner/internal/infra"
	"tripplanner/internal/repositories"
	mem "tripplanner/pkg/memcache"
)

var Module = fx.Provide(
	provideRedis,
	providePayloadCache,
	provideTokenStore)

func provideRedis(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*redis.Client, error) {
	client, err := infra.InitRedis(cfg, log)
	if err != nil || client == nil {
		return nil, err
	}
	lc.Append(fx.StopHook(client.Close))
	return client, nil
}

func providePayloadCache(client *redis.Client, log *zap.Logger) repositories.PayloadCache {
	if client == nil {
		return repositories.NewMemoryPayloadCache(mem.NewTTLStore[[]byte]())
	}
	return repositories.NewRedisPayloadCache(client, log)
}

func provideTokenStore() mem.Store[string] {
	return mem.NewTTLStore[string]()
}
