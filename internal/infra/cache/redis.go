package cache

import (
	"github.com/launchlabs/leo-backend/internal/config"
	"github.com/redis/go-redis/v9"
)

// New returns a redis client, or nil when no address is configured.
// The only consumer (login throttling) treats nil as disabled.
func New(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
}
