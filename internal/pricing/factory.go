package pricing

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/tariff/internal/config"
	"github.com/davidbz/tariff/internal/domain"
	"github.com/davidbz/tariff/internal/source"
	"github.com/davidbz/tariff/internal/store"
)

// NewFromConfig assembles the store, source chain, and cache from
// configuration (DI constructor). events may be nil.
func NewFromConfig(
	cfg *config.PricingConfig,
	redisCfg *config.RedisConfig,
	events domain.EventPublisher,
) (*Cache, error) {
	st, err := newStore(cfg, redisCfg)
	if err != nil {
		return nil, err
	}

	chain := source.NewChain(
		source.NewRemote(cfg.UpdateURL, time.Duration(cfg.FetchTimeout)*time.Second, st),
		source.NewCached(st),
		source.NewBundled(),
		source.NewDefaults(),
	)

	ttl := time.Duration(cfg.CacheTTLHours) * time.Hour
	return NewCache(cfg.AutoUpdate, ttl, st, chain, events), nil
}

func newStore(cfg *config.PricingConfig, redisCfg *config.RedisConfig) (store.Store, error) {
	switch cfg.Store {
	case "file", "":
		return store.NewFileStore(cfg.CacheDir)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		})
		return store.NewRedisStore(client, redisCfg.Key), nil
	default:
		return nil, fmt.Errorf("unknown pricing store backend %q", cfg.Store)
	}
}
