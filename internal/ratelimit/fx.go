package ratelimit

import (
	"context"

	"github.com/paylift/srbooster/internal/config"
	"github.com/paylift/srbooster/internal/observability/metrics"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	Log       *zap.Logger
	Metrics   *metrics.Metrics
}

func NewCreateLimiter(p Params) *CreateLimiter {
	if !p.Config.RateLimit.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     p.Config.RateLimit.RedisAddr,
		Password: p.Config.RateLimit.RedisPassword,
		DB:       p.Config.RateLimit.RedisDB,
	})

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return &CreateLimiter{
		bucket:  NewTokenBucket(client),
		rate:    p.Config.RateLimit.CreateRate,
		burst:   p.Config.RateLimit.CreateBurst,
		log:     p.Log.Named("ratelimit"),
		metrics: p.Metrics,
	}
}

var Module = fx.Module("ratelimit",
	fx.Provide(NewCreateLimiter),
)
