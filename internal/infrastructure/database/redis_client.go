package database

import (
	"context"
	"time"

	appconfig "quotely/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// NewRedisClient connects the session and draft stores and pings once.
// A failed ping is returned so the caller can fall back to memory stores.
func NewRedisClient(ctx context.Context, cfg appconfig.RedisConfig, logger *zap.Logger) (*redis.Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Error("[database][redis] ping failed", zap.String("addr", cfg.Addr), zap.Error(err))
		_ = client.Close()
		return nil, err
	}
	logger.Info("[database][redis] client ready", zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))
	return client, nil
}
