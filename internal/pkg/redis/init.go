package redis

import (
	"Socialboard/internal/api/config"
	"Socialboard/internal/pkg/logger"
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
)

// Rdb 仅在配置了 redis.addr 时初始化
var Rdb *redis.Client

// InitRedis 建立连接并 Ping，失败时不保留客户端
func InitRedis(cfg config.RedisConfig) error {
	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		PoolSize:    cfg.PoolSize,
		DialTimeout: 3 * time.Second,

		MaintNotificationsConfig: &maintnotifications.Config{
			Mode: maintnotifications.ModeDisabled,
		},
	})
	rdb.AddHook(logger.NewRedisLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}

	Rdb = rdb
	return nil
}

func Close() error {
	if Rdb == nil {
		return nil
	}
	return Rdb.Close()
}
