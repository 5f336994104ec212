package redis

import (
	"context"
	"time"
)

// Mark 写入一个仅用于存在性判断的标记键
func Mark(ctx context.Context, key string, ttl time.Duration) error {
	return Rdb.Set(ctx, key, 1, ttl).Err()
}

// Marked 标记键是否存在
func Marked(ctx context.Context, key string) (bool, error) {
	n, err := Rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
