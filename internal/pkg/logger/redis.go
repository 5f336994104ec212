package logger

import (
	"context"
	"errors"
	log "log/slog"
	"net"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// slowRedis 超过该耗时的命令记为慢命令
const slowRedis = 100 * time.Millisecond

// RedisLoggerHook 记录 Redis 连接失败、命令错误与慢命令。
// 键中含 token 签名，日志只保留键前缀
type RedisLoggerHook struct{}

func NewRedisLogger() *RedisLoggerHook {
	return &RedisLoggerHook{}
}

func (s *RedisLoggerHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		if err != nil {
			log.ErrorContext(ctx, "Redis Dial Error", "addr", addr, "err", err)
		}
		return conn, err
	}
}

func (s *RedisLoggerHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		elapsed := time.Since(start)

		if err != nil && !errors.Is(err, redis.Nil) {
			log.ErrorContext(ctx, "Redis Error", "command", cmd.Name(), "key", maskKey(cmd), "err", err)
		} else if elapsed > slowRedis {
			log.WarnContext(ctx, "Redis Slow", "command", cmd.Name(), "key", maskKey(cmd), "latency", elapsed)
		}
		return err
	}
}

func (s *RedisLoggerHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

// maskKey 只保留最后一个 ':' 之前的部分
func maskKey(cmd redis.Cmder) string {
	args := cmd.Args()
	if len(args) < 2 {
		return ""
	}
	key, ok := args[1].(string)
	if !ok {
		return ""
	}
	if i := strings.LastIndex(key, ":"); i >= 0 {
		return key[:i+1] + "***"
	}
	return "***"
}
