package logger

import (
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// SetupResty 为上游 HTTP 客户端挂载错误与慢请求日志
func SetupResty(client *resty.Client) {
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		req := resp.Request
		fields := []any{
			log.String("method", req.Method),
			log.String("url", req.URL),
			log.Int("status", resp.StatusCode()),
			log.Duration("latency", resp.Time()),
		}
		switch {
		case resp.IsError():
			log.WarnContext(req.Context(), "Upstream Error Status", fields...)
		case resp.Time() > time.Second:
			log.WarnContext(req.Context(), "Upstream Slow", fields...)
		}
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		log.ErrorContext(req.Context(), "Upstream Request Failed",
			log.String("method", req.Method),
			log.String("url", req.URL),
			log.Any("err", err),
		)
	})
}
