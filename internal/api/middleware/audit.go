package middleware

import (
	"Socialboard/internal/pkg/logger"
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// maxAuditBody 单个 body 最多记录的字节数
const maxAuditBody = 4096

// cappedWriter 透传响应，同时截留前 maxAuditBody 字节供审计
type cappedWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *cappedWriter) Write(b []byte) (int, error) {
	if remain := maxAuditBody - w.buf.Len(); remain > 0 {
		w.buf.Write(b[:min(len(b), remain)])
	}
	return w.ResponseWriter.Write(b)
}

func (w *cappedWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// AuditMiddleware 记录代理请求的入参与返回。
// 请求体读出后原样回填，handler 需要把同一份字节转发给上游
func AuditMiddleware(skipPrefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range skipPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}

		ctx := c.Request.Context()
		var reqBody []byte
		if c.Request.Body != nil {
			reqBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(reqBody))
		}

		log.InfoContext(ctx, "Recv Request",
			"method", c.Request.Method,
			"path", path,
			"id", c.Query("id"),
			"req_body", string(reqBody[:min(len(reqBody), maxAuditBody)]),
		)

		w := &cappedWriter{ResponseWriter: c.Writer}
		c.Writer = w
		start := time.Now()

		c.Next()

		log.InfoContext(ctx, "Send Response",
			"status", c.Writer.Status(),
			"user_id", c.GetString(logger.UserIDKey),
			"latency", time.Since(start),
			"res_body", w.buf.String(),
		)
	}
}
