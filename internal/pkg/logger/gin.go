package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

// UserIDKey gin.Context 中已鉴权用户的键
const UserIDKey = "user_id"

// accessLine 访问日志一行，字段与 slog JSON 输出保持一致
type accessLine struct {
	Time    string `json:"time"`
	Level   string `json:"level"`
	Msg     string `json:"msg"`
	TraceID string `json:"trace_id,omitempty"`
	UserID  string `json:"user_id,omitempty"`
	Method  string `json:"method"`
	Path    string `json:"path"`
	Status  int    `json:"status"`
	Latency string `json:"latency"`
	Error   string `json:"error,omitempty"`
}

func formatAccess(p gin.LogFormatterParams) string {
	line := accessLine{
		Time:    p.TimeStamp.Format(time.RFC3339),
		Level:   "INFO",
		Msg:     "GIN_ACCESS",
		Method:  p.Method,
		Path:    p.Path,
		Status:  p.StatusCode,
		Latency: p.Latency.String(),
		Error:   p.ErrorMessage,
	}
	if p.StatusCode >= 500 {
		line.Level = "ERROR"
	}
	if id, ok := p.Keys[TraceIDKey].(string); ok {
		line.TraceID = id
	} else if p.Request != nil {
		line.TraceID = TraceID(p.Request.Context())
	}
	if id, ok := p.Keys[UserIDKey].(string); ok {
		line.UserID = id
	}

	b, err := json.Marshal(line)
	if err != nil {
		return ""
	}
	return string(b) + "\n"
}

// SetupGin 访问日志写入 LogWriter，健康检查不记录
func SetupGin(r *gin.Engine, skipPaths ...string) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Output:    LogWriter,
		Formatter: formatAccess,
		SkipPaths: skipPaths,
	}))
	r.Use(gin.Recovery())
}
