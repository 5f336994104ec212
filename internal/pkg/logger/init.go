package logger

import (
	"Socialboard/internal/api/config"
	"io"
	log "log/slog"
	"net"
	"os"
	"strings"
)

var LogWriter io.Writer = os.Stdout

// ParseLevel 将配置中的级别字符串转为 slog.Level，无法识别时为 Info
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.LevelDebug
	case "warn", "warning":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}

func InitLogger(cfg config.LogConfig) {
	opts := &log.HandlerOptions{Level: ParseLevel(cfg.Level)}
	hStdout := log.NewJSONHandler(os.Stdout, opts)

	var finalHandler log.Handler = hStdout
	LogWriter = os.Stdout

	if cfg.LogstashAddress != "" {
		conn, err := net.Dial("tcp", cfg.LogstashAddress)
		if err == nil {
			hRemote := log.NewJSONHandler(conn, opts).
				WithAttrs([]log.Attr{log.String("target_index", cfg.Index)})

			finalHandler = fanout{hStdout, &shipFilter{next: hRemote, minLevel: log.LevelWarn}}
			LogWriter = io.MultiWriter(os.Stdout, conn)
		} else {
			log.Warn("Failed to connect to Logstash, logging to stdout only", "err", err)
		}
	}

	log.SetDefault(log.New(&ContextHandler{finalHandler}))
}
