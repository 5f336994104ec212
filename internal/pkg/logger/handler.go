package logger

import (
	"context"
	log "log/slog"
)

// fanout 同一条记录交给多个下游 Handler
type fanout []log.Handler

func (f fanout) Enabled(ctx context.Context, level log.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r log.Record) error {
	var firstErr error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f fanout) WithAttrs(attrs []log.Attr) log.Handler {
	res := make(fanout, len(f))
	for i, h := range f {
		res[i] = h.WithAttrs(attrs)
	}
	return res
}

func (f fanout) WithGroup(name string) log.Handler {
	res := make(fanout, len(f))
	for i, h := range f {
		res[i] = h.WithGroup(name)
	}
	return res
}

// shipFilter 决定哪些记录上报 logstash：请求链路（带 trace_id）全部上报，
// 无 trace 的后台日志只上报 minLevel 及以上
type shipFilter struct {
	next     log.Handler
	minLevel log.Level
}

func (s *shipFilter) Enabled(ctx context.Context, level log.Level) bool {
	return s.next.Enabled(ctx, level)
}

func (s *shipFilter) Handle(ctx context.Context, r log.Record) error {
	if r.Level < s.minLevel && !hasTrace(r) {
		return nil
	}
	return s.next.Handle(ctx, r)
}

func (s *shipFilter) WithAttrs(attrs []log.Attr) log.Handler {
	return &shipFilter{next: s.next.WithAttrs(attrs), minLevel: s.minLevel}
}

func (s *shipFilter) WithGroup(name string) log.Handler {
	return &shipFilter{next: s.next.WithGroup(name), minLevel: s.minLevel}
}

func hasTrace(r log.Record) bool {
	found := false
	r.Attrs(func(a log.Attr) bool {
		if a.Key == TraceIDKey && a.Value.String() != "" {
			found = true
			return false
		}
		return true
	})
	return found
}
