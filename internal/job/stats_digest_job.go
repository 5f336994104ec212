package job

import (
	"Socialboard/internal/pkg/logger"
	"Socialboard/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// StatsDigestJob 定时计算一次统计并写入日志，便于在日志平台观察趋势
type StatsDigestJob struct {
	statsSvc service.StatsService
	timeout  time.Duration
}

func NewStatsDigestJob(statsSvc service.StatsService) *StatsDigestJob {
	return &StatsDigestJob{
		statsSvc: statsSvc,
		timeout:  30 * time.Second,
	}
}

func (s *StatsDigestJob) Run() {
	traceID := "job-stats-" + uuid.NewString()
	ctx, cancel := context.WithTimeout(logger.WithTraceID(context.Background(), traceID), s.timeout)
	defer cancel()

	stats, err := s.statsSvc.GetStats(ctx)
	if err != nil {
		log.ErrorContext(ctx, "stats digest error", "err", err)
		return
	}

	d := stats.Dashboard
	log.InfoContext(ctx, "stats digest",
		"total_followers", d.TotalFollowers,
		"total_posts", d.TotalPosts,
		"total_reach", d.TotalReach,
		"engagement_rate", d.EngagementRate,
		"growth_rate", d.GrowthRate,
		"follower_growth_trend", d.FollowerGrowthTrend,
		"engagement_trend", d.EngagementTrend,
		"reach_trend", d.ReachTrend,
		"platforms", len(stats.Platforms),
	)
}
