package service

import (
	"Socialboard/internal/api/dto"
	"Socialboard/internal/model"
	"Socialboard/internal/pkg/consts"
	"Socialboard/internal/pkg/upstream"
	"context"
	"errors"
	log "log/slog"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

type StatsService interface {
	// GetStats 拉取全量帖子与粉丝记录并即时计算统计，不做缓存
	GetStats(ctx context.Context) (*dto.StatsDTO, error)
}

type statsServiceImpl struct {
	up Upstream
}

func NewStatsService(up Upstream) StatsService {
	return &statsServiceImpl{up: up}
}

func (s *statsServiceImpl) GetStats(ctx context.Context) (*dto.StatsDTO, error) {
	if !s.up.Configured() {
		return nil, ErrUpstreamNotConfigured
	}

	var (
		posts     []model.Post
		followers []model.FollowerRecord
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.fetch(gCtx, consts.ResourcePosts, &posts)
	})
	g.Go(func() error {
		return s.fetch(gCtx, consts.ResourceFollowers, &followers)
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, upstream.ErrNotConfigured) {
			return nil, ErrUpstreamNotConfigured
		}
		log.ErrorContext(ctx, "fetch data for stats error", "err", err)
		return nil, ErrStatsUnavailable
	}

	stats := ComputeStats(posts, followers)
	return &stats, nil
}

func (s *statsServiceImpl) fetch(ctx context.Context, collection string, out any) error {
	raw, err := s.up.List(ctx, collection)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
