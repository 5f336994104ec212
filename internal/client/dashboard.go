package client

import (
	"Socialboard/internal/api/dto"
	"Socialboard/internal/model"
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/sync/errgroup"
)

// State dashboard 的一次快照
type State struct {
	Posts      []model.Post
	Followers  []model.FollowerRecord
	Dashboard  *dto.DashboardStatsDTO
	Platforms  []dto.PlatformStatsDTO
	Engagement []dto.EngagementMetricDTO
	Loading    bool
	Err        error
}

// Dashboard 并行拉取帖子、粉丝与统计并聚合为 State
// 新的加载会取消尚未完成的旧加载，旧结果不会覆盖新状态
type Dashboard struct {
	fetcher *Fetcher

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
	seq    uint64
}

func NewDashboard(fetcher *Fetcher) *Dashboard {
	return &Dashboard{
		fetcher: fetcher,
		state:   State{Loading: true},
	}
}

// State 返回当前快照
func (d *Dashboard) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// RefreshError 写操作已被上游接受，但随后的刷新失败
type RefreshError struct {
	Op  string
	Err error
}

func (e *RefreshError) Error() string {
	return fmt.Sprintf("%s succeeded but refresh failed: %v", e.Op, e.Err)
}

func (e *RefreshError) Unwrap() error { return e.Err }

// Load 读取三类数据，任一失败则整体失败；被取消时不返回错误，超时照常报错
func (d *Dashboard) Load(ctx context.Context) error {
	return d.load(ctx, false)
}

// Refetch 清空整个缓存后重新加载
func (d *Dashboard) Refetch(ctx context.Context) error {
	d.fetcher.Cache().Clear()
	return d.load(ctx, true)
}

// Close 取消进行中的加载
func (d *Dashboard) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

func (d *Dashboard) load(ctx context.Context, refetch bool) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
	}
	d.cancel = cancel
	d.seq++
	seq := d.seq
	d.state.Loading = !refetch && len(d.state.Posts) == 0
	d.state.Err = nil
	d.mu.Unlock()

	var (
		posts     []model.Post
		followers []model.FollowerRecord
		stats     dto.StatsDTO
	)

	g, gCtx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		return d.fetcher.Get(gCtx, PostsPath, &posts)
	})
	g.Go(func() error {
		return d.fetcher.Get(gCtx, FollowersPath, &followers)
	})
	g.Go(func() error {
		return d.fetcher.Get(gCtx, StatsPath, &stats)
	})
	err := g.Wait()

	d.mu.Lock()
	defer d.mu.Unlock()

	if seq != d.seq {
		return nil
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(runCtx.Err(), context.Canceled) {
			return nil
		}
		d.state.Loading = false
		d.state.Err = err
		return err
	}

	d.state = State{
		Posts:      posts,
		Followers:  followers,
		Dashboard:  &stats.Dashboard,
		Platforms:  stats.Platforms,
		Engagement: stats.Engagement,
	}
	return nil
}

// CreatePost 新建帖子后刷新；刷新失败时仍返回已创建的帖子
func (d *Dashboard) CreatePost(ctx context.Context, in dto.CreatePostDTO) (*model.Post, error) {
	var post model.Post
	if err := d.fetcher.Send(ctx, http.MethodPost, PostsPath, "", in, &post); err != nil {
		return nil, err
	}
	return &post, d.refresh(ctx, "create post")
}

// UpdatePost 更新帖子后刷新
func (d *Dashboard) UpdatePost(ctx context.Context, id string, in dto.UpdatePostDTO) (*model.Post, error) {
	var post model.Post
	if err := d.fetcher.Send(ctx, http.MethodPut, PostsPath, id, in, &post); err != nil {
		return nil, err
	}
	return &post, d.refresh(ctx, "update post")
}

// DeletePost 删除帖子后刷新
func (d *Dashboard) DeletePost(ctx context.Context, id string) error {
	if err := d.fetcher.Send(ctx, http.MethodDelete, PostsPath, id, nil, nil); err != nil {
		return err
	}
	return d.refresh(ctx, "delete post")
}

// CreateFollower netGrowth 在客户端按 newFollowers - unfollows 计算
func (d *Dashboard) CreateFollower(ctx context.Context, in dto.CreateFollowerDTO) (*model.FollowerRecord, error) {
	in.NetGrowth = deref(in.NewFollowers) - deref(in.Unfollows)

	var record model.FollowerRecord
	if err := d.fetcher.Send(ctx, http.MethodPost, FollowersPath, "", in, &record); err != nil {
		return nil, err
	}
	return &record, d.refresh(ctx, "create follower")
}

// UpdateFollower 同时提供 newFollowers 与 unfollows 时重新计算 netGrowth
func (d *Dashboard) UpdateFollower(ctx context.Context, id string, in dto.UpdateFollowerDTO) (*model.FollowerRecord, error) {
	if in.NewFollowers != nil && in.Unfollows != nil {
		net := *in.NewFollowers - *in.Unfollows
		in.NetGrowth = &net
	}

	var record model.FollowerRecord
	if err := d.fetcher.Send(ctx, http.MethodPut, FollowersPath, id, in, &record); err != nil {
		return nil, err
	}
	return &record, d.refresh(ctx, "update follower")
}

func (d *Dashboard) DeleteFollower(ctx context.Context, id string) error {
	if err := d.fetcher.Send(ctx, http.MethodDelete, FollowersPath, id, nil, nil); err != nil {
		return err
	}
	return d.refresh(ctx, "delete follower")
}

// refresh 写操作之后重新加载，失败时包装为 RefreshError
func (d *Dashboard) refresh(ctx context.Context, op string) error {
	if err := d.Refetch(ctx); err != nil {
		return &RefreshError{Op: op, Err: err}
	}
	return nil
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
