package service

import (
	"Socialboard/internal/api/dto"
	"Socialboard/internal/model"
	"math"
	"slices"
	"strings"
	"time"
)

// DefaultTotalFollowers 无粉丝数据时 totalFollowers 的占位值
const DefaultTotalFollowers = 24563

// growthDamping growthRate 的缩放系数
const growthDamping = 0.1

// ComputeStats 由全量帖子与粉丝记录推导仪表盘指标，纯函数，空输入合法
func ComputeStats(posts []model.Post, followers []model.FollowerRecord) dto.StatsDTO {
	sortedFollowers := sortByDateDesc(followers, func(f model.FollowerRecord) string { return f.Date })
	recentFollowers, olderFollowers := splitHalf(sortedFollowers)

	sortedPosts := sortByDateDesc(posts, func(p model.Post) string { return p.Date })
	recentPosts, olderPosts := splitHalf(sortedPosts)

	netGrowth := func(f model.FollowerRecord) float64 { return float64(f.NetGrowth) }
	engagementRate := func(p model.Post) float64 { return p.EngagementRate }
	reach := func(p model.Post) float64 { return float64(p.Reach) }

	dashboard := dto.DashboardStatsDTO{
		TotalFollowers:      totalFollowers(followers),
		EngagementRate:      round1(meanOf(posts, engagementRate)),
		TotalPosts:          len(posts),
		TotalReach:          int(sumOf(posts, reach)),
		GrowthRate:          round1(meanOf(followers, netGrowth) * growthDamping),
		FollowerGrowthTrend: trend(meanOf(recentFollowers, netGrowth), meanOf(olderFollowers, netGrowth)),
		EngagementTrend:     trend(meanOf(recentPosts, engagementRate), meanOf(olderPosts, engagementRate)),
		ReachTrend:          trend(sumOf(recentPosts, reach), sumOf(olderPosts, reach)),
		PostsThisMonth:      len(recentPosts),
	}

	return dto.StatsDTO{
		Dashboard:  dashboard,
		Platforms:  platformRollup(posts, followers),
		Engagement: engagementSeries(posts),
	}
}

func totalFollowers(followers []model.FollowerRecord) int {
	if len(followers) == 0 {
		return DefaultTotalFollowers
	}
	avg := roundHalfUp(meanOf(followers, func(f model.FollowerRecord) float64 { return float64(f.Followers) }))
	if avg == 0 {
		return DefaultTotalFollowers
	}
	return int(avg)
}

type platformAcc struct {
	platform        model.Platform
	totalPosts      int
	totalEngagement float64
	totalReach      int
	totalFollowers  int
}

// platformRollup 以帖子出现的平台为准；粉丝数取该平台最后一条记录（后写覆盖）
func platformRollup(posts []model.Post, followers []model.FollowerRecord) []dto.PlatformStatsDTO {
	accs := make(map[model.Platform]*platformAcc)
	order := make([]model.Platform, 0, len(model.Platforms))

	for _, p := range posts {
		acc, ok := accs[p.Platform]
		if !ok {
			acc = &platformAcc{platform: p.Platform}
			accs[p.Platform] = acc
			order = append(order, p.Platform)
		}
		acc.totalPosts++
		acc.totalEngagement += p.EngagementRate
		acc.totalReach += p.Reach
	}

	for _, f := range followers {
		if acc, ok := accs[f.Platform]; ok {
			acc.totalFollowers = f.Followers
		}
	}

	res := make([]dto.PlatformStatsDTO, 0, len(order))
	for _, platform := range order {
		acc := accs[platform]
		avg := 0.0
		if acc.totalPosts > 0 {
			avg = acc.totalEngagement / float64(acc.totalPosts)
		}
		res = append(res, dto.PlatformStatsDTO{
			Platform:       acc.platform,
			TotalFollowers: acc.totalFollowers,
			TotalPosts:     acc.totalPosts,
			AvgEngagement:  avg,
			TotalReach:     acc.totalReach,
		})
	}
	return res
}

// engagementSeries 按日期聚合各平台互动量，日期字符串升序
func engagementSeries(posts []model.Post) []dto.EngagementMetricDTO {
	byDate := make(map[string]*dto.EngagementMetricDTO)
	for i := range posts {
		p := &posts[i]
		m, ok := byDate[p.Date]
		if !ok {
			m = &dto.EngagementMetricDTO{Date: p.Date}
			byDate[p.Date] = m
		}
		m.Add(p.Platform, p.Engagement())
	}

	res := make([]dto.EngagementMetricDTO, 0, len(byDate))
	for _, m := range byDate {
		res = append(res, *m)
	}
	slices.SortFunc(res, func(a, b dto.EngagementMetricDTO) int {
		return strings.Compare(a.Date, b.Date)
	})
	return res
}

// sortByDateDesc 返回按日期降序的副本；无法解析的日期视为最早
func sortByDateDesc[T any](items []T, date func(T) string) []T {
	type keyed struct {
		item T
		at   time.Time
	}
	tmp := make([]keyed, len(items))
	for i, item := range items {
		at, _ := model.ParseDate(date(item))
		tmp[i] = keyed{item: item, at: at}
	}
	slices.SortStableFunc(tmp, func(a, b keyed) int {
		return b.at.Compare(a.at)
	})

	res := make([]T, len(tmp))
	for i, k := range tmp {
		res[i] = k.item
	}
	return res
}

// splitHalf 前 ceil(n/2) 个为近期，其余为早期
func splitHalf[T any](items []T) (recent, older []T) {
	k := (len(items) + 1) / 2
	return items[:k], items[k:]
}

func sumOf[T any](items []T, field func(T) float64) float64 {
	total := 0.0
	for _, item := range items {
		total += field(item)
	}
	return total
}

func meanOf[T any](items []T, field func(T) float64) float64 {
	if len(items) == 0 {
		return 0
	}
	return sumOf(items, field) / float64(len(items))
}

// trend 近期相对早期的变化百分比，早期 <= 0 时为 0
func trend(recent, older float64) float64 {
	if older <= 0 {
		return 0
	}
	return round1((recent - older) / older * 100)
}

// roundHalfUp 四舍五入，.5 向正无穷取整
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func round1(x float64) float64 {
	return roundHalfUp(x*10) / 10
}
