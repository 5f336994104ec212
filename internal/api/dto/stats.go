package dto

import "Socialboard/internal/model"

// DashboardStatsDTO 仪表盘汇总指标
type DashboardStatsDTO struct {
	TotalFollowers      int     `json:"totalFollowers"`
	EngagementRate      float64 `json:"engagementRate"`
	TotalPosts          int     `json:"totalPosts"`
	TotalReach          int     `json:"totalReach"`
	GrowthRate          float64 `json:"growthRate"`
	FollowerGrowthTrend float64 `json:"followerGrowthTrend"`
	EngagementTrend     float64 `json:"engagementTrend"`
	ReachTrend          float64 `json:"reachTrend"`
	PostsThisMonth      int     `json:"postsThisMonth"`
}

// PlatformStatsDTO 单平台汇总
type PlatformStatsDTO struct {
	Platform       model.Platform `json:"platform"`
	TotalFollowers int            `json:"totalFollowers"`
	TotalPosts     int            `json:"totalPosts"`
	AvgEngagement  float64        `json:"avgEngagement"`
	TotalReach     int            `json:"totalReach"`
}

// EngagementMetricDTO 某日各平台互动量
type EngagementMetricDTO struct {
	Date      string `json:"date"`
	Instagram int    `json:"instagram"`
	Facebook  int    `json:"facebook"`
	Twitter   int    `json:"twitter"`
}

// Add 按平台累加互动量，未知平台忽略
func (m *EngagementMetricDTO) Add(p model.Platform, v int) {
	switch p {
	case model.PlatformInstagram:
		m.Instagram += v
	case model.PlatformFacebook:
		m.Facebook += v
	case model.PlatformTwitter:
		m.Twitter += v
	}
}

// StatsDTO /stats 返回体
type StatsDTO struct {
	Dashboard  DashboardStatsDTO     `json:"dashboard"`
	Platforms  []PlatformStatsDTO    `json:"platforms"`
	Engagement []EngagementMetricDTO `json:"engagement"`
}
