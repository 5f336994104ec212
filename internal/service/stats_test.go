package service

import (
	"Socialboard/internal/api/dto"
	"Socialboard/internal/model"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComputeStatsEmpty(t *testing.T) {
	got := ComputeStats(nil, nil)

	want := dto.DashboardStatsDTO{TotalFollowers: DefaultTotalFollowers}
	if diff := cmp.Diff(want, got.Dashboard); diff != "" {
		t.Fatalf("dashboard mismatch (-want +got):\n%s", diff)
	}
	if len(got.Platforms) != 0 || len(got.Engagement) != 0 {
		t.Fatalf("expected empty rollups, got %d platforms %d engagement", len(got.Platforms), len(got.Engagement))
	}
}

func TestComputeStatsTotals(t *testing.T) {
	posts := []model.Post{
		{ID: "1", Date: "2024-01-01", Platform: model.PlatformInstagram, Reach: 120, EngagementRate: 4.2},
		{ID: "2", Date: "2024-01-02", Platform: model.PlatformTwitter, Reach: 80, EngagementRate: 3.1},
		{ID: "3", Date: "2024-01-03", Platform: model.PlatformFacebook, Reach: 1000, EngagementRate: 6},
	}

	got := ComputeStats(posts, nil).Dashboard
	if got.TotalPosts != len(posts) {
		t.Errorf("totalPosts = %d, want %d", got.TotalPosts, len(posts))
	}
	if got.TotalReach != 1200 {
		t.Errorf("totalReach = %d, want 1200", got.TotalReach)
	}
	if got.EngagementRate != 4.4 {
		t.Errorf("engagementRate = %v, want 4.4", got.EngagementRate)
	}
	if got.TotalFollowers != DefaultTotalFollowers {
		t.Errorf("totalFollowers = %d, want fallback %d", got.TotalFollowers, DefaultTotalFollowers)
	}
	if got.PostsThisMonth != 2 {
		t.Errorf("postsThisMonth = %d, want 2", got.PostsThisMonth)
	}
}

func TestComputeStatsFollowers(t *testing.T) {
	followers := []model.FollowerRecord{
		{Date: "2024-01-01", Platform: model.PlatformInstagram, Followers: 1000, NetGrowth: 10},
		{Date: "2024-01-02", Platform: model.PlatformInstagram, Followers: 1001, NetGrowth: 30},
	}

	got := ComputeStats(nil, followers).Dashboard
	// round(1000.5) 按 .5 向上取整
	if got.TotalFollowers != 1001 {
		t.Errorf("totalFollowers = %d, want 1001", got.TotalFollowers)
	}
	if got.GrowthRate != 2 {
		t.Errorf("growthRate = %v, want 2", got.GrowthRate)
	}
	if got.FollowerGrowthTrend != 200 {
		t.Errorf("followerGrowthTrend = %v, want 200", got.FollowerGrowthTrend)
	}
}

func TestComputeStatsZeroFollowersFallsBack(t *testing.T) {
	followers := []model.FollowerRecord{{Date: "2024-01-01", Platform: model.PlatformTwitter}}

	got := ComputeStats(nil, followers).Dashboard
	if got.TotalFollowers != DefaultTotalFollowers {
		t.Errorf("totalFollowers = %d, want %d", got.TotalFollowers, DefaultTotalFollowers)
	}
}

func TestComputeStatsTrendSign(t *testing.T) {
	build := func(recent float64) []model.Post {
		return []model.Post{
			{Date: "2024-03-04", Platform: model.PlatformInstagram, EngagementRate: recent, Reach: int(recent * 10)},
			{Date: "2024-03-03", Platform: model.PlatformInstagram, EngagementRate: recent, Reach: int(recent * 10)},
			{Date: "2024-03-02", Platform: model.PlatformInstagram, EngagementRate: 5, Reach: 50},
			{Date: "2024-03-01", Platform: model.PlatformInstagram, EngagementRate: 5, Reach: 50},
		}
	}

	tests := []struct {
		name   string
		recent float64
		sign   int
	}{
		{"increase", 8, 1},
		{"decrease", 2, -1},
		{"flat", 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ComputeStats(build(tt.recent), nil).Dashboard
			for name, v := range map[string]float64{"engagement": d.EngagementTrend, "reach": d.ReachTrend} {
				if sign(v) != tt.sign {
					t.Errorf("%s trend = %v, want sign %d", name, v, tt.sign)
				}
			}
		})
	}
}

func TestComputeStatsOddSplit(t *testing.T) {
	posts := make([]model.Post, 5)
	for i := range posts {
		posts[i] = model.Post{Date: fmt.Sprintf("2024-02-%02d", i+1), Platform: model.PlatformFacebook, Reach: 10}
	}

	got := ComputeStats(posts, nil).Dashboard
	if got.PostsThisMonth != 3 {
		t.Fatalf("postsThisMonth = %d, want 3", got.PostsThisMonth)
	}
	// 近期 30 对比早期 20
	if got.ReachTrend != 50 {
		t.Fatalf("reachTrend = %v, want 50", got.ReachTrend)
	}
}

func TestComputeStatsUnsortedInput(t *testing.T) {
	posts := []model.Post{
		{Date: "2024-01-01", Platform: model.PlatformTwitter, Reach: 100},
		{Date: "2024-01-04", Platform: model.PlatformTwitter, Reach: 300},
		{Date: "2024-01-02", Platform: model.PlatformTwitter, Reach: 100},
		{Date: "2024-01-03", Platform: model.PlatformTwitter, Reach: 300},
	}

	got := ComputeStats(posts, nil).Dashboard
	if got.ReachTrend != 200 {
		t.Fatalf("reachTrend = %v, want 200", got.ReachTrend)
	}
}

func TestComputeStatsPlatformRollup(t *testing.T) {
	posts := []model.Post{
		{Platform: model.PlatformInstagram, Reach: 100, EngagementRate: 5},
		{Platform: model.PlatformInstagram, Reach: 200, EngagementRate: 7},
	}
	followers := []model.FollowerRecord{
		{Platform: model.PlatformInstagram, Followers: 1000},
		{Platform: model.PlatformTwitter, Followers: 50},
	}

	got := ComputeStats(posts, followers).Platforms
	want := []dto.PlatformStatsDTO{{
		Platform:       model.PlatformInstagram,
		TotalFollowers: 1000,
		TotalPosts:     2,
		AvgEngagement:  6,
		TotalReach:     300,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("platforms mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeStatsFollowerLastWriteWins(t *testing.T) {
	posts := []model.Post{{Platform: model.PlatformFacebook}}
	followers := []model.FollowerRecord{
		{Date: "2024-01-02", Platform: model.PlatformFacebook, Followers: 900},
		{Date: "2024-01-01", Platform: model.PlatformFacebook, Followers: 700},
	}

	got := ComputeStats(posts, followers).Platforms
	if len(got) != 1 || got[0].TotalFollowers != 700 {
		t.Fatalf("platforms = %+v, want facebook with 700 followers", got)
	}
}

func TestComputeStatsEngagementSeries(t *testing.T) {
	posts := []model.Post{
		{Date: "2024-01-02", Platform: model.PlatformFacebook, Likes: 1, Comments: 1, Shares: 1},
		{Date: "2024-01-01", Platform: model.PlatformInstagram, Likes: 2},
	}

	got := ComputeStats(posts, nil).Engagement
	want := []dto.EngagementMetricDTO{
		{Date: "2024-01-01", Instagram: 2},
		{Date: "2024-01-02", Facebook: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("engagement mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeStatsDoesNotMutateInput(t *testing.T) {
	posts := []model.Post{
		{ID: "a", Date: "2024-01-01"},
		{ID: "b", Date: "2024-01-03"},
		{ID: "c", Date: "2024-01-02"},
	}
	before := append([]model.Post(nil), posts...)

	ComputeStats(posts, nil)
	if diff := cmp.Diff(before, posts); diff != "" {
		t.Fatalf("input reordered (-before +after):\n%s", diff)
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.5, 1},
		{1.5, 2},
		{2.5, 3},
		{-0.5, 0},
		{-1.5, -1},
		{2.4, 2},
	}
	for _, tt := range tests {
		if got := roundHalfUp(tt.in); got != tt.want {
			t.Errorf("roundHalfUp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
