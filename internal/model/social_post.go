package model

// Post 单条帖子的互动数据，ID 由上游分配
type Post struct {
	ID             ID       `json:"id"`
	Date           string   `json:"date"`
	Platform       Platform `json:"platform"`
	Likes          int      `json:"likes"`
	Comments       int      `json:"comments"`
	Shares         int      `json:"shares"`
	Reach          int      `json:"reach"`
	Content        string   `json:"content"`
	EngagementRate float64  `json:"engagementRate"`
}

// Engagement 点赞 + 评论 + 分享
func (p *Post) Engagement() int {
	return p.Likes + p.Comments + p.Shares
}
