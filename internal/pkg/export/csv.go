package export

import (
	"Socialboard/internal/model"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/copier"
)

// Table 可导出的数据表
type Table string

const (
	TablePosts     Table = "posts"
	TableFollowers Table = "followers"
)

// ParseTable 解析表名
func ParseTable(s string) (Table, error) {
	switch Table(s) {
	case TablePosts, TableFollowers:
		return Table(s), nil
	}
	return "", fmt.Errorf("unknown table %q, want posts or followers", s)
}

// FileName 导出文件名，按导出当天命名
func FileName(table Table, now time.Time) string {
	prefix := "follower-growth"
	if table == TablePosts {
		prefix = "engagement-metrics"
	}
	return prefix + "-" + now.Format(time.DateOnly) + ".csv"
}

type postRow struct {
	Date           string
	Platform       string
	Content        string
	Likes          int
	Comments       int
	Shares         int
	Reach          int
	EngagementRate float64
}

var postHeaders = []string{"Date", "Platform", "Content", "Likes", "Comments", "Shares", "Reach", "Engagement Rate (%)"}

type followerRow struct {
	Date         string
	Platform     string
	Followers    int
	NewFollowers int
	Unfollows    int
	NetGrowth    int
}

var followerHeaders = []string{"Date", "Platform", "Total Followers", "New Followers", "Unfollows", "Net Growth"}

// PostsCSV 帖子表导出，空数据返回空串
func PostsCSV(posts []model.Post) (string, error) {
	if len(posts) == 0 {
		return "", nil
	}
	var rows []postRow
	if err := copier.Copy(&rows, &posts); err != nil {
		return "", err
	}

	records := make([][]any, 0, len(rows))
	for _, r := range rows {
		records = append(records, []any{
			normalizeDate(r.Date), r.Platform, r.Content,
			r.Likes, r.Comments, r.Shares, r.Reach, r.EngagementRate,
		})
	}
	return encode(postHeaders, records), nil
}

// FollowersCSV 粉丝表导出，空数据返回空串
func FollowersCSV(followers []model.FollowerRecord) (string, error) {
	if len(followers) == 0 {
		return "", nil
	}
	var rows []followerRow
	if err := copier.Copy(&rows, &followers); err != nil {
		return "", err
	}

	records := make([][]any, 0, len(rows))
	for _, r := range rows {
		records = append(records, []any{
			normalizeDate(r.Date), r.Platform,
			r.Followers, r.NewFollowers, r.Unfollows, r.NetGrowth,
		})
	}
	return encode(followerHeaders, records), nil
}

// encode 仅当字符串含逗号或双引号时加引号，行以 \n 分隔
func encode(headers []string, records [][]any) string {
	var b strings.Builder
	b.WriteString(strings.Join(headers, ","))
	for _, rec := range records {
		b.WriteByte('\n')
		for i, v := range rec {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(cell(v))
		}
	}
	return b.String()
}

func cell(v any) string {
	switch t := v.(type) {
	case string:
		if strings.ContainsAny(t, `,"`) {
			return `"` + strings.ReplaceAll(t, `"`, `""`) + `"`
		}
		return t
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func normalizeDate(s string) string {
	if t, ok := model.ParseDate(s); ok {
		return t.Format(time.DateOnly)
	}
	return s
}
