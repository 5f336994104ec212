package model

// FollowerRecord 某平台某日的粉丝快照
type FollowerRecord struct {
	ID           ID       `json:"id"`
	Date         string   `json:"date"`
	Platform     Platform `json:"platform"`
	Followers    int      `json:"followers"`
	NewFollowers int      `json:"newFollowers"`
	Unfollows    int      `json:"unfollows"`
	NetGrowth    int      `json:"netGrowth"`
}
