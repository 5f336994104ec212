package client

import "Socialboard/internal/model"

// FilterPosts 按平台过滤，platform 为空时返回全部
func FilterPosts(posts []model.Post, platform model.Platform) []model.Post {
	if platform == "" {
		return posts
	}
	res := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if p.Platform == platform {
			res = append(res, p)
		}
	}
	return res
}

// FilterFollowers 按平台过滤，platform 为空时返回全部
func FilterFollowers(followers []model.FollowerRecord, platform model.Platform) []model.FollowerRecord {
	if platform == "" {
		return followers
	}
	res := make([]model.FollowerRecord, 0, len(followers))
	for _, f := range followers {
		if f.Platform == platform {
			res = append(res, f)
		}
	}
	return res
}
