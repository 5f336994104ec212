package dto

import "Socialboard/internal/model"

// CreatePostDTO 新建帖子（不含 id）
type CreatePostDTO struct {
	Date           string         `json:"date" validate:"required,datetime=2006-01-02"`
	Platform       model.Platform `json:"platform" validate:"required,oneof=instagram facebook twitter"`
	Likes          *int           `json:"likes" validate:"required,min=0"`
	Comments       *int           `json:"comments" validate:"required,min=0"`
	Shares         *int           `json:"shares" validate:"required,min=0"`
	Reach          *int           `json:"reach" validate:"required,min=0"`
	Content        string         `json:"content" validate:"required"`
	EngagementRate *float64       `json:"engagementRate" validate:"required,min=0,max=100"`
}

// UpdatePostDTO 部分更新帖子
type UpdatePostDTO struct {
	Date           *string         `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Platform       *model.Platform `json:"platform,omitempty" validate:"omitempty,oneof=instagram facebook twitter"`
	Likes          *int            `json:"likes,omitempty" validate:"omitempty,min=0"`
	Comments       *int            `json:"comments,omitempty" validate:"omitempty,min=0"`
	Shares         *int            `json:"shares,omitempty" validate:"omitempty,min=0"`
	Reach          *int            `json:"reach,omitempty" validate:"omitempty,min=0"`
	Content        *string         `json:"content,omitempty"`
	EngagementRate *float64        `json:"engagementRate,omitempty" validate:"omitempty,min=0,max=100"`
}
