package dto

import "Socialboard/internal/model"

// CreateFollowerDTO 新建粉丝记录，netGrowth 由调用方计算
type CreateFollowerDTO struct {
	Date         string         `json:"date" validate:"required,datetime=2006-01-02"`
	Platform     model.Platform `json:"platform" validate:"required,oneof=instagram facebook twitter"`
	Followers    *int           `json:"followers" validate:"required,min=0"`
	NewFollowers *int           `json:"newFollowers" validate:"required,min=0"`
	Unfollows    *int           `json:"unfollows" validate:"required,min=0"`
	NetGrowth    int            `json:"netGrowth"`
}

// UpdateFollowerDTO 部分更新粉丝记录
type UpdateFollowerDTO struct {
	Date         *string         `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Platform     *model.Platform `json:"platform,omitempty" validate:"omitempty,oneof=instagram facebook twitter"`
	Followers    *int            `json:"followers,omitempty" validate:"omitempty,min=0"`
	NewFollowers *int            `json:"newFollowers,omitempty" validate:"omitempty,min=0"`
	Unfollows    *int            `json:"unfollows,omitempty" validate:"omitempty,min=0"`
	NetGrowth    *int            `json:"netGrowth,omitempty"`
}
