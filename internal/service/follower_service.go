package service

import (
	"Socialboard/internal/api/dto"
	"Socialboard/internal/pkg/consts"
	"context"

	"github.com/goccy/go-json"
)

type FollowerService interface {
	ListFollowers(ctx context.Context) (json.RawMessage, error)
	CreateFollower(ctx context.Context, body []byte) (json.RawMessage, error)
	UpdateFollower(ctx context.Context, id string, body []byte) (json.RawMessage, error)
	DeleteFollower(ctx context.Context, id string) error
}

type followerServiceImpl struct {
	proxy *recordProxy
}

func NewFollowerService(up Upstream) FollowerService {
	return &followerServiceImpl{
		proxy: &recordProxy{
			up:            up,
			collection:    consts.ResourceFollowers,
			singular:      "follower record",
			plural:        "followers",
			errIDRequired: ErrFollowerIDRequired,
			newCreateDTO:  func() any { return &dto.CreateFollowerDTO{} },
			newUpdateDTO:  func() any { return &dto.UpdateFollowerDTO{} },
		},
	}
}

func (s *followerServiceImpl) ListFollowers(ctx context.Context) (json.RawMessage, error) {
	return s.proxy.list(ctx)
}

func (s *followerServiceImpl) CreateFollower(ctx context.Context, body []byte) (json.RawMessage, error) {
	return s.proxy.create(ctx, body)
}

func (s *followerServiceImpl) UpdateFollower(ctx context.Context, id string, body []byte) (json.RawMessage, error) {
	return s.proxy.update(ctx, id, body)
}

func (s *followerServiceImpl) DeleteFollower(ctx context.Context, id string) error {
	return s.proxy.delete(ctx, id)
}
