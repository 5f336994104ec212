package service

import (
	"Socialboard/internal/api/dto"
	"Socialboard/internal/pkg/consts"
	"context"

	"github.com/goccy/go-json"
)

type PostService interface {
	// ListPosts 获取全部帖子
	ListPosts(ctx context.Context) (json.RawMessage, error)
	// CreatePost 新建帖子，返回上游分配 id 后的记录
	CreatePost(ctx context.Context, body []byte) (json.RawMessage, error)
	// UpdatePost 按 id 更新帖子
	UpdatePost(ctx context.Context, id string, body []byte) (json.RawMessage, error)
	// DeletePost 按 id 删除帖子
	DeletePost(ctx context.Context, id string) error
}

type postServiceImpl struct {
	proxy *recordProxy
}

func NewPostService(up Upstream) PostService {
	return &postServiceImpl{
		proxy: &recordProxy{
			up:            up,
			collection:    consts.ResourcePosts,
			singular:      "post",
			plural:        "posts",
			errIDRequired: ErrPostIDRequired,
			newCreateDTO:  func() any { return &dto.CreatePostDTO{} },
			newUpdateDTO:  func() any { return &dto.UpdatePostDTO{} },
		},
	}
}

func (s *postServiceImpl) ListPosts(ctx context.Context) (json.RawMessage, error) {
	return s.proxy.list(ctx)
}

func (s *postServiceImpl) CreatePost(ctx context.Context, body []byte) (json.RawMessage, error) {
	return s.proxy.create(ctx, body)
}

func (s *postServiceImpl) UpdatePost(ctx context.Context, id string, body []byte) (json.RawMessage, error) {
	return s.proxy.update(ctx, id, body)
}

func (s *postServiceImpl) DeletePost(ctx context.Context, id string) error {
	return s.proxy.delete(ctx, id)
}
