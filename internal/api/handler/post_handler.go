package handler

import (
	"Socialboard/internal/pkg/response"
	"Socialboard/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

// ListPosts GET /posts
func (s *PostHandler) ListPosts(c *gin.Context) {
	posts, err := s.postSvc.ListPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// CreatePost POST /posts
func (s *PostHandler) CreatePost(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessCreated(c, post)
}

// UpdatePost PUT /posts?id=
func (s *PostHandler) UpdatePost(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	post, err := s.postSvc.UpdatePost(c.Request.Context(), c.Query("id"), body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// DeletePost DELETE /posts?id=
func (s *PostHandler) DeletePost(c *gin.Context) {
	if err := s.postSvc.DeletePost(c.Request.Context(), c.Query("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMessage(c, "Post deleted successfully")
}
