package handler

import (
	"Socialboard/internal/pkg/response"
	"Socialboard/internal/service"

	"github.com/gin-gonic/gin"
)

type FollowerHandler struct {
	followerSvc service.FollowerService
}

func NewFollowerHandler(followerSvc service.FollowerService) *FollowerHandler {
	return &FollowerHandler{
		followerSvc: followerSvc,
	}
}

func (s *FollowerHandler) ListFollowers(c *gin.Context) {
	followers, err := s.followerSvc.ListFollowers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, followers)
}

func (s *FollowerHandler) CreateFollower(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	record, err := s.followerSvc.CreateFollower(c.Request.Context(), body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessCreated(c, record)
}

func (s *FollowerHandler) UpdateFollower(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	record, err := s.followerSvc.UpdateFollower(c.Request.Context(), c.Query("id"), body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, record)
}

func (s *FollowerHandler) DeleteFollower(c *gin.Context) {
	if err := s.followerSvc.DeleteFollower(c.Request.Context(), c.Query("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMessage(c, "Follower record deleted successfully")
}
