package handler

import (
	"Socialboard/internal/pkg/response"
	"Socialboard/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsSvc service.StatsService
}

func NewStatsHandler(statsSvc service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsSvc: statsSvc,
	}
}

// GetStats 仪表盘汇总、分平台汇总与互动趋势
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsSvc.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}
