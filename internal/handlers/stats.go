package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/revolutionrp/community/internal/services"
	"github.com/revolutionrp/community/pkg/response"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetServerStats proxies the game server's live status. Fetch never
// errors; unreachable servers yield the static fallback payload.
func (h *StatsHandler) GetServerStats(c *gin.Context) {
	response.OK(c, h.statsService.Fetch())
}
