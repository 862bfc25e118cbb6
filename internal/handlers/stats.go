package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/basilalnjjar47-svg/quran-platform-server/internal/stats"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/utils"
)

type StatsHandler struct {
	agg *stats.Aggregator
}

func NewStatsHandler(agg *stats.Aggregator) *StatsHandler {
	return &StatsHandler{agg: agg}
}

func (h *StatsHandler) Overview(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	overview, err := h.agg.ComputeStats(ctx)
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to compute stats")
		return
	}
	utils.SuccessResponse(c, 200, overview)
}
