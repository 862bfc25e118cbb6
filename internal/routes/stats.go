package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/basilalnjjar47-svg/quran-platform-server/internal/handlers"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/realtime"
)

func StatsRoutes(r *gin.Engine, stats *handlers.StatsHandler) {
	r.GET("/api/stats/overview", stats.Overview)
}

func RealtimeRoutes(r *gin.Engine, ws *realtime.Handler) {
	r.GET("/ws", ws.HandleWebSocket)
}
