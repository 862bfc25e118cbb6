package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/basilalnjjar47-svg/quran-platform-server/internal/handlers"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/middleware"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/models"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/utils"
)

func ScheduleRoutes(r *gin.Engine, schedule *handlers.ScheduleHandler, session *handlers.SessionHandler, tokens *utils.JWT) {
	authed := middleware.AuthMiddleware(tokens)
	staffOnly := middleware.RequireRole(models.RoleTeacher, models.RoleAdmin)

	r.GET("/api/schedule/:studentId", authed, schedule.Get)
	r.PUT("/api/schedule/:studentId", authed, staffOnly, schedule.Replace)
	r.PUT("/api/session/:studentId", authed, staffOnly, session.Update)
}
