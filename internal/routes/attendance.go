package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/basilalnjjar47-svg/quran-platform-server/internal/handlers"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/middleware"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/models"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/utils"
)

func AttendanceRoutes(r *gin.Engine, attendance *handlers.AttendanceHandler, tokens *utils.JWT) {
	authed := middleware.AuthMiddleware(tokens)
	staffOnly := middleware.RequireRole(models.RoleTeacher, models.RoleAdmin)

	r.POST("/api/attendance", authed, staffOnly, attendance.Record)
	r.GET("/api/attendance/:studentId", authed, attendance.Get)
}
