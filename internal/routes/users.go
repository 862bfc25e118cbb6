package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/basilalnjjar47-svg/quran-platform-server/internal/handlers"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/middleware"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/models"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/utils"
)

func UserRoutes(r *gin.Engine, users *handlers.UserHandler, tokens *utils.JWT) {
	authed := middleware.AuthMiddleware(tokens)
	adminOnly := middleware.RequireRole(models.RoleAdmin)
	staffOnly := middleware.RequireRole(models.RoleTeacher, models.RoleAdmin)

	r.POST("/api/users", authed, adminOnly, users.Create)
	r.GET("/api/users/all", authed, adminOnly, users.All)
	r.DELETE("/api/users/:id", authed, adminOnly, users.Delete)
	r.GET("/api/teacher/students", authed, staffOnly, users.TeacherStudents)
}
