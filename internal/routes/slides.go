package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/basilalnjjar47-svg/quran-platform-server/internal/handlers"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/middleware"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/models"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/utils"
)

func SlideRoutes(r *gin.Engine, slides *handlers.SlideHandler, tokens *utils.JWT) {
	authed := middleware.AuthMiddleware(tokens)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	r.GET("/api/slides", slides.Active)
	r.GET("/api/slides/all", slides.All)
	r.POST("/api/slides", authed, adminOnly, slides.Create)
	r.PUT("/api/slides/:id", authed, adminOnly, slides.Update)
	r.DELETE("/api/slides/:id", authed, adminOnly, slides.Delete)
}
