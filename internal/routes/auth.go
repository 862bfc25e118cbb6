package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/basilalnjjar47-svg/quran-platform-server/internal/handlers"
)

func AuthRoutes(r *gin.Engine, auth *handlers.AuthHandler) {
	r.POST("/api/login", auth.Login)
}
