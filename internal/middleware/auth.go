package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/basilalnjjar47-svg/quran-platform-server/internal/utils"
)

func AuthMiddleware(tokens *utils.JWT) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, 401, "Unauthorized, token missing or invalid")
			c.Abort()
			return
		}

		// Strip "Bearer " prefix if present
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		tokenString = strings.TrimSpace(tokenString)

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			utils.ErrorResponse(c, 401, "Unauthorized, token missing or invalid")
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireRole guards an endpoint behind one of the listed roles. Must
// run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		utils.ErrorResponse(c, 403, "Forbidden, insufficient role")
		c.Abort()
	}
}
