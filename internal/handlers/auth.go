package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/basilalnjjar47-svg/quran-platform-server/internal/models"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/store"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/utils"
)

// redirect targets per role after a successful login
var rolePages = map[string]string{
	models.RoleStudent: "student-dashboard.html",
	models.RoleTeacher: "teacher-dashboard.html",
	models.RoleAdmin:   "admin-dashboard.html",
}

type AuthHandler struct {
	users  store.UserStore
	tokens *utils.JWT
}

func NewAuthHandler(users store.UserStore, tokens *utils.JWT) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

type LoginRequest struct {
	ID       string `json:"id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Invalid request schema")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := h.users.GetByMemberID(ctx, req.ID)
	if err != nil {
		if err == store.ErrNotFound {
			utils.ErrorResponse(c, 404, "User not found")
			return
		}
		utils.ErrorResponse(c, 500, "Internal server error")
		return
	}

	if user.Password != req.Password {
		utils.ErrorResponse(c, 401, "Incorrect password")
		return
	}

	token, err := h.tokens.Generate(user.MemberID, user.Role)
	if err != nil {
		utils.ErrorResponse(c, 500, "Internal server error")
		return
	}

	utils.SuccessResponse(c, 200, gin.H{
		"user":       user,
		"token":      token,
		"redirectTo": rolePages[user.Role],
	})
}
