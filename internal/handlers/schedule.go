package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/basilalnjjar47-svg/quran-platform-server/internal/models"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/store"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/utils"
)

type ScheduleHandler struct {
	users store.UserStore
}

func NewScheduleHandler(users store.UserStore) *ScheduleHandler {
	return &ScheduleHandler{users: users}
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := h.users.GetByMemberID(ctx, c.Param("studentId"))
	if err != nil {
		if err == store.ErrNotFound {
			utils.ErrorResponse(c, 404, "Student not found")
			return
		}
		utils.ErrorResponse(c, 500, "Internal server error")
		return
	}

	utils.SuccessResponse(c, 200, gin.H{
		"name":     user.Name,
		"schedule": user.Schedule,
	})
}

type ReplaceScheduleRequest struct {
	Schedule []models.ScheduleEntry `json:"schedule" binding:"required"`
}

// Replace swaps the student's whole schedule for the submitted one.
func (h *ScheduleHandler) Replace(c *gin.Context) {
	var req ReplaceScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Invalid request schema")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := h.users.ReplaceSchedule(ctx, c.Param("studentId"), req.Schedule)
	if err != nil {
		if err == store.ErrNotFound {
			utils.ErrorResponse(c, 404, "Student not found")
			return
		}
		utils.ErrorResponse(c, 500, "Internal server error")
		return
	}

	utils.SuccessResponse(c, 200, gin.H{"message": "Schedule updated"})
}
