package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/basilalnjjar47-svg/quran-platform-server/internal/store"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/utils"
)

type AttendanceHandler struct {
	users store.UserStore
}

func NewAttendanceHandler(users store.UserStore) *AttendanceHandler {
	return &AttendanceHandler{users: users}
}

type RecordAttendanceRequest struct {
	Date    string                   `json:"date" binding:"required"`
	Records []store.AttendanceRecord `json:"records" binding:"required,dive"`
}

// Record applies one day's attendance batch. Records naming unknown
// students are skipped; the batch as a whole still succeeds.
func (h *AttendanceHandler) Record(c *gin.Context) {
	var req RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Invalid request schema")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.users.UpsertAttendance(ctx, req.Date, req.Records); err != nil {
		utils.ErrorResponse(c, 500, "Internal server error")
		return
	}

	utils.SuccessResponse(c, 200, gin.H{"message": "Attendance recorded"})
}

// Get returns one student's name and attendance history.
func (h *AttendanceHandler) Get(c *gin.Context) {
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
		"name":       user.Name,
		"attendance": user.Attendance,
	})
}
