package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/basilalnjjar47-svg/quran-platform-server/internal/realtime"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/store"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/utils"
)

type SessionHandler struct {
	users      store.UserStore
	dispatcher *realtime.Dispatcher
}

func NewSessionHandler(users store.UserStore, dispatcher *realtime.Dispatcher) *SessionHandler {
	return &SessionHandler{users: users, dispatcher: dispatcher}
}

type SessionLinkRequest struct {
	SessionLink   string `json:"sessionLink"`
	SessionActive bool   `json:"sessionActive"`
}

// Update sets the live-session link on the student's first schedule
// entry and notifies the student over the realtime channel if they are
// connected. A student with an empty schedule is left unchanged.
func (h *SessionHandler) Update(c *gin.Context) {
	var req SessionLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Invalid request schema")
		return
	}

	studentID := c.Param("studentId")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := h.users.UpdateSessionLink(ctx, studentID, req.SessionLink, req.SessionActive)
	if err != nil {
		if err == store.ErrNotFound {
			utils.ErrorResponse(c, 404, "Student not found")
			return
		}
		utils.ErrorResponse(c, 500, "Internal server error")
		return
	}

	h.dispatcher.DispatchToUsers([]string{studentID}, "session_link_update", map[string]interface{}{
		"link":   req.SessionLink,
		"active": req.SessionActive,
	})

	user, err := h.users.GetByMemberID(ctx, studentID)
	if err != nil {
		utils.ErrorResponse(c, 500, "Internal server error")
		return
	}

	utils.SuccessResponse(c, 200, gin.H{
		"message": "Session link updated",
		"user":    user,
	})
}
