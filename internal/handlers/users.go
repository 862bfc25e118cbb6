package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/basilalnjjar47-svg/quran-platform-server/internal/models"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/store"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/utils"
)

type UserHandler struct {
	users store.UserStore
}

func NewUserHandler(users store.UserStore) *UserHandler {
	return &UserHandler{users: users}
}

type CreateUserRequest struct {
	ID        string                 `json:"id" binding:"required"`
	Name      string                 `json:"name" binding:"required"`
	Password  string                 `json:"password" binding:"required"`
	Role      string                 `json:"role" binding:"required,oneof=student teacher admin"`
	Grade     string                 `json:"grade"`
	Group     string                 `json:"group"`
	TeacherID string                 `json:"teacherId"`
	Schedule  []models.ScheduleEntry `json:"schedule"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Invalid request schema")
		return
	}

	user := models.User{
		MemberID:  req.ID,
		Name:      req.Name,
		Password:  req.Password,
		Role:      req.Role,
		Grade:     req.Grade,
		Group:     req.Group,
		TeacherID: req.TeacherID,
		Schedule:  req.Schedule,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := h.users.Create(ctx, &user); err != nil {
		if err == store.ErrDuplicateID {
			utils.ErrorResponse(c, 400, "Membership id already in use")
			return
		}
		utils.ErrorResponse(c, 500, "Failed to create user")
		return
	}

	utils.SuccessResponse(c, 201, user)
}

func (h *UserHandler) All(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	users, err := h.users.All(ctx)
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to fetch users")
		return
	}
	utils.SuccessResponse(c, 200, users)
}

func (h *UserHandler) TeacherStudents(c *gin.Context) {
	teacherID := c.Query("teacherId")
	if teacherID == "" {
		utils.ErrorResponse(c, 400, "teacherId query parameter required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	students, err := h.users.FindStudentsByTeacher(ctx, teacherID)
	if err != nil {
		utils.ErrorResponse(c, 500, "Failed to fetch students")
		return
	}
	utils.SuccessResponse(c, 200, students)
}

func (h *UserHandler) Delete(c *gin.Context) {
	memberID := c.Param("id")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := h.users.GetByMemberID(ctx, memberID)
	if err != nil {
		if err == store.ErrNotFound {
			utils.ErrorResponse(c, 404, "User not found")
			return
		}
		utils.ErrorResponse(c, 500, "Internal server error")
		return
	}

	if user.Role == models.RoleAdmin {
		utils.ErrorResponse(c, 400, "Admin accounts cannot be deleted")
		return
	}

	if err := h.users.Delete(ctx, memberID); err != nil {
		utils.ErrorResponse(c, 500, "Failed to delete user")
		return
	}

	// Every deletion path re-checks the admin invariant.
	if err := EnsureDefaultAdmin(ctx, h.users); err != nil {
		log.Println("default admin check failed:", err)
	}

	utils.SuccessResponse(c, 200, gin.H{"message": "User deleted"})
}

// EnsureDefaultAdmin recreates the built-in admin account whenever no
// admin-role user exists. The platform must always have at least one.
func EnsureDefaultAdmin(ctx context.Context, users store.UserStore) error {
	n, err := users.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	admin := models.User{
		MemberID: "admin",
		Name:     "Administrator",
		Password: "admin", // must be changed after first login
		Role:     models.RoleAdmin,
	}
	if err := users.Create(ctx, &admin); err != nil && err != store.ErrDuplicateID {
		return err
	}
	log.Println("default admin account created")
	return nil
}
