package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/basilalnjjar47-svg/quran-platform-server/internal/models"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrDuplicateID = errors.New("member id already in use")
)

// AttendanceRecord is one (student, status) pair of an attendance batch.
type AttendanceRecord struct {
	StudentID string `json:"studentId" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

// UserStore persists user documents. Partial updates leave every field
// they do not name untouched.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByMemberID(ctx context.Context, memberID string) (*models.User, error)
	All(ctx context.Context) ([]models.User, error)
	FindByRole(ctx context.Context, role string) ([]models.User, error)
	FindStudentsByTeacher(ctx context.Context, teacherID string) ([]models.User, error)
	Delete(ctx context.Context, memberID string) error
	CountByRole(ctx context.Context, role string) (int64, error)

	// ReplaceSchedule swaps the whole schedule array. Entries absent
	// from the new payload are discarded.
	ReplaceSchedule(ctx context.Context, memberID string, entries []models.ScheduleEntry) error

	// UpdateSessionLink sets sessionLink/sessionActive on the first
	// schedule entry only. A user with an empty schedule is left
	// unchanged without error; an unknown user is ErrNotFound.
	UpdateSessionLink(ctx context.Context, memberID, link string, active bool) error

	// UpsertAttendance applies remove-then-insert per record so each
	// user keeps at most one entry per date. Records naming unknown
	// users are skipped; already-applied records are never rolled back.
	UpsertAttendance(ctx context.Context, date string, records []AttendanceRecord) error
}

// SlideStore persists announcement slides.
type SlideStore interface {
	Create(ctx context.Context, s *models.Slide) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Slide, error)
	All(ctx context.Context) ([]models.Slide, error)
	Active(ctx context.Context) ([]models.Slide, error)
	Update(ctx context.Context, s *models.Slide) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
