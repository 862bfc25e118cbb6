package store

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/basilalnjjar47-svg/quran-platform-server/internal/models"
)

// MemoryUserStore is a map-backed UserStore with the same update
// semantics as the Mongo one. Handler tests run against it.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]*models.User)}
}

func (s *MemoryUserStore) Create(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[u.MemberID]; exists {
		return ErrDuplicateID
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	cp := *u
	if cp.Schedule == nil {
		cp.Schedule = []models.ScheduleEntry{}
	}
	if cp.Attendance == nil {
		cp.Attendance = []models.AttendanceEntry{}
	}
	s.users[u.MemberID] = &cp
	return nil
}

func (s *MemoryUserStore) GetByMemberID(_ context.Context, memberID string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[memberID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := cloneUser(u)
	return &cp, nil
}

func (s *MemoryUserStore) All(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(*models.User) bool { return true }), nil
}

func (s *MemoryUserStore) FindByRole(_ context.Context, role string) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(u *models.User) bool { return u.Role == role }), nil
}

func (s *MemoryUserStore) FindStudentsByTeacher(_ context.Context, teacherID string) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(u *models.User) bool {
		return u.Role == models.RoleStudent && u.TeacherID == teacherID
	}), nil
}

func (s *MemoryUserStore) collect(match func(*models.User) bool) []models.User {
	out := []models.User{}
	for _, u := range s.users {
		if match(u) {
			out = append(out, cloneUser(u))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MemberID < out[j].MemberID })
	return out
}

func (s *MemoryUserStore) Delete(_ context.Context, memberID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[memberID]; !ok {
		return ErrNotFound
	}
	delete(s.users, memberID)
	return nil
}

func (s *MemoryUserStore) CountByRole(_ context.Context, role string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, u := range s.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (s *MemoryUserStore) ReplaceSchedule(_ context.Context, memberID string, entries []models.ScheduleEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[memberID]
	if !ok {
		return ErrNotFound
	}
	u.Schedule = append([]models.ScheduleEntry{}, entries...)
	return nil
}

func (s *MemoryUserStore) UpdateSessionLink(_ context.Context, memberID, link string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[memberID]
	if !ok {
		return ErrNotFound
	}
	if len(u.Schedule) == 0 {
		return nil
	}
	u.Schedule[0].SessionLink = link
	u.Schedule[0].SessionActive = active
	return nil
}

func (s *MemoryUserStore) UpsertAttendance(_ context.Context, date string, records []AttendanceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range records {
		u, ok := s.users[rec.StudentID]
		if !ok {
			continue
		}
		kept := u.Attendance[:0]
		for _, a := range u.Attendance {
			if a.Date != date {
				kept = append(kept, a)
			}
		}
		u.Attendance = append(kept, models.AttendanceEntry{Date: date, Status: rec.Status})
	}
	return nil
}

func cloneUser(u *models.User) models.User {
	cp := *u
	cp.Schedule = append([]models.ScheduleEntry{}, u.Schedule...)
	cp.Attendance = append([]models.AttendanceEntry{}, u.Attendance...)
	return cp
}

// MemorySlideStore is the slide counterpart of MemoryUserStore.
type MemorySlideStore struct {
	mu     sync.RWMutex
	slides map[primitive.ObjectID]*models.Slide
}

func NewMemorySlideStore() *MemorySlideStore {
	return &MemorySlideStore{slides: make(map[primitive.ObjectID]*models.Slide)}
}

func (s *MemorySlideStore) Create(_ context.Context, slide *models.Slide) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slide.ID.IsZero() {
		slide.ID = primitive.NewObjectID()
	}
	cp := *slide
	s.slides[slide.ID] = &cp
	return nil
}

func (s *MemorySlideStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.Slide, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slide, ok := s.slides[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *slide
	return &cp, nil
}

func (s *MemorySlideStore) All(_ context.Context) ([]models.Slide, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(*models.Slide) bool { return true }), nil
}

func (s *MemorySlideStore) Active(_ context.Context) ([]models.Slide, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(sl *models.Slide) bool { return sl.IsActive }), nil
}

func (s *MemorySlideStore) collect(match func(*models.Slide) bool) []models.Slide {
	out := []models.Slide{}
	for _, sl := range s.slides {
		if match(sl) {
			out = append(out, *sl)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func (s *MemorySlideStore) Update(_ context.Context, slide *models.Slide) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.slides[slide.ID]; !ok {
		return ErrNotFound
	}
	cp := *slide
	s.slides[slide.ID] = &cp
	return nil
}

func (s *MemorySlideStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slides, id)
	return nil
}
