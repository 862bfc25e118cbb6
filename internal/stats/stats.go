package stats

import (
	"context"

	"github.com/basilalnjjar47-svg/quran-platform-server/internal/models"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/store"
)

// Presence reports whether a user currently has a live connection.
type Presence interface {
	IsOnline(userID string) bool
}

// Overview is the dashboard counters payload.
type Overview struct {
	TotalStudents   int `json:"totalStudents"`
	TotalTeachers   int `json:"totalTeachers"`
	OnlineStudents  int `json:"onlineStudents"`
	OfflineStudents int `json:"offlineStudents"`
	ActiveGroups    int `json:"activeGroups"`
}

// Aggregator derives the overview from persisted users plus live
// presence. Nothing is cached; every call reads through.
type Aggregator struct {
	users    store.UserStore
	presence Presence
}

func NewAggregator(users store.UserStore, presence Presence) *Aggregator {
	return &Aggregator{users: users, presence: presence}
}

func (a *Aggregator) ComputeStats(ctx context.Context) (*Overview, error) {
	students, err := a.users.FindByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}
	teachers, err := a.users.CountByRole(ctx, models.RoleTeacher)
	if err != nil {
		return nil, err
	}

	online := 0
	groups := map[string]struct{}{}
	for _, s := range students {
		if a.presence.IsOnline(s.MemberID) {
			online++
		}
		if s.TeacherID != "" {
			groups[s.TeacherID] = struct{}{}
		}
	}

	offline := len(students) - online
	if offline < 0 {
		offline = 0
	}

	return &Overview{
		TotalStudents:   len(students),
		TotalTeachers:   int(teachers),
		OnlineStudents:  online,
		OfflineStudents: offline,
		ActiveGroups:    len(groups),
	}, nil
}
