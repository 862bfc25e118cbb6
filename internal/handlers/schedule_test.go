package handlers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basilalnjjar47-svg/quran-platform-server/internal/models"
)

func TestReplaceScheduleRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, models.User{
		MemberID: "1001", Name: "S1", Password: "pw", Role: models.RoleStudent,
		Schedule: []models.ScheduleEntry{{Day: "Mon"}, {Day: "Thu"}},
	})
	token := env.tokenFor(t, "t1", models.RoleTeacher)

	w := env.do(t, "PUT", "/api/schedule/1001", token, map[string]interface{}{
		"schedule": []models.ScheduleEntry{},
	})
	assert.Equal(t, 200, w.Code)

	w = env.do(t, "GET", "/api/schedule/1001", token, nil)
	require.Equal(t, 200, w.Code)
	data := decodeData(t, w)
	assert.Empty(t, data["schedule"])
}

func TestReplaceScheduleUnknownStudent(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "t1", models.RoleTeacher)

	w := env.do(t, "PUT", "/api/schedule/ghost", token, map[string]interface{}{
		"schedule": []models.ScheduleEntry{{Day: "Mon"}},
	})
	assert.Equal(t, 404, w.Code)
}

func TestUpdateSessionLink(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, models.User{
		MemberID: "1001", Name: "S1", Password: "pw", Role: models.RoleStudent,
		Schedule: []models.ScheduleEntry{
			{Day: "Mon", Time: "17:00"},
			{Day: "Thu", Time: "17:00"},
		},
	})
	token := env.tokenFor(t, "t1", models.RoleTeacher)

	w := env.do(t, "PUT", "/api/session/1001", token, map[string]interface{}{
		"sessionLink":   "https://meet.example/x",
		"sessionActive": true,
	})
	require.Equal(t, 200, w.Code)

	u, err := env.users.GetByMemberID(context.Background(), "1001")
	require.NoError(t, err)
	assert.Equal(t, "https://meet.example/x", u.Schedule[0].SessionLink)
	assert.True(t, u.Schedule[0].SessionActive)
	// the second entry keeps its zero values
	assert.Empty(t, u.Schedule[1].SessionLink)
	assert.False(t, u.Schedule[1].SessionActive)
}

func TestUpdateSessionLinkNotifiesConnectedStudent(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, models.User{
		MemberID: "1001", Name: "S1", Password: "pw", Role: models.RoleStudent,
		Schedule: []models.ScheduleEntry{{Day: "Mon"}},
	})
	conn := &fakeSender{id: "conn-1"}
	env.registry.Register("1001", conn)

	token := env.tokenFor(t, "t1", models.RoleTeacher)
	w := env.do(t, "PUT", "/api/session/1001", token, map[string]interface{}{
		"sessionLink":   "https://meet.example/x",
		"sessionActive": true,
	})
	require.Equal(t, 200, w.Code)

	events := conn.received()
	require.Len(t, events, 1)
	assert.Equal(t, "session_link_update", events[0].Event)
	assert.Equal(t, "https://meet.example/x", events[0].Data["link"])
}

func TestUpdateSessionLinkEmptySchedule(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, models.User{
		MemberID: "1001", Name: "S1", Password: "pw", Role: models.RoleStudent,
	})
	token := env.tokenFor(t, "t1", models.RoleTeacher)

	w := env.do(t, "PUT", "/api/session/1001", token, map[string]interface{}{
		"sessionLink":   "https://meet.example/x",
		"sessionActive": true,
	})
	// silent no-op, not an error
	assert.Equal(t, 200, w.Code)

	u, err := env.users.GetByMemberID(context.Background(), "1001")
	require.NoError(t, err)
	assert.Empty(t, u.Schedule)
}

func TestUpdateSessionLinkUnknownStudent(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "t1", models.RoleTeacher)

	w := env.do(t, "PUT", "/api/session/ghost", token, map[string]interface{}{
		"sessionLink":   "https://meet.example/x",
		"sessionActive": true,
	})
	assert.Equal(t, 404, w.Code)
}
