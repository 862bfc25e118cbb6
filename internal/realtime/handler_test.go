package realtime_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basilalnjjar47-svg/quran-platform-server/internal/models"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/realtime"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/stats"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/store"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/utils"
)

type wsEnv struct {
	server   *httptest.Server
	registry *realtime.Registry
	tokens   *utils.JWT
}

func newWSEnv(t *testing.T) *wsEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := store.NewMemoryUserStore()
	require.NoError(t, users.Create(context.Background(), &models.User{
		MemberID: "1001", Name: "S", Password: "pw", Role: models.RoleStudent,
	}))

	tokens := utils.NewJWT("test-secret")
	registry := realtime.NewRegistry()
	dispatcher := realtime.NewDispatcher(registry)
	aggregator := stats.NewAggregator(users, registry)
	handler := realtime.NewHandler(registry, dispatcher, users, aggregator, tokens)

	r := gin.New()
	r.GET("/ws", handler.HandleWebSocket)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &wsEnv{server: srv, registry: registry, tokens: tokens}
}

func (e *wsEnv) dial(t *testing.T, memberID, role string) *websocket.Conn {
	t.Helper()

	token, err := e.tokens.Generate(memberID, role)
	require.NoError(t, err)

	url := "ws" + strings.TrimPrefix(e.server.URL, "http") + "/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func register(t *testing.T, conn *websocket.Conn, userID string) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(realtime.Message{
		Event: "register_user",
		Data:  map[string]interface{}{"userId": userID},
	}))
}

func TestWebSocketRegisterAndDisconnect(t *testing.T) {
	env := newWSEnv(t)

	conn := env.dial(t, "1001", models.RoleStudent)
	register(t, conn, "1001")

	assert.Eventually(t, func() bool {
		return env.registry.IsOnline("1001")
	}, time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool {
		return !env.registry.IsOnline("1001")
	}, time.Second, 10*time.Millisecond)
}

func TestWebSocketSendLinkToStudents(t *testing.T) {
	env := newWSEnv(t)

	student := env.dial(t, "1001", models.RoleStudent)
	register(t, student, "1001")
	assert.Eventually(t, func() bool {
		return env.registry.IsOnline("1001")
	}, time.Second, 10*time.Millisecond)

	teacher := env.dial(t, "t1", models.RoleTeacher)
	require.NoError(t, teacher.WriteJSON(realtime.Message{
		Event: "send_link_to_students",
		Data: map[string]interface{}{
			"studentIds": []string{"1001", "offline-kid"},
			"link":       "https://meet.example/x",
		},
	}))

	student.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg realtime.Message
	require.NoError(t, student.ReadJSON(&msg))
	assert.Equal(t, "session_link_update", msg.Event)
	assert.Equal(t, "https://meet.example/x", msg.Data["link"])
}

func TestWebSocketStudentCannotSendLink(t *testing.T) {
	env := newWSEnv(t)

	student := env.dial(t, "1001", models.RoleStudent)
	require.NoError(t, student.WriteJSON(realtime.Message{
		Event: "send_link_to_students",
		Data: map[string]interface{}{
			"studentIds": []string{"1001"},
			"link":       "https://meet.example/x",
		},
	}))

	student.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg realtime.Message
	require.NoError(t, student.ReadJSON(&msg))
	assert.Equal(t, "ERROR", msg.Event)
}

func TestWebSocketRejectsMissingToken(t *testing.T) {
	env := newWSEnv(t)

	url := "ws" + strings.TrimPrefix(env.server.URL, "http") + "/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 401, resp.StatusCode)
}
