package realtime

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/basilalnjjar47-svg/quran-platform-server/internal/models"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/stats"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/store"
	"github.com/basilalnjjar47-svg/quran-platform-server/internal/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // allow all origins for now
	},
}

// Handler owns the websocket endpoint and ties connections to the
// registry, the dispatcher and the stats push.
type Handler struct {
	registry   *Registry
	dispatcher *Dispatcher
	users      store.UserStore
	stats      *stats.Aggregator
	tokens     *utils.JWT
}

func NewHandler(registry *Registry, dispatcher *Dispatcher, users store.UserStore, agg *stats.Aggregator, tokens *utils.JWT) *Handler {
	return &Handler{
		registry:   registry,
		dispatcher: dispatcher,
		users:      users,
		stats:      agg,
		tokens:     tokens,
	}
}

func (h *Handler) HandleWebSocket(c *gin.Context) {
	// grab token from query
	token := c.Query("token")
	if token == "" {
		c.JSON(401, gin.H{"error": "token missing"})
		return
	}

	claims, err := h.tokens.ValidateToken(token)
	if err != nil {
		c.JSON(401, gin.H{"error": "invalid token"})
		return
	}

	sock, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("ws upgrade failed:", err)
		return
	}

	conn := NewConn(sock)
	log.Printf("client connected: %s (%s)", claims.UserID, claims.Role)

	go h.readLoop(conn, sock, claims)
}

func (h *Handler) readLoop(conn *Conn, sock *websocket.Conn, claims *utils.Claims) {
	defer func() {
		h.registry.Unregister(conn)
		conn.Close()
		log.Printf("client disconnected: %s", claims.UserID)
		h.pushStats()
	}()

	for {
		var msg Message
		if err := sock.ReadJSON(&msg); err != nil {
			break
		}

		switch msg.Event {
		case "register_user":
			h.handleRegisterUser(conn, claims, msg)
		case "send_link_to_students":
			h.handleSendLink(conn, claims, msg)
		default:
			h.sendError(conn, "unknown event type")
		}
	}
}

// handleRegisterUser is the client's announcement after connecting.
// Re-announcing (or reconnecting) simply overwrites the old mapping.
func (h *Handler) handleRegisterUser(conn *Conn, claims *utils.Claims, msg Message) {
	userID, _ := msg.Data["userId"].(string)
	if userID == "" {
		userID = claims.UserID
	}

	h.registry.Register(userID, conn)
	log.Printf("user %s registered on connection %s", userID, conn.ID())
	h.pushStats()
}

func (h *Handler) handleSendLink(conn *Conn, claims *utils.Claims, msg Message) {
	if claims.Role != models.RoleTeacher && claims.Role != models.RoleAdmin {
		h.sendError(conn, "Forbidden, teacher event only")
		return
	}

	rawIDs, ok := msg.Data["studentIds"].([]interface{})
	if !ok {
		h.sendError(conn, "invalid studentIds")
		return
	}
	link, _ := msg.Data["link"].(string)

	studentIDs := make([]string, 0, len(rawIDs))
	for _, raw := range rawIDs {
		if id, ok := raw.(string); ok {
			studentIDs = append(studentIDs, id)
		}
	}

	h.dispatcher.DispatchToUsers(studentIDs, "session_link_update", map[string]interface{}{
		"link": link,
	})
}

// pushStats recomputes the overview and forwards it to any connected
// admins so the dashboard tracks presence changes live.
func (h *Handler) pushStats() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	overview, err := h.stats.ComputeStats(ctx)
	if err != nil {
		log.Println("stats refresh failed:", err)
		return
	}

	admins, err := h.users.FindByRole(ctx, models.RoleAdmin)
	if err != nil {
		log.Println("admin lookup failed:", err)
		return
	}

	adminIDs := make([]string, 0, len(admins))
	for _, a := range admins {
		adminIDs = append(adminIDs, a.MemberID)
	}

	h.dispatcher.DispatchToUsers(adminIDs, "stats_update", map[string]interface{}{
		"totalStudents":   overview.TotalStudents,
		"totalTeachers":   overview.TotalTeachers,
		"onlineStudents":  overview.OnlineStudents,
		"offlineStudents": overview.OfflineStudents,
		"activeGroups":    overview.ActiveGroups,
	})
}

func (h *Handler) sendError(conn *Conn, message string) {
	err := conn.WriteJSON(Message{
		Event: "ERROR",
		Data:  map[string]interface{}{"message": message},
	})
	if err != nil {
		log.Println("write error:", err)
	}
}
