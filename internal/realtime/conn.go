package realtime

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Message is the event envelope sent over the realtime channel.
type Message struct {
	Event string                 `json:"event"`
	Data  map[string]interface{} `json:"data,omitempty"`
}

// Sender is a live connection handle the registry hands out for delivery.
type Sender interface {
	ID() string
	WriteJSON(v interface{}) error
	Close() error
}

// Conn wraps a websocket connection with an opaque id and a write lock,
// since gorilla allows only one concurrent writer.
type Conn struct {
	id   string
	sock *websocket.Conn
	mu   sync.Mutex
}

func NewConn(sock *websocket.Conn) *Conn {
	return &Conn{id: uuid.NewString(), sock: sock}
}

func (c *Conn) ID() string { return c.id }

func (c *Conn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sock.WriteJSON(v)
}

func (c *Conn) Close() error {
	return c.sock.Close()
}
