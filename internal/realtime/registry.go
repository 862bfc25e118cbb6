package realtime

import "sync"

// Registry maps a membership id to its live connection handle. It is
// created once at startup and handed to everything that needs presence;
// nothing in it survives a restart.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]Sender
}

func NewRegistry() *Registry {
	return &Registry{clients: make(map[string]Sender)}
}

// Register stores the mapping, replacing any previous connection for the
// same user. Last registration wins; there is no multi-device fan-out.
func (r *Registry) Register(userID string, conn Sender) {
	r.mu.Lock()
	r.clients[userID] = conn
	r.mu.Unlock()
}

// Unregister removes the entry holding the given handle, found by
// scanning the map. Safe to call again after the entry is gone, and it
// never evicts a newer connection registered for the same user.
func (r *Registry) Unregister(conn Sender) {
	if conn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for userID, c := range r.clients {
		if c.ID() == conn.ID() {
			delete(r.clients, userID)
			return
		}
	}
}

func (r *Registry) IsOnline(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.clients[userID]
	return ok
}

// LiveHandleOf returns the current handle for a user, if any.
func (r *Registry) LiveHandleOf(userID string) (Sender, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conn, ok := r.clients[userID]
	return conn, ok
}
