package realtime

import "log"

// Dispatcher pushes events to currently-connected users. Delivery is
// fire-and-forget: targets without a live connection are skipped and
// write failures are logged, never surfaced to the caller.
type Dispatcher struct {
	registry *Registry
}

func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// DispatchToUsers delivers (event, data) to each named user at most
// once, even when the list repeats an id. One bad connection does not
// stop delivery to the rest.
func (d *Dispatcher) DispatchToUsers(userIDs []string, event string, data map[string]interface{}) {
	seen := make(map[string]struct{}, len(userIDs))
	for _, userID := range userIDs {
		if _, dup := seen[userID]; dup {
			continue
		}
		seen[userID] = struct{}{}

		conn, ok := d.registry.LiveHandleOf(userID)
		if !ok {
			continue
		}
		if err := conn.WriteJSON(Message{Event: event, Data: data}); err != nil {
			log.Printf("dispatch %s to %s failed: %v", event, userID, err)
		}
	}
}
