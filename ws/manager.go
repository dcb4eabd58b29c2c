package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event types pushed to subscribed clients.
const (
	EventWishlistUpdated = "wishlist_updated"
	EventCompareUpdated  = "compare_updated"
	EventChatMessage     = "chat_message"
)

// Event is the typed notification delivered to a user's open sessions,
// e.g. so a badge counter in another tab can re-fetch counts.
type Event struct {
	Type       string `json:"type"`
	PropertyID string `json:"property_id,omitempty"`
	SessionID  string `json:"session_id,omitempty"`
	Message    string `json:"message,omitempty"`
	Timestamp  string `json:"timestamp"`
}

// Manager keeps track of active user subscriptions. A user may hold
// several connections at once (one per open tab).
type Manager struct {
	mu          sync.RWMutex
	connections map[string]map[*websocket.Conn]struct{} // userID -> conns
}

func NewManager() *Manager {
	return &Manager{connections: make(map[string]map[*websocket.Conn]struct{})}
}

// Register adds a connection for a user.
func (m *Manager) Register(userID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.connections[userID] == nil {
		m.connections[userID] = make(map[*websocket.Conn]struct{})
	}
	m.connections[userID][conn] = struct{}{}
}

// Unregister removes and closes a single connection.
func (m *Manager) Unregister(userID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if conns, ok := m.connections[userID]; ok {
		if _, ok := conns[conn]; ok {
			if conn != nil {
				_ = conn.Close()
			}
			delete(conns, conn)
		}
		if len(conns) == 0 {
			delete(m.connections, userID)
		}
	}
}

// Publish delivers an event to every open connection of a user.
// Connections that fail to write are dropped. Publishing to a user with
// no subscriptions is a no-op.
func (m *Manager) Publish(userID string, ev Event) {
	if ev.Timestamp == "" {
		ev.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	conns, ok := m.connections[userID]
	if !ok {
		return
	}
	for conn := range conns {
		if conn == nil {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			_ = conn.Close()
			delete(conns, conn)
		}
	}
	if len(conns) == 0 {
		delete(m.connections, userID)
	}
}

// IsSubscribed returns whether a user has at least one open connection.
func (m *Manager) IsSubscribed(userID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections[userID]) > 0
}

// Users returns a copy of the currently subscribed user ids.
func (m *Manager) Users() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.connections))
	for id := range m.connections {
		ids = append(ids, id)
	}
	return ids
}
