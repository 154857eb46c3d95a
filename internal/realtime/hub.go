// filepath: internal/realtime/hub.go
package realtime

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"wardbulletin/internal/logging"
)

// Message is the envelope pushed to every connected client when shared data
// changes. Only the fields relevant to the message type are populated.
type Message struct {
	Type       string              `json:"type"`
	NameGroups map[string][]string `json:"nameGroups,omitempty"`
	Hymns      map[string]string   `json:"hymns,omitempty"`
	SmartText  map[string]string   `json:"smartText,omitempty"`
	Date       string              `json:"date,omitempty"`
	Data       json.RawMessage     `json:"data,omitempty"`
	User       interface{}         `json:"user,omitempty"`
	UserID     int64               `json:"userId,omitempty"`
}

// Broadcast message types.
const (
	TypeNamesUpdated     = "NAMES_UPDATED"
	TypeHymnsUpdated     = "HYMNS_UPDATED"
	TypeSmartTextUpdated = "SMART_TEXT_UPDATED"
	TypeAgendaSaved      = "AGENDA_SAVED"
	TypeUserRegistered   = "USER_REGISTERED"
	TypeUserApproved     = "USER_APPROVED"
	TypeUserRoleUpdated  = "USER_ROLE_UPDATED"
	TypeUserRemoved      = "USER_REMOVED"
)

// Hub tracks connected websocket clients and fans messages out to them.
// Delivery is best effort: a client whose write fails is dropped.
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser clients connect cross-origin in dev setups; the data
			// pushed here is the same data any authenticated page already has.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades an HTTP request to a websocket and registers the
// client. The read loop exists only to detect disconnects; clients never
// send data upstream.
func (h *Hub) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Log.Warnf("Hub: websocket upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()
	logging.Log.Debugf("Hub: client connected (%d total)", count)

	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast sends a message to every connected client.
func (h *Hub) Broadcast(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		logging.Log.Errorf("Hub: failed to marshal %s broadcast: %v", msg.Type, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			logging.Log.Debugf("Hub: dropping client after write error: %v", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects all clients. Called during server shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	conn.Close()
	h.mu.Lock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		logging.Log.Debugf("Hub: client disconnected (%d total)", len(h.clients))
	}
	h.mu.Unlock()
}
