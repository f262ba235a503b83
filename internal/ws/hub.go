package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// Hub tracks the open connections of each signed-in user so services can
// push events (approval granted, session changes) to the right client.
type Hub struct {
	mu    sync.RWMutex
	users map[string]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		users: make(map[string]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.users[userID] == nil {
		h.users[userID] = make(map[*websocket.Conn]bool)
	}
	h.users[userID][conn] = true
	log.Printf("ws: client connected for user %s (total: %d)", userID, len(h.users[userID]))
}

func (h *Hub) RemoveConnection(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.users[userID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.users, userID)
		}
		log.Printf("ws: client disconnected for user %s", userID)
	}
}

func (h *Hub) Notify(userID string, message Message) {
	// Full lock: a failed write drops the connection from the map.
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.users[userID]
	if !ok {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			delete(conns, conn)
		}
	}
}

// NotifyApproved tells a newly approved user to re-resolve their screen.
func (h *Hub) NotifyApproved(userID string) {
	h.Notify(userID, Message{Type: "approved"})
}
