package controller

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
)

// DocumentHub pushes a small "document updated" event to every connected
// client after each successful save, so open tabs can re-fetch instead of
// polling.
type DocumentHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	logger  *log.Logger
}

func NewDocumentHub(logger *log.Logger) *DocumentHub {
	return &DocumentHub{
		clients: make(map[*websocket.Conn]struct{}),
		logger:  logger,
	}
}

type documentEvent struct {
	Event     string    `json:"event"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NotifyUpdated fans the event out; a client that fails to receive is
// dropped.
func (h *DocumentHub) NotifyUpdated(updatedAt time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()

	event := documentEvent{Event: "document_updated", UpdatedAt: updatedAt}
	for conn := range h.clients {
		if err := conn.WriteJSON(event); err != nil {
			h.logger.Printf("Dropping WebSocket client: %v", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Handle keeps a subscriber registered until it disconnects. Incoming
// messages are read and discarded; the channel is push-only.
func (h *DocumentHub) Handle(c *websocket.Conn) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, c)
		h.mu.Unlock()
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
