// Package websocket broadcasts entity-change events to connected portal
// clients. The feed is advisory: a dropped or slow client is disconnected,
// never waited on.
package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Event types broadcast on collection mutations
const (
	EventBookingCreated  = "booking_created"
	EventReviewSubmitted = "review_submitted"
	EventWorkerUpdated   = "worker_updated"
	EventWorkerJoined    = "worker_joined"
	EventFeedbackSent    = "feedback_sent"
)

// Event represents one entity-change notification
type Event struct {
	Type      string      `json:"type"`
	Entity    string      `json:"entity"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Hub manages all connected event-feed clients
type Hub struct {
	clients    map[uint64]*Client
	Broadcast  chan *Event
	Register   chan *Client
	Unregister chan *Client

	nextID uint64
	mu     sync.RWMutex
}

// NewHub creates a new event hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uint64]*Client),
		Broadcast:  make(chan *Event, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			log.Printf("🔌 Event client registered: %d", client.ID)

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
			}
			h.mu.Unlock()
			log.Printf("🔌 Event client unregistered: %d", client.ID)

		case event := <-h.Broadcast:
			h.broadcastEvent(event)
		}
	}
}

// broadcastEvent sends an event to every connected client
func (h *Hub) broadcastEvent(event *Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("❌ Error marshaling event: %v", err)
		return
	}

	for id, client := range h.clients {
		select {
		case client.Send <- data:
		default:
			close(client.Send)
			delete(h.clients, id)
		}
	}
}

// Publish queues an entity-change event for broadcast. Never blocks the
// mutating handler; the event is dropped when the queue is full.
func (h *Hub) Publish(eventType, entity string, data interface{}) {
	event := &Event{
		Type:      eventType,
		Entity:    entity,
		Data:      data,
		Timestamp: time.Now(),
	}
	select {
	case h.Broadcast <- event:
	default:
		log.Printf("⚠️ Event queue full, dropping %s", eventType)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// nextClientID hands out a unique id for a new connection
func (h *Hub) nextClientID() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	return h.nextID
}
