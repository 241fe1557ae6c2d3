package sse

import (
	"encoding/json"
	"io"
	"log"
	"sync"

	"github.com/gin-gonic/gin"
)

// Event is a single server-sent event delivered to a connected client
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type client struct {
	userID string
	send   chan Event
}

// Manager fans events out to connected clients, keyed by user ID.
// A user may hold several connections (multiple tabs/devices).
type Manager struct {
	mu         sync.RWMutex
	clients    map[*client]struct{}
	register   chan *client
	unregister chan *client
	broadcast  chan userEvent
}

type userEvent struct {
	userID string
	event  Event
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan userEvent, 64),
	}
}

// Run processes register/unregister/broadcast requests. Call in a goroutine.
func (m *Manager) Run() {
	for {
		select {
		case c := <-m.register:
			m.mu.Lock()
			m.clients[c] = struct{}{}
			m.mu.Unlock()
			log.Printf("[SSE] Client connected (user %s, total %d)", c.userID, len(m.clients))
		case c := <-m.unregister:
			m.mu.Lock()
			if _, ok := m.clients[c]; ok {
				delete(m.clients, c)
				close(c.send)
			}
			m.mu.Unlock()
			log.Printf("[SSE] Client disconnected (user %s)", c.userID)
		case ue := <-m.broadcast:
			m.mu.RLock()
			for c := range m.clients {
				if c.userID != ue.userID {
					continue
				}
				select {
				case c.send <- ue.event:
				default:
					// Slow consumer, drop the event rather than block the hub
				}
			}
			m.mu.RUnlock()
		}
	}
}

// SendToUser queues an event for every connection held by the user.
// Never blocks the caller.
func (m *Manager) SendToUser(userID string, event Event) {
	select {
	case m.broadcast <- userEvent{userID: userID, event: event}:
	default:
		log.Printf("[SSE] Broadcast queue full, dropping %s event for user %s", event.Type, userID)
	}
}

// ServeHTTP upgrades the gin request to an SSE stream for the given user
func (m *Manager) ServeHTTP(c *gin.Context, userID string) {
	cl := &client{
		userID: userID,
		send:   make(chan Event, 16),
	}
	m.register <- cl
	defer func() { m.unregister <- cl }()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-cl.send:
			if !ok {
				return false
			}
			payload, err := json.Marshal(event.Data)
			if err != nil {
				return true
			}
			c.SSEvent(event.Type, string(payload))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
