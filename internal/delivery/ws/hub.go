package ws

import (
	"sync"

	"mtgsim/internal/logger"
	"mtgsim/internal/session"

	"go.uber.org/zap"
)

// Hub maintains active client connections and routes their messages into
// the session manager, grouped by sessionId, grounded on the teacher's
// Hub (register/unregister channels + game-grouped connection map).
type Hub struct {
	manager *session.Manager

	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex
}

// NewHub builds a Hub bound to the session manager.
func NewHub(manager *session.Manager) *Hub {
	return &Hub{
		manager:    manager,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run processes registration traffic until the hub is stopped externally
// (the process exiting tears every connection down; there is no persisted
// state to protect, per spec.md §6 "Persisted state layout: None").
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()
			logger.Get().Info("websocket client connected", zap.String("client_id", c.ID))
		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			logger.Get().Info("websocket client disconnected", zap.String("client_id", c.ID))
		}
	}
}
