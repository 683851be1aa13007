package websocket

import (
	"sync"

	"backend/internal/utils"

	"go.uber.org/zap"
)

type Client struct {
	hub     *Hub
	conn    ClientConn
	LoginID string
	Name    string
	send    chan interface{}
}

type ClientConn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v interface{}) error
	Close() error
}

// Hub tracks connected members and fans domain events out to them. A member
// with several tabs open counts as one online id until the last tab closes.
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]bool
	online     map[string]int
	register   chan *Client
	unregister chan *Client
	eventBus   *utils.EventBus
	logger     *zap.SugaredLogger
}

func NewHub(eventBus *utils.EventBus, logger *zap.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		online:     make(map[string]int),
		eventBus:   eventBus,
		logger:     logger.Sugar(),
	}
}

func (h *Hub) Run() {
	h.logger.Info("Presence hub started")

	events := h.eventBus.SubscribeCh()
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.online[client.LoginID]++
			h.mu.Unlock()
			h.logger.Infow("Member connected",
				"login_id", client.LoginID,
				"clients_count", h.clientCount(),
			)
			h.broadcastPresence()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.online[client.LoginID]--
				if h.online[client.LoginID] <= 0 {
					delete(h.online, client.LoginID)
				}
			}
			h.mu.Unlock()
			h.logger.Infow("Member disconnected",
				"login_id", client.LoginID,
				"clients_count", h.clientCount(),
			)
			h.broadcastPresence()

		case event := <-events:
			h.broadcast(map[string]interface{}{
				"event": event.Event,
				"data":  event.Data,
			})
		}
	}
}

// OnlineIDs returns the login ids with at least one open connection.
func (h *Hub) OnlineIDs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ids := make([]string, 0, len(h.online))
	for id := range h.online {
		ids = append(ids, id)
	}
	return ids
}

func (h *Hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) broadcastPresence() {
	h.broadcast(map[string]interface{}{
		"event": "presence_sync",
		"data":  map[string]interface{}{"online": h.OnlineIDs()},
	})
}

func (h *Hub) broadcast(msg interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.send <- msg:
		default:
			// slow consumer, drop the frame rather than block the hub
		}
	}
}
