package websocket

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/app/board"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/utils"
)

// Client is one websocket connection subscribed to a single board.
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	ID      string
	UserID  uint64
	BoardID uint64
	send    chan utils.Event
}

func generateClientID() string {
	bytes := make([]byte, 6)
	if _, err := rand.Read(bytes); err != nil {
		return "xxxxx"
	}
	return base64.URLEncoding.EncodeToString(bytes)
}

// writePump is the only writer on the connection; gorilla/websocket
// does not allow concurrent writes.
func (c *Client) writePump() {
	for event := range c.send {
		if err := c.conn.WriteJSON(event); err != nil {
			return
		}
	}
}

// Hub fans board activity from the event bus out to connected clients.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	guard      board.Guard
	eventBus   *utils.EventBus
	logger     *zap.SugaredLogger
}

func NewHub(logger *zap.Logger, guard board.Guard, eventBus *utils.EventBus) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		guard:      guard,
		eventBus:   eventBus,
		logger:     logger.Sugar(),
	}
}

func (h *Hub) Run() {
	h.logger.Info("WebSocket Hub started")

	events := h.eventBus.SubscribeCh()
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Infow("Client connected",
				"client_id", client.ID,
				"user_id", client.UserID,
				"board_id", client.BoardID,
				"clients_count", len(h.clients),
			)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Infow("Client disconnected",
					"client_id", client.ID,
					"clients_count", len(h.clients),
				)
			}

		case event := <-events:
			h.broadcast(event)
		}
	}
}

// broadcast routes an event to the clients watching its board. Every
// client is scoped to one board, so an event that carries no board id
// is dropped rather than leaked across subscriptions. A client that
// cannot keep up is skipped rather than blocking the hub.
func (h *Hub) broadcast(event utils.Event) {
	boardID := eventBoardID(event)
	if boardID == 0 {
		return
	}
	for client := range h.clients {
		if client.BoardID != boardID {
			continue
		}
		select {
		case client.send <- event:
		default:
			h.logger.Warnw("Dropping event for slow client", "client_id", client.ID, "event", event.Event)
		}
	}
}

func eventBoardID(event utils.Event) uint64 {
	data, ok := event.Data.(map[string]interface{})
	if !ok {
		return 0
	}
	switch v := data["board_id"].(type) {
	case uint64:
		return v
	case float64:
		return uint64(v)
	default:
		return 0
	}
}
