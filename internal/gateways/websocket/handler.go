package websocket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Usamakaleem743/Dragonlist-backend/internal/middleware"
	"github.com/Usamakaleem743/Dragonlist-backend/internal/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWS upgrades the connection and subscribes the caller to one
// board's activity. Auth comes from the shared middleware; browsers
// cannot set headers on websocket requests, so the token rides in the
// "token" query parameter.
func (h *Hub) ServeWS(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
		return
	}

	boardID, err := strconv.ParseUint(c.Query("board_id"), 10, 64)
	if err != nil {
		h.logger.Warnw("WebSocket connection rejected: board_id missing",
			"client_ip", c.ClientIP(),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "board_id is required"})
		return
	}

	member, err := h.guard.IsMember(boardID, userID)
	if err != nil || !member {
		h.logger.Warnw("WebSocket connection rejected: not a board member",
			"board_id", boardID,
			"user_id", userID,
		)
		c.JSON(http.StatusForbidden, gin.H{"error": "not a board member"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Errorw("Failed to upgrade connection",
			"user_id", userID,
			"error", err,
		)
		return
	}
	defer conn.Close()

	client := &Client{
		hub:     h,
		conn:    conn,
		ID:      generateClientID(),
		UserID:  userID,
		BoardID: boardID,
		send:    make(chan utils.Event, 16),
	}

	h.register <- client
	go client.writePump()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
	h.unregister <- client
}
