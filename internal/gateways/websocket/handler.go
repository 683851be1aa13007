package websocket

import (
	"net/http"

	"backend/internal/app/member"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// MemberResolver validates the session key carried in the upgrade request.
type MemberResolver interface {
	GetBySessionKey(sessionKey string) (*member.Member, error)
}

func (h *Hub) ServeWS(resolver MemberResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionKey := c.Query("session_key")
		if sessionKey == "" {
			h.logger.Warnw("WebSocket connection rejected: session_key missing",
				"client_ip", c.ClientIP(),
			)
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_key is required"})
			return
		}

		m, err := resolver.GetBySessionKey(sessionKey)
		if err != nil {
			h.logger.Warnw("WebSocket connection rejected: invalid session",
				"client_ip", c.ClientIP(),
			)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			h.logger.Errorw("Failed to upgrade connection",
				"login_id", m.LoginID,
				"error", err,
			)
			return
		}

		client := &Client{
			hub:     h,
			conn:    conn,
			LoginID: m.LoginID,
			Name:    m.Name,
			send:    make(chan interface{}, 16),
		}

		h.register <- client
		go client.writeLoop()
		client.readLoop()
	}
}

func (c *Client) writeLoop() {
	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

func (c *Client) readLoop() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
