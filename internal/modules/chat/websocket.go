package chat

import (
	"net/http"

	jwtsvc "guestnest/internal/pkg/jwt"
	"guestnest/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // Allow all origins (configure in prod)
}

type WSHandler struct {
	hub *Hub
	jwt *jwtsvc.Service
}

func NewWSHandler(hub *Hub, jwt *jwtsvc.Service) *WSHandler {
	return &WSHandler{
		hub: hub,
		jwt: jwt,
	}
}

// HandleWebSocket upgrades the connection and hands it to the hub.
//
// Endpoint: GET /ws/chat?token=JWT
// The token travels as a query parameter because browsers cannot set headers
// on websocket handshakes.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token is required. Use ?token=YOUR_JWT_TOKEN")
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		return
	}

	h.hub.ServeConn(conn, claims.UserID)
}
