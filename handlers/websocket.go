package handlers

import (
	"log"
	"net/http"

	"estate-server/usecases"
	"estate-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WSHandler subscribes authenticated users to their event feed.
type WSHandler struct {
	mgr    *ws.Manager
	secret []byte
}

func NewWSHandler(mgr *ws.Manager, secret []byte) *WSHandler {
	return &WSHandler{mgr: mgr, secret: secret}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleUserWS upgrades to websocket and keeps the connection registered
// until the client goes away. Events are pushed by the server; inbound
// frames are read only to detect disconnection.
// GET /ws?token=<access token>
func (h *WSHandler) HandleUserWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing token"})
		return
	}

	userID, _, err := usecases.ParseToken(h.secret, token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.mgr.Register(userID, conn)
	log.Printf("user subscribed: %s", userID)

	defer func() {
		h.mgr.Unregister(userID, conn)
		log.Printf("user unsubscribed: %s", userID)
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("user %s closed connection", userID)
			} else {
				log.Printf("read error from %s: %v", userID, err)
			}
			return
		}
	}
}
