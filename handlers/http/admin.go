package httpHandler

import (
	"net/http"

	"estate-server/usecases"
	"estate-server/ws"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes operational introspection: cache counters, the
// store's recorded error state and current event subscribers.
type AdminHandler struct {
	store  *usecases.PropertyStore
	events *ws.Manager
}

func NewAdminHandler(store *usecases.PropertyStore, events *ws.Manager) *AdminHandler {
	return &AdminHandler{store: store, events: events}
}

// CacheStats handles GET /api/v1/admin/cache/stats
func (h *AdminHandler) CacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"stats":      h.store.CacheStats(),
		"last_error": h.store.LastError(),
	})
}

// ClearError handles POST /api/v1/admin/errors/clear
func (h *AdminHandler) ClearError(c *gin.Context) {
	h.store.ClearError()
	c.JSON(http.StatusOK, gin.H{"message": "error state cleared"})
}

// Subscribers handles GET /api/v1/admin/subscribers
func (h *AdminHandler) Subscribers(c *gin.Context) {
	users := h.events.Users()
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}
