package httpHandler

import (
	"net/http"

	"estate-server/entities"
	"estate-server/usecases"

	"github.com/gin-gonic/gin"
)

type DeveloperHandler struct {
	useCase *usecases.DeveloperUseCase
	chat    *usecases.ChatUseCase
}

func NewDeveloperHandler(useCase *usecases.DeveloperUseCase, chat *usecases.ChatUseCase) *DeveloperHandler {
	return &DeveloperHandler{useCase: useCase, chat: chat}
}

// GetAll handles GET /api/v1/developers
func (h *DeveloperHandler) GetAll(c *gin.Context) {
	devs, err := h.useCase.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve developers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": devs, "count": len(devs)})
}

// Get handles GET /api/v1/developers/:id
func (h *DeveloperHandler) Get(c *gin.Context) {
	dev, err := h.useCase.Get(c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "developer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dev})
}

// Create handles POST /api/v1/developers (developer role)
func (h *DeveloperHandler) Create(c *gin.Context) {
	var dev entities.Developer
	if err := c.ShouldBindJSON(&dev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.useCase.Create(c.GetString("user_id"), &dev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "developer profile created", "data": dev})
}

// Update handles PUT /api/v1/developers/:id (owner or admin)
func (h *DeveloperHandler) Update(c *gin.Context) {
	var changes entities.Developer
	if err := c.ShouldBindJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	dev, err := h.useCase.Update(c.GetString("user_id"), c.GetString("user_role"), c.Param("id"), &changes)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "developer updated", "data": dev})
}

// GenerateOverview handles POST /api/v1/developers/:id/overview (owner
// or admin): generates and stores the profile overview text.
func (h *DeveloperHandler) GenerateOverview(c *gin.Context) {
	dev, err := h.useCase.Get(c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "developer not found"})
		return
	}

	overview, err := h.chat.DeveloperOverview(c.Request.Context(), dev)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "overview generation failed"})
		return
	}

	updated, err := h.useCase.Update(c.GetString("user_id"), c.GetString("user_role"), dev.ID, &entities.Developer{Overview: overview})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": updated})
}
