package httpHandler

import (
	"net/http"

	"estate-server/entities"
	"estate-server/usecases"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	useCase *usecases.ProfileUseCase
}

func NewProfileHandler(useCase *usecases.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{useCase: useCase}
}

// Get handles GET /api/v1/profiles/me. A user without a saved profile
// gets an empty object, not a 404.
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.useCase.Get(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusOK, gin.H{"data": gin.H{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": profile})
}

// Save handles PUT /api/v1/profiles/me
func (h *ProfileHandler) Save(c *gin.Context) {
	var profile entities.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.useCase.Save(c.GetString("user_id"), &profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile saved", "data": profile})
}
