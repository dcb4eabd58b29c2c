package httpHandler

import (
	"errors"
	"net/http"
	"strconv"

	"estate-server/entities"
	"estate-server/repositories"
	"estate-server/services"
	"estate-server/usecases"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	store    *usecases.PropertyStore
	useCase  *usecases.PropertyUseCase
	profiles *usecases.ProfileUseCase
	chat     *usecases.ChatUseCase
	places   *services.PlacesClient
}

func NewPropertyHandler(
	store *usecases.PropertyStore,
	useCase *usecases.PropertyUseCase,
	profiles *usecases.ProfileUseCase,
	chat *usecases.ChatUseCase,
	places *services.PlacesClient,
) *PropertyHandler {
	return &PropertyHandler{
		store:    store,
		useCase:  useCase,
		profiles: profiles,
		chat:     chat,
		places:   places,
	}
}

// Search handles GET /api/v1/properties
func (h *PropertyHandler) Search(c *gin.Context) {
	q := repositories.PropertySearch{Location: c.Query("location")}
	if v := c.Query("max_price"); v != "" {
		q.MaxPrice, _ = strconv.ParseFloat(v, 64)
	}
	if v := c.Query("min_bedrooms"); v != "" {
		q.MinBedrooms, _ = strconv.Atoi(v)
	}
	if v := c.Query("limit"); v != "" {
		q.Limit, _ = strconv.Atoi(v)
	}

	properties, err := h.store.Search(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search properties"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": properties, "count": len(properties)})
}

// Get handles GET /api/v1/properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	property := h.store.GetPropertyByID(c.Param("id"))
	if property == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": property})
}

// Match handles GET /api/v1/properties/:id/match (authorized). Responds
// with scored=false when the caller has no saved preferences.
func (h *PropertyHandler) Match(c *gin.Context) {
	property := h.store.GetPropertyByID(c.Param("id"))
	if property == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		return
	}

	profile, err := h.profiles.Get(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load preferences"})
		return
	}

	score, ok := usecases.MatchScore(profile, property)
	c.JSON(http.StatusOK, gin.H{"score": score, "scored": ok})
}

// Nearby handles GET /api/v1/properties/:id/nearby
func (h *PropertyHandler) Nearby(c *gin.Context) {
	property := h.store.GetPropertyByID(c.Param("id"))
	if property == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		return
	}
	if property.Latitude == nil || property.Longitude == nil {
		c.JSON(http.StatusOK, gin.H{"data": []services.Place{}, "count": 0})
		return
	}

	category := c.DefaultQuery("category", "school")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	placesList, err := h.places.Nearby(c.Request.Context(), *property.Latitude, *property.Longitude, category, limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "nearby lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": placesList, "count": len(placesList)})
}

// Create handles POST /api/v1/properties (developer)
func (h *PropertyHandler) Create(c *gin.Context) {
	var property entities.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.useCase.Create(c.GetString("user_id"), &property); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, usecases.ErrForbidden) {
			status = http.StatusForbidden
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "property created", "data": property})
}

// Update handles PUT /api/v1/properties/:id (developer)
func (h *PropertyHandler) Update(c *gin.Context) {
	var property entities.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	property.ID = c.Param("id")

	updated, err := h.useCase.Update(c.GetString("user_id"), c.GetString("user_role"), &property)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	h.store.InvalidateProperty(property.ID)
	c.JSON(http.StatusOK, gin.H{"message": "property updated", "data": updated})
}

// Delete handles DELETE /api/v1/properties/:id (developer)
func (h *PropertyHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.useCase.Delete(c.GetString("user_id"), c.GetString("user_role"), id); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	h.store.InvalidateProperty(id)
	c.JSON(http.StatusOK, gin.H{"message": "property deleted"})
}

// GenerateOverview handles POST /api/v1/properties/:id/overview
// (developer): generates and stores the location overview blob.
func (h *PropertyHandler) GenerateOverview(c *gin.Context) {
	id := c.Param("id")
	property := h.store.GetPropertyByID(id)
	if property == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		return
	}

	overview, err := h.chat.LocationOverview(c.Request.Context(), property)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "overview generation failed"})
		return
	}

	updated, err := h.useCase.SetOverview(c.GetString("user_id"), c.GetString("user_role"), id, overview)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	h.store.InvalidateProperty(id)
	c.JSON(http.StatusOK, gin.H{"data": updated})
}

// ListMine handles GET /api/v1/developers/me/properties (developer)
func (h *PropertyHandler) ListMine(c *gin.Context) {
	properties, err := h.useCase.ListByOwner(c.GetString("user_id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": properties, "count": len(properties)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, usecases.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecases.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}
