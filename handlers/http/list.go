package httpHandler

import (
	"net/http"

	"estate-server/usecases"

	"github.com/gin-gonic/gin"
)

// ListHandler serves the wishlist and compare endpoints. Both lists share
// one code path; the route group decides which list a request targets.
type ListHandler struct {
	store *usecases.PropertyStore
}

func NewListHandler(store *usecases.PropertyStore) *ListHandler {
	return &ListHandler{store: store}
}

func (h *ListHandler) list(name string) *usecases.ListUseCase {
	if name == "compare" {
		return h.store.Compare()
	}
	return h.store.Wishlist()
}

// Get handles GET /api/v1/lists/:list
func (h *ListHandler) Get(c *gin.Context) {
	ids, err := h.list(c.Param("list")).GetList(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load list"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": ids, "count": len(ids)})
}

// Add handles POST /api/v1/lists/:list/:propertyId. A full list is not
// an error: the response carries added=false and the capacity so the
// client can show "list full" messaging.
func (h *ListHandler) Add(c *gin.Context) {
	userID := c.GetString("user_id")
	propertyID := c.Param("propertyId")

	var added bool
	var err error
	if c.Param("list") == "compare" {
		added, err = h.store.AddToCompare(userID, propertyID)
	} else {
		added, err = h.store.AddToWishlist(userID, propertyID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update list"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"added":    added,
		"capacity": h.list(c.Param("list")).Capacity(),
	})
}

// Remove handles DELETE /api/v1/lists/:list/:propertyId. Best-effort;
// always responds 200.
func (h *ListHandler) Remove(c *gin.Context) {
	userID := c.GetString("user_id")
	propertyID := c.Param("propertyId")

	if c.Param("list") == "compare" {
		h.store.RemoveFromCompare(userID, propertyID)
	} else {
		h.store.RemoveFromWishlist(userID, propertyID)
	}
	c.JSON(http.StatusOK, gin.H{"removed": propertyID})
}

// Contains handles GET /api/v1/lists/:list/contains/:propertyId
func (h *ListHandler) Contains(c *gin.Context) {
	userID := c.GetString("user_id")
	propertyID := c.Param("propertyId")

	var member bool
	if c.Param("list") == "compare" {
		member = h.store.IsInCompareList(userID, propertyID)
	} else {
		member = h.store.IsInWishlist(userID, propertyID)
	}
	c.JSON(http.StatusOK, gin.H{"member": member})
}

type membershipRequest struct {
	PropertyIDs []string `json:"property_ids" binding:"required"`
}

// Membership handles POST /api/v1/lists/:list/membership: the batched
// form of Contains, one round trip for a whole page of property cards.
func (h *ListHandler) Membership(c *gin.Context) {
	var req membershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var result map[string]bool
	var err error
	if c.Param("list") == "compare" {
		result, err = h.store.CompareMembership(c.GetString("user_id"), req.PropertyIDs)
	} else {
		result, err = h.store.WishlistMembership(c.GetString("user_id"), req.PropertyIDs)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check membership"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": result})
}
