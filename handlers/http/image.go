package httpHandler

import (
	"net/http"

	"estate-server/entities"
	"estate-server/repositories"
	"estate-server/services"
	"estate-server/usecases"

	"github.com/gin-gonic/gin"
)

type ImageHandler struct {
	images     repositories.ImageRepository
	store      *services.ImageStore
	properties *usecases.PropertyUseCase
}

func NewImageHandler(images repositories.ImageRepository, store *services.ImageStore, properties *usecases.PropertyUseCase) *ImageHandler {
	return &ImageHandler{images: images, store: store, properties: properties}
}

// List handles GET /api/v1/properties/:id/images
func (h *ImageHandler) List(c *gin.Context) {
	images, err := h.images.GetByPropertyID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve images"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": images, "count": len(images)})
}

// Upload handles POST /api/v1/properties/:id/images (developer):
// multipart form with an "image" file.
func (h *ImageHandler) Upload(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}

	propertyID := c.Param("id")
	if err := h.authorize(c, propertyID); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image file"})
		return
	}
	defer file.Close()

	url, publicID, err := h.store.Upload(c.Request.Context(), propertyID, file)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "image upload failed"})
		return
	}

	img := &entities.PropertyImage{
		PropertyID: propertyID,
		PublicID:   publicID,
		URL:        url,
	}
	if err := h.images.Create(img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save image metadata"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": img})
}

// Delete handles DELETE /api/v1/properties/:id/images/:imageId (developer)
func (h *ImageHandler) Delete(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}

	if err := h.authorize(c, c.Param("id")); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	img, err := h.images.GetByID(c.Param("imageId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
		return
	}

	if err := h.store.Delete(c.Request.Context(), img.PublicID); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "image deletion failed"})
		return
	}
	if err := h.images.Delete(img.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete image metadata"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "image deleted"})
}

// authorize applies the same ownership rule as property mutation.
func (h *ImageHandler) authorize(c *gin.Context, propertyID string) error {
	return h.properties.Authorize(c.GetString("user_id"), c.GetString("user_role"), propertyID)
}
