package httpHandler

import (
	"net/http"

	"estate-server/entities"
	"estate-server/usecases"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	useCase *usecases.BlogUseCase
}

func NewBlogHandler(useCase *usecases.BlogUseCase) *BlogHandler {
	return &BlogHandler{useCase: useCase}
}

// List handles GET /api/v1/blog
func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.useCase.ListPublished()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve posts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": posts, "count": len(posts)})
}

// Get handles GET /api/v1/blog/:id
func (h *BlogHandler) Get(c *gin.Context) {
	post, err := h.useCase.Get(c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": post})
}

// Create handles POST /api/v1/blog (admin)
func (h *BlogHandler) Create(c *gin.Context) {
	var post entities.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.useCase.Create(c.GetString("user_id"), &post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "post created", "data": post})
}
