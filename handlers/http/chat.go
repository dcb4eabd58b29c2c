package httpHandler

import (
	"net/http"

	"estate-server/usecases"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	useCase *usecases.ChatUseCase
}

func NewChatHandler(useCase *usecases.ChatUseCase) *ChatHandler {
	return &ChatHandler{useCase: useCase}
}

type startSessionRequest struct {
	Title string `json:"title"`
}

// StartSession handles POST /api/v1/chat/sessions
func (h *ChatHandler) StartSession(c *gin.Context) {
	var req startSessionRequest
	_ = c.ShouldBindJSON(&req)

	session, err := h.useCase.StartSession(c.GetString("user_id"), req.Title)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": session})
}

// ListSessions handles GET /api/v1/chat/sessions
func (h *ChatHandler) ListSessions(c *gin.Context) {
	sessions, err := h.useCase.ListSessions(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve sessions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sessions, "count": len(sessions)})
}

// Messages handles GET /api/v1/chat/sessions/:id/messages
func (h *ChatHandler) Messages(c *gin.Context) {
	messages, err := h.useCase.Messages(c.GetString("user_id"), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": messages, "count": len(messages)})
}

type sendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// Send handles POST /api/v1/chat/sessions/:id/messages
func (h *ChatHandler) Send(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reply, err := h.useCase.Send(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req.Content)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": reply})
}

type emiRequest struct {
	Price       float64 `json:"price" binding:"required"`
	DownPayment float64 `json:"down_payment"`
	Years       int     `json:"years"`
}

// EMIAdvice handles POST /api/v1/chat/advice/emi
func (h *ChatHandler) EMIAdvice(c *gin.Context) {
	var req emiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Years <= 0 {
		req.Years = 20
	}

	advice, err := h.useCase.EMIAdvice(c.Request.Context(), req.Price, req.DownPayment, req.Years)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "advice generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"advice": advice})
}

type vaastuRequest struct {
	Description string `json:"description" binding:"required"`
}

// VaastuAnalysis handles POST /api/v1/chat/advice/vaastu
func (h *ChatHandler) VaastuAnalysis(c *gin.Context) {
	var req vaastuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	analysis, err := h.useCase.VaastuAnalysis(c.Request.Context(), req.Description)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "analysis generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}
