package handlers

import (
	"net/http"

	"schoolpay-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MessageHandler handles HTTP requests for chat messages
type MessageHandler struct {
	service service.MessageServiceInterface
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(service service.MessageServiceInterface) *MessageHandler {
	return &MessageHandler{service: service}
}

// CreateMessage handles POST /api/message
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req service.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.Create(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err, "Failed to store message")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message stored successfully!"})
}
