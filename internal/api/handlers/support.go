package handlers

import (
	"net/http"

	"schoolpay-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SupportHandler handles HTTP requests for support complaints
type SupportHandler struct {
	service service.SupportServiceInterface
}

// NewSupportHandler creates a new support handler
func NewSupportHandler(service service.SupportServiceInterface) *SupportHandler {
	return &SupportHandler{service: service}
}

// SubmitComplaint handles POST /api/support
func (h *SupportHandler) SubmitComplaint(c *gin.Context) {
	var req service.CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.Submit(c.Request.Context(), &req); err != nil {
		respondServiceError(c, err, "Failed to submit complaint.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Complaint submitted successfully!"})
}
