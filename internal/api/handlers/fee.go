package handlers

import (
	"net/http"

	"schoolpay-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FeeHandler handles HTTP requests for fees
type FeeHandler struct {
	service service.FeeServiceInterface
}

// NewFeeHandler creates a new fee handler
func NewFeeHandler(service service.FeeServiceInterface) *FeeHandler {
	return &FeeHandler{service: service}
}

// CreateFee handles POST /api/fees
func (h *FeeHandler) CreateFee(c *gin.Context) {
	var req service.CreateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	fee, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to Add Fee")
		return
	}

	c.JSON(http.StatusCreated, fee)
}

// ListFees handles GET /api/fees?org_id=...
func (h *FeeHandler) ListFees(c *gin.Context) {
	orgID := c.Query("org_id")
	if orgID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Organization ID is required."})
		return
	}

	fees, err := h.service.ListByOrganization(c.Request.Context(), orgID)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch fees.")
		return
	}

	c.JSON(http.StatusOK, fees)
}

// UpdateFee handles PUT /api/fees/:id
func (h *FeeHandler) UpdateFee(c *gin.Context) {
	id := c.Param("id")

	var req service.UpdateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		respondServiceError(c, err, "Failed to update fee")
		return
	}

	// 201 on update/delete mirrors the contract the payment frontend relies on
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// DeleteFee handles DELETE /api/fees/:id
func (h *FeeHandler) DeleteFee(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Failed to delete fee")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}
