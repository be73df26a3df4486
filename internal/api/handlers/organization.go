package handlers

import (
	"net/http"

	"schoolpay-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for organization activation
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// ActivateOrganization handles POST /api/org
func (h *OrganizationHandler) ActivateOrganization(c *gin.Context) {
	var req service.ActivateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	org, err := h.service.Activate(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to Add Organization to database")
		return
	}

	c.JSON(http.StatusCreated, org)
}
