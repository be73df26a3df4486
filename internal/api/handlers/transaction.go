package handlers

import (
	"net/http"

	"schoolpay-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TransactionHandler handles HTTP requests for transactions
type TransactionHandler struct {
	service service.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(service service.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// CreateTransaction handles POST /api/transactions
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req service.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	transaction, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to Store Transaction")
		return
	}

	c.JSON(http.StatusCreated, transaction)
}
