package handlers

import (
	"net/http"

	"schoolpay-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for users and contacts
type UserHandler struct {
	service service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	user, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to Add User to database")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUser handles GET /api/user/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	uid := c.Param("id")

	user, err := h.service.GetByID(c.Request.Context(), uid)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetContacts handles GET /api/contacts/:uid
func (h *UserHandler) GetContacts(c *gin.Context) {
	uid := c.Param("uid")

	contacts, err := h.service.ListContacts(c.Request.Context(), uid)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch contacts")
		return
	}

	c.JSON(http.StatusOK, contacts)
}
