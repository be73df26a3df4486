package service

import (
	"context"
	"fmt"

	"schoolpay-backend/internal/database/models"
	"schoolpay-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// MessageService handles business logic for chat messages
type MessageService struct {
	repo      repository.MessageRepositoryInterface
	validator *validator.Validate
}

// NewMessageService creates a new message service
func NewMessageService(repo repository.MessageRepositoryInterface, validator *validator.Validate) *MessageService {
	return &MessageService{
		repo:      repo,
		validator: validator,
	}
}

// CreateMessageRequest represents a chat message write. The client generates
// the id before sending so resends of the same message are rejected as
// duplicates rather than stored twice.
type CreateMessageRequest struct {
	ID         string `json:"id" validate:"required"`
	ToUserID   string `json:"to_user_id" validate:"required"`
	FromUserID string `json:"from_user_id" validate:"required"`
	Text       string `json:"text" validate:"required"`
	Timestamp  string `json:"timestamp" validate:"required"`
	Status     string `json:"status" validate:"required"`
}

// Create stores a chat message
func (s *MessageService) Create(ctx context.Context, req *CreateMessageRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return s.repo.Create(ctx, &models.Message{
		ID:         req.ID,
		ToUserID:   req.ToUserID,
		FromUserID: req.FromUserID,
		Text:       req.Text,
		Timestamp:  req.Timestamp,
		Status:     req.Status,
	})
}
