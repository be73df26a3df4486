package service

import (
	"context"
	"fmt"

	"schoolpay-backend/internal/database/models"
	"schoolpay-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// SupportService handles business logic for support complaints
type SupportService struct {
	repo      repository.SupportRepositoryInterface
	validator *validator.Validate
}

// NewSupportService creates a new support service
func NewSupportService(repo repository.SupportRepositoryInterface, validator *validator.Validate) *SupportService {
	return &SupportService{
		repo:      repo,
		validator: validator,
	}
}

// CreateComplaintRequest represents a support form submission
type CreateComplaintRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Complaint string `json:"complaint" validate:"required"`
}

// Submit stores a support complaint
func (s *SupportService) Submit(ctx context.Context, req *CreateComplaintRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return s.repo.Create(ctx, &models.SupportComplaint{
		Name:      req.Name,
		Email:     req.Email,
		Complaint: req.Complaint,
	})
}
