package service

import (
	"context"
	"fmt"

	"schoolpay-backend/internal/database/models"
	"schoolpay-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// FeeService handles business logic for fees
type FeeService struct {
	repo      repository.FeeRepositoryInterface
	validator *validator.Validate
}

// NewFeeService creates a new fee service
func NewFeeService(repo repository.FeeRepositoryInterface, validator *validator.Validate) *FeeService {
	return &FeeService{
		repo:      repo,
		validator: validator,
	}
}

// CreateFeeRequest represents the request to create a fee
type CreateFeeRequest struct {
	Title       string  `json:"title" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
	OrgID       string  `json:"org_id" validate:"required"`
}

// UpdateFeeRequest represents a partial fee update
type UpdateFeeRequest struct {
	Title       string  `json:"title" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
}

// FeeResponse represents the response for fee operations
type FeeResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	OrgID       string  `json:"org_id"`
}

// Create creates a new fee for an organization
func (s *FeeService) Create(ctx context.Context, req *CreateFeeRequest) (*FeeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	fee := &models.Fee{
		Title:       req.Title,
		Amount:      req.Amount,
		Description: req.Description,
		OrgID:       req.OrgID,
	}

	if err := s.repo.Create(ctx, fee); err != nil {
		return nil, err
	}

	return toFeeResponse(fee), nil
}

// ListByOrganization returns the fees for one organization
func (s *FeeService) ListByOrganization(ctx context.Context, orgID string) ([]FeeResponse, error) {
	fees, err := s.repo.GetByOrganizationID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	responses := make([]FeeResponse, 0, len(fees))
	for i := range fees {
		responses = append(responses, *toFeeResponse(&fees[i]))
	}
	return responses, nil
}

// Update replaces a fee's title, amount and description
func (s *FeeService) Update(ctx context.Context, id string, req *UpdateFeeRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return s.repo.Update(ctx, id, map[string]interface{}{
		"title":       req.Title,
		"amount":      req.Amount,
		"description": req.Description,
	})
}

// Delete removes a fee
func (s *FeeService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func toFeeResponse(fee *models.Fee) *FeeResponse {
	return &FeeResponse{
		ID:          fee.ID,
		Title:       fee.Title,
		Amount:      fee.Amount,
		Description: fee.Description,
		OrgID:       fee.OrgID,
	}
}
