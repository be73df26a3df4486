package service

import (
	"context"
	"fmt"

	"schoolpay-backend/internal/database/models"
	"schoolpay-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// TransactionService handles business logic for transactions
type TransactionService struct {
	repo      repository.TransactionRepositoryInterface
	validator *validator.Validate
}

// NewTransactionService creates a new transaction service
func NewTransactionService(repo repository.TransactionRepositoryInterface, validator *validator.Validate) *TransactionService {
	return &TransactionService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTransactionRequest represents the request to record a transaction.
// Description is the only optional field; everything else comes straight from
// the payment provider callback.
type CreateTransactionRequest struct {
	UserID      string  `json:"user_id" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Name        string  `json:"name" validate:"required"`
	Status      string  `json:"status" validate:"required"`
	Reference   string  `json:"reference" validate:"required"`
	Description string  `json:"description"`
	To          string  `json:"to" validate:"required"`
	OrgID       string  `json:"org_id" validate:"required"`
}

// TransactionResponse represents the response for a recorded transaction
type TransactionResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Email       string  `json:"email"`
	Amount      float64 `json:"amount"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	Reference   string  `json:"reference"`
	Description string  `json:"description,omitempty"`
}

// Create appends a transaction record
func (s *TransactionService) Create(ctx context.Context, req *CreateTransactionRequest) (*TransactionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	transaction := &models.Transaction{
		UserID:      req.UserID,
		Email:       req.Email,
		Amount:      req.Amount,
		Name:        req.Name,
		Status:      req.Status,
		Reference:   req.Reference,
		Description: req.Description,
		To:          req.To,
		OrgID:       req.OrgID,
	}

	if err := s.repo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	return &TransactionResponse{
		ID:          transaction.ID,
		UserID:      transaction.UserID,
		Email:       transaction.Email,
		Amount:      transaction.Amount,
		Name:        transaction.Name,
		Status:      transaction.Status,
		Reference:   transaction.Reference,
		Description: transaction.Description,
	}, nil
}
