package repository

import (
	"context"

	"schoolpay-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, uid string) (*models.User, error)
	ListExcluding(ctx context.Context, uid string) ([]models.User, error)
	SetOrganization(ctx context.Context, uid, orgID, orgStatus string) error
}

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(ctx context.Context, org *models.Organization) error
	GetByID(ctx context.Context, id string) (*models.Organization, error)
	Delete(ctx context.Context, id string) error
}

// FeeRepositoryInterface defines the interface for fee repository operations
type FeeRepositoryInterface interface {
	Create(ctx context.Context, fee *models.Fee) error
	GetByOrganizationID(ctx context.Context, orgID string) ([]models.Fee, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// TransactionRepositoryInterface defines the interface for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, transaction *models.Transaction) error
}

// SupportRepositoryInterface defines the interface for support complaint repository operations
type SupportRepositoryInterface interface {
	Create(ctx context.Context, complaint *models.SupportComplaint) error
}

// MessageRepositoryInterface defines the interface for message repository operations
type MessageRepositoryInterface interface {
	Create(ctx context.Context, message *models.Message) error
}
