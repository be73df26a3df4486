package service

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Create(ctx context.Context, req *CreateUserRequest) (*CreateUserResponse, error)
	GetByID(ctx context.Context, uid string) (*UserResponse, error)
	ListContacts(ctx context.Context, uid string) ([]ContactResponse, error)
}

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Activate(ctx context.Context, req *ActivateOrganizationRequest) (*OrganizationResponse, error)
}

// FeeServiceInterface defines the interface for fee service
type FeeServiceInterface interface {
	Create(ctx context.Context, req *CreateFeeRequest) (*FeeResponse, error)
	ListByOrganization(ctx context.Context, orgID string) ([]FeeResponse, error)
	Update(ctx context.Context, id string, req *UpdateFeeRequest) error
	Delete(ctx context.Context, id string) error
}

// TransactionServiceInterface defines the interface for transaction service
type TransactionServiceInterface interface {
	Create(ctx context.Context, req *CreateTransactionRequest) (*TransactionResponse, error)
}

// SupportServiceInterface defines the interface for support complaint service
type SupportServiceInterface interface {
	Submit(ctx context.Context, req *CreateComplaintRequest) error
}

// MessageServiceInterface defines the interface for message service
type MessageServiceInterface interface {
	Create(ctx context.Context, req *CreateMessageRequest) error
}
