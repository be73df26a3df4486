package service

import (
	"context"
	"fmt"
	"time"

	"schoolpay-backend/internal/database/models"
	"schoolpay-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// UserService handles business logic for users
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// CreateUserRequest represents the request to register a user
type CreateUserRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	Surname   string `json:"surname" validate:"required"`
	Firstname string `json:"firstname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
}

// CreateUserResponse echoes the stored registration fields
type CreateUserResponse struct {
	ID        string `json:"id"`
	Surname   string `json:"surname"`
	Firstname string `json:"firstname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// UserResponse represents a full user document
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Surname   string `json:"surname"`
	Firstname string `json:"firstname"`
	Phone     string `json:"phone"`
	OrgStatus string `json:"org_status"`
	OrgID     string `json:"org_id,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// ContactResponse represents a chat contact entry
type ContactResponse struct {
	ID        string `json:"id"`
	Surname   string `json:"surname"`
	Firstname string `json:"firstname"`
	Email     string `json:"email"`
}

// Create registers a new user. The caller-supplied user_id becomes the
// document id; org_status starts out "false" until an organization is
// activated for the user.
func (s *UserService) Create(ctx context.Context, req *CreateUserRequest) (*CreateUserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user := &models.User{
		UID:       req.UserID,
		Email:     req.Email,
		Surname:   req.Surname,
		Firstname: req.Firstname,
		Phone:     req.Phone,
		OrgStatus: "false",
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &CreateUserResponse{
		ID:        user.UID,
		Surname:   user.Surname,
		Firstname: user.Firstname,
		Email:     user.Email,
		Phone:     user.Phone,
	}, nil
}

// GetByID retrieves a user by uid
func (s *UserService) GetByID(ctx context.Context, uid string) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListContacts returns every registered user except the caller
func (s *UserService) ListContacts(ctx context.Context, uid string) ([]ContactResponse, error) {
	users, err := s.repo.ListExcluding(ctx, uid)
	if err != nil {
		return nil, err
	}

	contacts := make([]ContactResponse, 0, len(users))
	for _, user := range users {
		contacts = append(contacts, ContactResponse{
			ID:        user.UID,
			Surname:   user.Surname,
			Firstname: user.Firstname,
			Email:     user.Email,
		})
	}
	return contacts, nil
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.UID,
		Email:     user.Email,
		Surname:   user.Surname,
		Firstname: user.Firstname,
		Phone:     user.Phone,
		OrgStatus: user.OrgStatus,
		OrgID:     user.OrgID,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
