package service

import (
	"context"
	"fmt"

	"schoolpay-backend/internal/database/models"
	"schoolpay-backend/internal/logger"
	"schoolpay-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// OrganizationService handles business logic for organization activation
type OrganizationService struct {
	repo      repository.OrganizationRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// ActivateOrganizationRequest represents the request to activate an organization
type ActivateOrganizationRequest struct {
	InstituteName string `json:"instituteName" validate:"required"`
	InstituteType string `json:"instituteType" validate:"required"`
	OtherType     string `json:"otherType" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	Address       string `json:"address" validate:"required"`
	Status        string `json:"status" validate:"required"`
	ReviewStatus  string `json:"review_status" validate:"required"`
	OwnerID       string `json:"owner_id" validate:"required"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID            string `json:"id"`
	InstituteName string `json:"instituteName"`
	InstituteType string `json:"instituteType"`
	OtherType     string `json:"otherType"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	OwnerID       string `json:"owner_id"`
	ReviewStatus  string `json:"review_status"`
}

// Activate creates the organization document and writes the back-reference
// onto the owner's user document. The two writes are not atomic in the
// document store, so a failed back-reference write triggers a compensating
// delete of the organization instead of leaving a half-activated state.
func (s *OrganizationService) Activate(ctx context.Context, req *ActivateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org := &models.Organization{
		InstituteName: req.InstituteName,
		InstituteType: req.InstituteType,
		OtherType:     req.OtherType,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		OwnerID:       req.OwnerID,
		ReviewStatus:  req.ReviewStatus,
	}

	if err := s.repo.Create(ctx, org); err != nil {
		return nil, err
	}

	if err := s.userRepo.SetOrganization(ctx, req.OwnerID, org.ID, req.Status); err != nil {
		if delErr := s.repo.Delete(ctx, org.ID); delErr != nil {
			logger.New().WithError(delErr).
				WithField("org_id", org.ID).
				Error("compensating organization delete failed, document orphaned")
		}
		return nil, fmt.Errorf("update owner organization status: %w", err)
	}

	return &OrganizationResponse{
		ID:            org.ID,
		InstituteName: org.InstituteName,
		InstituteType: org.InstituteType,
		OtherType:     org.OtherType,
		Email:         org.Email,
		Phone:         org.Phone,
		Address:       org.Address,
		OwnerID:       org.OwnerID,
		ReviewStatus:  org.ReviewStatus,
	}, nil
}
