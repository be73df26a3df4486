package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"schoolpay-backend/internal/database/models"
	apperrors "schoolpay-backend/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrganizationRepository handles document operations for the organizations collection
type OrganizationRepository struct {
	collection *mongo.Collection
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *mongo.Database) *OrganizationRepository {
	return &OrganizationRepository{collection: db.Collection(models.CollectionOrganizations)}
}

// Create inserts an organization document, generating its id
func (r *OrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	if org.ID == "" {
		org.ID = uuid.New().String()
	}
	org.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, org); err != nil {
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

// GetByID fetches a single organization by id
func (r *OrganizationRepository) GetByID(ctx context.Context, id string) (*models.Organization, error) {
	var org models.Organization
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&org)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("find organization: %w", err)
	}
	return &org, nil
}

// Delete removes an organization document. Used as the compensating action
// when the owner back-reference write fails during activation.
func (r *OrganizationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete organization: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrOrganizationNotFound
	}
	return nil
}
