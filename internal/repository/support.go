package repository

import (
	"context"
	"fmt"
	"time"

	"schoolpay-backend/internal/database/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// SupportRepository handles document operations for the support collection
type SupportRepository struct {
	collection *mongo.Collection
}

// NewSupportRepository creates a new support complaint repository
func NewSupportRepository(db *mongo.Database) *SupportRepository {
	return &SupportRepository{collection: db.Collection(models.CollectionSupport)}
}

// Create appends a support complaint, generating its id
func (r *SupportRepository) Create(ctx context.Context, complaint *models.SupportComplaint) error {
	if complaint.ID == "" {
		complaint.ID = uuid.New().String()
	}
	complaint.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, complaint); err != nil {
		return fmt.Errorf("insert support complaint: %w", err)
	}
	return nil
}
