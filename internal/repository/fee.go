package repository

import (
	"context"
	"fmt"
	"time"

	"schoolpay-backend/internal/database/models"
	apperrors "schoolpay-backend/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FeeRepository handles document operations for the fees collection
type FeeRepository struct {
	collection *mongo.Collection
}

// NewFeeRepository creates a new fee repository and ensures the org_id index
// backing the fees-by-organization listing.
func NewFeeRepository(db *mongo.Database) *FeeRepository {
	collection := db.Collection(models.CollectionFees)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, _ = collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "org_id", Value: 1}},
		Options: options.Index().SetName("idx_fees_org_id"),
	})

	return &FeeRepository{collection: collection}
}

// Create inserts a fee document, generating its id
func (r *FeeRepository) Create(ctx context.Context, fee *models.Fee) error {
	if fee.ID == "" {
		fee.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	fee.CreatedAt = now
	fee.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, fee); err != nil {
		return fmt.Errorf("insert fee: %w", err)
	}
	return nil
}

// GetByOrganizationID returns every fee whose org_id matches. A missing or
// fee-less organization yields an empty slice, not an error.
func (r *FeeRepository) GetByOrganizationID(ctx context.Context, orgID string) ([]models.Fee, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"org_id": orgID})
	if err != nil {
		return nil, fmt.Errorf("list fees: %w", err)
	}
	defer cursor.Close(ctx)

	fees := []models.Fee{}
	if err := cursor.All(ctx, &fees); err != nil {
		return nil, fmt.Errorf("decode fees: %w", err)
	}
	return fees, nil
}

// Update applies a partial update to a fee document and bumps updatedAt
func (r *FeeRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for field, value := range updates {
		set[field] = value
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update fee: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrFeeNotFound
	}
	return nil
}

// Delete removes a fee document
func (r *FeeRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete fee: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrFeeNotFound
	}
	return nil
}
