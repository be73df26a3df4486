package repository

import (
	"context"
	"fmt"
	"time"

	"schoolpay-backend/internal/database/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TransactionRepository handles document operations for the transactions collection
type TransactionRepository struct {
	collection *mongo.Collection
}

// NewTransactionRepository creates a new transaction repository. A reference
// index on the provider reference keeps reconciliation lookups cheap.
func NewTransactionRepository(db *mongo.Database) *TransactionRepository {
	collection := db.Collection(models.CollectionTransactions)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, _ = collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "reference", Value: 1}},
		Options: options.Index().SetName("idx_transactions_reference"),
	})

	return &TransactionRepository{collection: collection}
}

// Create appends a transaction record, generating its id
func (r *TransactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if transaction.ID == "" {
		transaction.ID = uuid.New().String()
	}
	transaction.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, transaction); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}
