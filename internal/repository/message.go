package repository

import (
	"context"
	"fmt"
	"time"

	"schoolpay-backend/internal/database/models"
	apperrors "schoolpay-backend/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MessageRepository handles document operations for the messages collection
type MessageRepository struct {
	collection *mongo.Collection
}

// NewMessageRepository creates a new message repository and ensures the
// recipient index used by unread counters.
func NewMessageRepository(db *mongo.Database) *MessageRepository {
	collection := db.Collection(models.CollectionMessages)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, _ = collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "to_user_id", Value: 1}, {Key: "unread", Value: 1}},
		Options: options.Index().SetName("idx_messages_to_unread"),
	})

	return &MessageRepository{collection: collection}
}

// Create stores a chat message keyed by the client-supplied id. Unread is
// forced true on write regardless of what the caller sent.
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	message.Unread = true
	message.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, message); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrMessageExists
		}
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}
