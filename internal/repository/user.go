package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"schoolpay-backend/internal/database/models"
	apperrors "schoolpay-backend/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository handles document operations for the users collection
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new user repository and ensures indexes
func NewUserRepository(db *mongo.Database) *UserRepository {
	collection := db.Collection(models.CollectionUsers)

	// Index creation is idempotent; failures here are non-fatal because the
	// index may already exist with different options on older deployments.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, _ = collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("idx_users_email"),
	})

	return &UserRepository{collection: collection}
}

// Create inserts a user document keyed by the caller-supplied uid
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now().UTC()
	if user.OrgStatus == "" {
		user.OrgStatus = "false"
	}

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches a single user by uid
func (r *UserRepository) GetByID(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": uid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// ListExcluding returns every user except the one with the given uid,
// newest first. Used to build the contact list for the chat feature.
func (r *UserRepository) ListExcluding(ctx context.Context, uid string) ([]models.User, error) {
	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$ne": uid}}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// SetOrganization writes the organization back-reference onto a user document
func (r *UserRepository) SetOrganization(ctx context.Context, uid, orgID, orgStatus string) error {
	update := bson.M{
		"$set": bson.M{
			"org_id":     orgID,
			"org_status": orgStatus,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": uid}, update)
	if err != nil {
		return fmt.Errorf("update user organization: %w", err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
