package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jalexanderII/todo-railway/models"
)

type userDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	UpdatedAt    time.Time          `bson:"updated_at,omitempty"`
	CreatedAt    time.Time          `bson:"created_at,omitempty"`
}

func (d *userDocument) toModel() *models.User {
	return &models.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		UpdatedAt:    d.UpdatedAt.UTC(),
		CreatedAt:    d.CreatedAt.UTC(),
	}
}

// CreateUser inserts a new user document. The unique username index turns
// a second registration into ErrDuplicate.
func (s *MongoStore) CreateUser(ctx context.Context, user *models.User) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	doc := userDocument{
		ID:           primitive.NewObjectID(),
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		UpdatedAt:    user.UpdatedAt,
		CreatedAt:    user.CreatedAt,
	}
	if _, err := s.Users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = doc.ID.Hex()
	return nil
}

// GetUserByUsername looks a user up by login name.
func (s *MongoStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findUser(ctx, bson.M{"username": username})
}

// GetUserByID looks a user up by hex ObjectID.
func (s *MongoStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.findUser(ctx, bson.M{"_id": oid})
}

func (s *MongoStore) findUser(ctx context.Context, filter bson.M) (*models.User, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var doc userDocument
	err := s.Users.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.l.WithError(err).Error("[UserDB] Error getting user")
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return doc.toModel(), nil
}
