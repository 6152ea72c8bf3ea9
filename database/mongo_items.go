package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jalexanderII/todo-railway/models"
)

// itemDocument is the BSON shape of models.Item.
type itemDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Date        time.Time          `bson:"date"`
	CreatedAt   time.Time          `bson:"created_at"`
	Done        bool               `bson:"done"`
	UserID      string             `bson:"user_id"`
}

func newItemDocument(item *models.Item) itemDocument {
	return itemDocument{
		Title:       item.Title,
		Description: item.Description,
		Date:        item.Date,
		CreatedAt:   item.CreatedAt,
		Done:        item.Done,
		UserID:      item.UserID,
	}
}

func (d *itemDocument) toModel() *models.Item {
	return &models.Item{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Date:        d.Date.UTC(),
		CreatedAt:   d.CreatedAt.UTC(),
		Done:        d.Done,
		UserID:      d.UserID,
	}
}

// CreateItem inserts a new item document.
func (s *MongoStore) CreateItem(ctx context.Context, item *models.Item) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	doc := newItemDocument(item)
	doc.ID = primitive.NewObjectID()
	if _, err := s.Items.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	item.ID = doc.ID.Hex()
	return nil
}

// GetItem fetches an item by its hex ObjectID.
func (s *MongoStore) GetItem(ctx context.Context, id string) (*models.Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var doc itemDocument
	err = s.Items.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return doc.toModel(), nil
}

// ListItemsByUser returns every item whose user_id matches.
func (s *MongoStore) ListItemsByUser(ctx context.Context, userID string) ([]*models.Item, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: 1}})
	cursor, err := s.Items.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	docs := make([]itemDocument, 0)
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}

	items := make([]*models.Item, len(docs))
	for idx := range docs {
		items[idx] = docs[idx].toModel()
	}
	return items, nil
}

// UpdateItem replaces the stored document with item's current fields.
func (s *MongoStore) UpdateItem(ctx context.Context, item *models.Item) error {
	oid, err := primitive.ObjectIDFromHex(item.ID)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	doc := newItemDocument(item)
	doc.ID = oid
	res, err := s.Items.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteItem removes the item document.
func (s *MongoStore) DeleteItem(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	res, err := s.Items.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
