package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jalexanderII/todo-railway/config"
)

const Performance = 100

// Ensure MongoStore implements Store
var _ Store = (*MongoStore)(nil)

// MongoStore keeps items and users in two MongoDB collections.
type MongoStore struct {
	client  *mongo.Client
	Items   *mongo.Collection
	Users   *mongo.Collection
	timeout time.Duration
	l       *logrus.Logger
}

// StartMongoDB connects to cfg.MongoURI, pings the server and makes sure the
// collection indexes exist.
func StartMongoDB(cfg *config.Config, l *logrus.Logger) (*MongoStore, error) {
	if cfg.MongoURI == "" {
		return nil, errors.New("you must set your 'MONGODB_URI' environmental variable")
	}

	ctx, cancel := NewDBContext(cfg.DBTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	db := client.Database(cfg.Database)
	s := &MongoStore{
		client:  client,
		Items:   db.Collection(cfg.ItemCollection),
		Users:   db.Collection(cfg.UserCollection),
		timeout: cfg.DBTimeout,
		l:       l,
	}
	if err = s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	l.WithFields(logrus.Fields{"database": cfg.Database, "items": cfg.ItemCollection}).Info("connected to mongo")
	return s, nil
}

func (s *MongoStore) ensureIndexes(ctx context.Context) error {
	_, err := s.Items.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to index items: %w", err)
	}
	_, err = s.Users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to index users: %w", err)
	}
	return nil
}

// Ping checks the connection to the primary.
func (s *MongoStore) Ping(ctx context.Context) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()
	return s.client.Ping(ctx, nil)
}

// Close disconnects the client.
func (s *MongoStore) Close() error {
	ctx, cancel := NewDBContext(s.timeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// opContext bounds a single operation by the configured timeout.
func (s *MongoStore) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout*Performance/100)
}

// NewDBContext returns a new Context according to app performance
func NewDBContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d*Performance/100)
}
