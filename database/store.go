package database

import (
	"context"
	"errors"

	"github.com/jalexanderII/todo-railway/models"
)

var (
	// ErrNotFound is returned when no record matches the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique field is already taken.
	ErrDuplicate = errors.New("record already exists")
)

// ItemStore persists to-do items. Every method touches a single record.
type ItemStore interface {
	// CreateItem inserts item and sets item.ID.
	CreateItem(ctx context.Context, item *models.Item) error
	// GetItem returns ErrNotFound if id does not name an item.
	GetItem(ctx context.Context, id string) (*models.Item, error)
	// ListItemsByUser returns the user's items, latest date first.
	ListItemsByUser(ctx context.Context, userID string) ([]*models.Item, error)
	// UpdateItem overwrites the stored item with the same ID.
	UpdateItem(ctx context.Context, item *models.Item) error
	DeleteItem(ctx context.Context, id string) error
}

// UserStore persists accounts.
type UserStore interface {
	// CreateUser inserts user and sets user.ID. A taken username yields ErrDuplicate.
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Store is a complete backend.
type Store interface {
	ItemStore
	UserStore
	Ping(ctx context.Context) error
	Close() error
}
