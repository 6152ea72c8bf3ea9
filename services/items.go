// Package services holds the item API: ownership-checked CRUD over a record store.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jalexanderII/todo-railway/database"
	"github.com/jalexanderII/todo-railway/models"
)

// ItemService scopes every operation to the calling user.
//
// Update and Delete read, check ownership, then write without a lock. Two
// concurrent updates of one item are last-write-wins.
type ItemService struct {
	store database.ItemStore
	l     *logrus.Logger
	now   func() time.Time
}

// NewItemService creates an ItemService over store.
func NewItemService(store database.ItemStore, l *logrus.Logger) *ItemService {
	return &ItemService{store: store, l: l, now: time.Now}
}

// List returns every item owned by caller.
func (s *ItemService) List(ctx context.Context, caller string) ([]*models.Item, error) {
	if caller == "" {
		return nil, ErrUnauthenticated
	}
	items, err := s.store.ListItemsByUser(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Create stores a new item owned by caller built from patch.
func (s *ItemService) Create(ctx context.Context, caller string, patch ItemPatch) (*models.Item, error) {
	if caller == "" {
		return nil, ErrUnauthenticated
	}
	if err := patch.RequireForCreate(); err != nil {
		return nil, err
	}

	item := models.NewItem(caller)
	patch.Apply(item)
	item.CreatedAt = models.NormalizeTime(s.now())

	if err := s.store.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	s.l.WithFields(logrus.Fields{"item_id": item.ID, "user_id": caller}).Debug("item created")
	return item, nil
}

// Update applies patch to the caller's item id.
func (s *ItemService) Update(ctx context.Context, caller, id string, patch ItemPatch) (*models.Item, error) {
	return s.update(ctx, caller, id, func() (ItemPatch, error) { return patch, nil })
}

// UpdateJSON is Update for a raw request body. The body is decoded only
// after the item is found and owned by caller, so a missing or foreign item
// wins over a malformed body.
func (s *ItemService) UpdateJSON(ctx context.Context, caller, id string, body []byte) (*models.Item, error) {
	return s.update(ctx, caller, id, func() (ItemPatch, error) { return DecodeItemPatch(body) })
}

func (s *ItemService) update(ctx context.Context, caller, id string, decode func() (ItemPatch, error)) (*models.Item, error) {
	item, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	patch, err := decode()
	if err != nil {
		return nil, err
	}
	patch.Apply(item)
	item.UserID = caller

	if err := s.store.UpdateItem(ctx, item); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update item %s: %w", id, err)
	}
	s.l.WithFields(logrus.Fields{"item_id": id, "user_id": caller}).Debug("item updated")
	return item, nil
}

// Delete removes the caller's item id.
func (s *ItemService) Delete(ctx context.Context, caller, id string) error {
	if _, err := s.owned(ctx, caller, id); err != nil {
		return err
	}

	if err := s.store.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete item %s: %w", id, err)
	}
	s.l.WithFields(logrus.Fields{"item_id": id, "user_id": caller}).Debug("item deleted")
	return nil
}

// owned loads id and rejects it unless caller owns it.
func (s *ItemService) owned(ctx context.Context, caller, id string) (*models.Item, error) {
	if caller == "" {
		return nil, ErrUnauthenticated
	}

	item, err := s.store.GetItem(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get item %s: %w", id, err)
	}

	if !item.OwnedBy(caller) {
		s.l.WithFields(logrus.Fields{"item_id": id, "user_id": caller}).Warn("rejected access to another user's item")
		return nil, ErrForbidden
	}
	return item, nil
}
