package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jalexanderII/todo-railway/models"
)

type itemRow struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Date        int64  `db:"date"`
	CreatedAt   int64  `db:"created_at"`
	Done        bool   `db:"done"`
	UserID      string `db:"user_id"`
}

func newItemRow(item *models.Item) itemRow {
	return itemRow{
		Title:       item.Title,
		Description: item.Description,
		Date:        toMillis(item.Date),
		CreatedAt:   toMillis(item.CreatedAt),
		Done:        item.Done,
		UserID:      item.UserID,
	}
}

func (r *itemRow) toModel() *models.Item {
	return &models.Item{
		ID:          strconv.FormatInt(r.ID, 10),
		Title:       r.Title,
		Description: r.Description,
		Date:        fromMillis(r.Date),
		CreatedAt:   fromMillis(r.CreatedAt),
		Done:        r.Done,
		UserID:      r.UserID,
	}
}

// parseItemID maps anything that is not a positive integer to ErrNotFound.
func parseItemID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil || n <= 0 {
		return 0, ErrNotFound
	}
	return n, nil
}

// CreateItem inserts the item and assigns its autoincrement id.
func (s *SQLiteStore) CreateItem(ctx context.Context, item *models.Item) error {
	row := newItemRow(item)
	res, err := s.db.NamedExecContext(ctx,
		`INSERT INTO items (title, description, date, created_at, done, user_id)
		 VALUES (:title, :description, :date, :created_at, :done, :user_id)`,
		row,
	)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read item id: %w", err)
	}
	item.ID = strconv.FormatInt(id, 10)
	return nil
}

// GetItem retrieves an item by ID.
func (s *SQLiteStore) GetItem(ctx context.Context, id string) (*models.Item, error) {
	n, err := parseItemID(id)
	if err != nil {
		return nil, err
	}

	var row itemRow
	err = s.db.GetContext(ctx, &row,
		`SELECT id, title, description, date, created_at, done, user_id FROM items WHERE id = ?`, n)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return row.toModel(), nil
}

// ListItemsByUser retrieves all of a user's items, latest date first.
func (s *SQLiteStore) ListItemsByUser(ctx context.Context, userID string) ([]*models.Item, error) {
	rows := make([]itemRow, 0)
	err := s.db.SelectContext(ctx, &rows,
		`SELECT id, title, description, date, created_at, done, user_id
		 FROM items WHERE user_id = ? ORDER BY date DESC, id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	items := make([]*models.Item, len(rows))
	for i := range rows {
		items[i] = rows[i].toModel()
	}
	return items, nil
}

// UpdateItem writes every mutable column of item. created_at is never rewritten.
func (s *SQLiteStore) UpdateItem(ctx context.Context, item *models.Item) error {
	n, err := parseItemID(item.ID)
	if err != nil {
		return err
	}

	row := newItemRow(item)
	row.ID = n
	res, err := s.db.NamedExecContext(ctx,
		`UPDATE items SET title = :title, description = :description, date = :date,
		 done = :done, user_id = :user_id WHERE id = :id`,
		row,
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	return requireAffected(res)
}

// DeleteItem removes an item by ID.
func (s *SQLiteStore) DeleteItem(ctx context.Context, id string) error {
	n, err := parseItemID(id)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", n)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
