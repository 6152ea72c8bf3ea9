package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jalexanderII/todo-railway/models"
)

type userRow struct {
	ID           string `db:"id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	CreatedAt    int64  `db:"created_at"`
	UpdatedAt    int64  `db:"updated_at"`
}

func (r *userRow) toModel() *models.User {
	return &models.User{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    fromMillis(r.CreatedAt),
		UpdatedAt:    fromMillis(r.UpdatedAt),
	}
}

// CreateUser inserts a new user into the database.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	generated := user.ID == ""
	if generated {
		user.ID = uuid.New().String()
	}

	_, err := s.db.NamedExecContext(ctx,
		`INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
		 VALUES (:id, :username, :email, :password_hash, :created_at, :updated_at)`,
		userRow{
			ID:           user.ID,
			Username:     user.Username,
			Email:        user.Email,
			PasswordHash: user.PasswordHash,
			CreatedAt:    toMillis(user.CreatedAt),
			UpdatedAt:    toMillis(user.UpdatedAt),
		},
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			if generated {
				user.ID = ""
			}
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByUsername retrieves a user by login name.
func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getUser(ctx, "username", username)
}

// GetUserByID retrieves a user by their ID.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.getUser(ctx, "id", id)
}

func (s *SQLiteStore) getUser(ctx context.Context, column, value string) (*models.User, error) {
	var row userRow
	err := s.db.GetContext(ctx, &row,
		`SELECT id, username, email, password_hash, created_at, updated_at FROM users WHERE `+column+` = ?`,
		value,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		s.l.WithError(err).Error("[UserDB] Error getting user")
		return nil, fmt.Errorf("failed to get user by %s: %w", column, err)
	}
	return row.toModel(), nil
}
