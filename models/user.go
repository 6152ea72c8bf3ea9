package models

import (
	"time"
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

func NewUser(username, email, passwordHash string) *User {
	now := NormalizeTime(time.Now())
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
