package auth

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jalexanderII/todo-railway/database"
)

func newAuthenticator(t *testing.T) *PasswordAuthenticator {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)

	store, err := database.OpenSQLite(filepath.Join(t.TempDir(), "auth.db"), l)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()

	user, err := a.Register(ctx, "alice", "alice@example.com", "correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "correct horse", user.PasswordHash)

	got, err := a.Authenticate(ctx, "alice", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = a.Authenticate(ctx, "alice", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = a.Authenticate(ctx, "nobody", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejects(t *testing.T) {
	a := newAuthenticator(t)
	ctx := context.Background()

	_, err := a.Register(ctx, "bob", "bob@example.com", "short")
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = a.Register(ctx, "bob", "bob@example.com", "long enough")
	require.NoError(t, err)

	_, err = a.Register(ctx, "bob", "bob2@example.com", "long enough")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}
