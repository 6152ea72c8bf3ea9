package database

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalexanderII/todo-railway/models"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func sampleItem(userID, title string, date time.Time) *models.Item {
	item := models.NewItem(userID)
	item.Title = title
	item.Date = models.NormalizeTime(date)
	item.CreatedAt = models.NormalizeTime(time.Now())
	return item
}

// runStoreSuite exercises the Store contract against any backend.
func runStoreSuite(t *testing.T, store Store) {
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("CreateItem assigns an id and round-trips fields", func(t *testing.T) {
		item := sampleItem("alice", "Buy milk", base)
		item.Description = "two litres"
		require.NoError(t, store.CreateItem(ctx, item))
		require.NotEmpty(t, item.ID)

		got, err := store.GetItem(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, item, got)
	})

	t.Run("ListItemsByUser only returns the owner's items, latest first", func(t *testing.T) {
		older := sampleItem("bob", "older", base)
		newer := sampleItem("bob", "newer", base.Add(48*time.Hour))
		other := sampleItem("carol", "not bob's", base.Add(24*time.Hour))
		for _, it := range []*models.Item{older, newer, other} {
			require.NoError(t, store.CreateItem(ctx, it))
		}

		items, err := store.ListItemsByUser(ctx, "bob")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, newer.ID, items[0].ID)
		assert.Equal(t, older.ID, items[1].ID)

		none, err := store.ListItemsByUser(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("UpdateItem overwrites fields but keeps created_at", func(t *testing.T) {
		item := sampleItem("dave", "draft", base)
		require.NoError(t, store.CreateItem(ctx, item))
		created := item.CreatedAt

		item.Title = "final"
		item.Done = true
		item.CreatedAt = created.Add(time.Hour)
		require.NoError(t, store.UpdateItem(ctx, item))

		got, err := store.GetItem(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, "final", got.Title)
		assert.True(t, got.Done)
		assert.True(t, created.Equal(got.CreatedAt))
	})

	t.Run("missing ids yield ErrNotFound", func(t *testing.T) {
		for _, id := range []string{"999999", "abc", "", "-1", "64b7f0c2a1b2c3d4e5f60718"} {
			_, err := store.GetItem(ctx, id)
			assert.ErrorIs(t, err, ErrNotFound, "GetItem(%q)", id)
			assert.ErrorIs(t, store.DeleteItem(ctx, id), ErrNotFound, "DeleteItem(%q)", id)
			assert.ErrorIs(t, store.UpdateItem(ctx, &models.Item{ID: id}), ErrNotFound, "UpdateItem(%q)", id)
		}
	})

	t.Run("DeleteItem twice", func(t *testing.T) {
		item := sampleItem("erin", "temp", base)
		require.NoError(t, store.CreateItem(ctx, item))
		require.NoError(t, store.DeleteItem(ctx, item.ID))
		assert.ErrorIs(t, store.DeleteItem(ctx, item.ID), ErrNotFound)
	})

	t.Run("users", func(t *testing.T) {
		user := models.NewUser("frank", "frank@example.com", "hash")
		require.NoError(t, store.CreateUser(ctx, user))
		require.NotEmpty(t, user.ID)

		byName, err := store.GetUserByUsername(ctx, "frank")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byName.ID)
		assert.Equal(t, "hash", byName.PasswordHash)

		byID, err := store.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "frank@example.com", byID.Email)

		dup := models.NewUser("frank", "other@example.com", "hash2")
		assert.ErrorIs(t, store.CreateUser(ctx, dup), ErrDuplicate)

		_, err = store.GetUserByUsername(ctx, "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
	})
}
