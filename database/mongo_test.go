package database

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jalexanderII/todo-railway/config"
)

// TestMongoStore runs only against a live server named by MONGODB_TEST_URI.
func TestMongoStore(t *testing.T) {
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set")
	}

	cfg := &config.Config{
		MongoURI:       uri,
		Database:       fmt.Sprintf("todo_test_%d", time.Now().UnixNano()),
		ItemCollection: "items",
		UserCollection: "users",
		DBTimeout:      10 * time.Second,
	}
	store, err := StartMongoDB(cfg, quietLogger())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Items.Database().Drop(context.Background())
		_ = store.Close()
	})

	runStoreSuite(t, store)
}
