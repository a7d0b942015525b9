package repository

import (
	"context"
	"testing"

	"parlor/internal/database"
	"parlor/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory database with the schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.ConnectTest()
	require.NoError(t, err)
	return db
}

// mustCreateUser inserts a user through the repository and returns it.
func mustCreateUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
		Password:  "not-a-real-hash",
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}
