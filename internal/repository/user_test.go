package repository

import (
	"context"
	"testing"

	"parlor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateAndGetByUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created := mustCreateUser(t, db, "alice1")

	found, err := repo.GetByUsername(ctx, "alice1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Test", found.FirstName)
}

func TestUserGetByUsernameMissingIsNilNil(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	found, err := repo.GetByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserGetByUsernameIsCaseSensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	mustCreateUser(t, db, "Alice")

	found, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserCreateDuplicateUsernameIsConflict(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	mustCreateUser(t, db, "alice1")

	err := repo.Create(ctx, &models.User{
		Username:  "alice1",
		FirstName: "Other",
		LastName:  "Person",
		Password:  "hash",
	})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeConflict, appErr.Code)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("username = ?", "alice1").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUserCreateEscapesNames(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{
		Username:  "markup1",
		FirstName: "<b>hi</b>",
		LastName:  `<script>alert("x")</script>`,
		Password:  "hash",
	}
	require.NoError(t, repo.Create(ctx, user))

	stored, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "&lt;b&gt;hi&lt;/b&gt;", stored.FirstName)
	assert.NotContains(t, stored.LastName, "<script>")
}

func TestUserGetByIDMissingIsNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), 9999)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestUpdateProfileAffectsOnlyTargetUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	alice := mustCreateUser(t, db, "alice1")
	bob := mustCreateUser(t, db, "bob1")

	rows, err := repo.UpdateProfile(ctx, "alice1", models.Profile{
		Education:   "School of Hard Knocks",
		Employment:  "Freelance",
		Music:       "Jazz",
		Movie:       "Metropolis",
		Nationality: "Norwegian",
		Birthday:    "1990-01-02",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	updated, err := repo.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jazz", updated.Music)
	assert.Equal(t, "1990-01-02", updated.Birthday)

	other, err := repo.GetByID(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, other.Music)
	assert.Empty(t, other.Education)
}

func TestUpdateProfileEscapesFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	alice := mustCreateUser(t, db, "alice1")

	rows, err := repo.UpdateProfile(ctx, "alice1", models.Profile{
		Education: "<img src=x onerror=alert(1)>",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	updated, err := repo.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.NotContains(t, updated.Education, "<img")
	assert.Contains(t, updated.Education, "&lt;img")
}

func TestUpdateProfileUnknownUserReportsZeroRows(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	rows, err := repo.UpdateProfile(context.Background(), "ghost", models.Profile{Music: "Silence"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, rows)
}
