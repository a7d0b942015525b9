package repository

import (
	"context"
	"testing"

	"parlor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendCreateAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()

	alice := mustCreateUser(t, db, "alice1")
	bob := mustCreateUser(t, db, "bob1")

	require.NoError(t, repo.Create(ctx, &models.Friend{UserID: alice.ID, FriendID: bob.ID}))

	ids, err := repo.IDsFor(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{bob.ID}, ids)

	friends, err := repo.ListFor(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, "bob1", friends[0].Username)
}

func TestFriendEdgesAreDirected(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()

	alice := mustCreateUser(t, db, "alice1")
	bob := mustCreateUser(t, db, "bob1")

	require.NoError(t, repo.Create(ctx, &models.Friend{UserID: alice.ID, FriendID: bob.ID}))

	// The A to B edge gives B nothing; B adding A back is a separate edge.
	ids, err := repo.IDsFor(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, repo.Create(ctx, &models.Friend{UserID: bob.ID, FriendID: alice.ID}))

	ids, err = repo.IDsFor(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{alice.ID}, ids)
}

func TestFriendDuplicateEdgeIsConflict(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()

	alice := mustCreateUser(t, db, "alice1")
	bob := mustCreateUser(t, db, "bob1")

	require.NoError(t, repo.Create(ctx, &models.Friend{UserID: alice.ID, FriendID: bob.ID}))

	err := repo.Create(ctx, &models.Friend{UserID: alice.ID, FriendID: bob.ID})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeConflict, appErr.Code)
}

func TestFriendCreateUnknownTargetIsNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()

	alice := mustCreateUser(t, db, "alice1")

	err := repo.Create(ctx, &models.Friend{UserID: alice.ID, FriendID: 9999})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestFriendListExcludesSelfEdges(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()

	alice := mustCreateUser(t, db, "alice1")
	bob := mustCreateUser(t, db, "bob1")

	// A self-edge written around the handler checks stays invisible.
	require.NoError(t, db.Create(&models.Friend{UserID: alice.ID, FriendID: alice.ID}).Error)
	require.NoError(t, repo.Create(ctx, &models.Friend{UserID: alice.ID, FriendID: bob.ID}))

	friends, err := repo.ListFor(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, "bob1", friends[0].Username)
}
