package repository

import (
	"context"
	"testing"
	"time"

	"parlor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentCreateAndListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	alice := mustCreateUser(t, db, "alice1")
	bob := mustCreateUser(t, db, "bob1")
	post := mustCreatePost(t, db, alice.ID, "hello", time.Now())

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	older := &models.Comment{PostID: post.ID, UserID: bob.ID, Content: "older", CreatedAt: base}
	newer := &models.Comment{PostID: post.ID, UserID: alice.ID, Content: "newer", CreatedAt: base.Add(time.Minute)}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	comments, err := repo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "newer", comments[0].Content)
	assert.Equal(t, "older", comments[1].Content)
	assert.Equal(t, "alice1", comments[0].User.Username)
	assert.Equal(t, "bob1", comments[1].User.Username)
}

func TestCommentCreateEscapesContent(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	alice := mustCreateUser(t, db, "alice1")
	post := mustCreatePost(t, db, alice.ID, "hello", time.Now())

	comment := &models.Comment{PostID: post.ID, UserID: alice.ID, Content: "<b>bold</b>"}
	require.NoError(t, repo.Create(ctx, comment))

	comments, err := repo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "&lt;b&gt;bold&lt;/b&gt;", comments[0].Content)
}

func TestCommentCreateUnknownPostIsNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	alice := mustCreateUser(t, db, "alice1")

	err := repo.Create(ctx, &models.Comment{PostID: 9999, UserID: alice.ID, Content: "lost"})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestCommentListEmptyThread(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommentRepository(db)

	alice := mustCreateUser(t, db, "alice1")
	post := mustCreatePost(t, db, alice.ID, "quiet", time.Now())

	comments, err := repo.ListByPost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}
