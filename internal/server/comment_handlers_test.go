package server

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"parlor/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPost(t *testing.T, srv *Server, userID uint, content string) *models.Post {
	t.Helper()
	post := &models.Post{UserID: userID, Content: content}
	require.NoError(t, srv.postRepo.Create(context.Background(), post))
	return post
}

func TestCreateCommentRendersUpdatedThread(t *testing.T) {
	srv, app := newTestServer(t)
	alice := createUser(t, srv, "alice1", "password123")
	post := createPost(t, srv, alice.ID, "original post")

	path := fmt.Sprintf("/comments/alice1/%d", post.ID)
	resp := postForm(t, app, path, url.Values{"comment": {"great point"}})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, "original post")
	assert.Contains(t, body, "great point")

	comments, err := srv.commentRepo.ListByPost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestCreateCommentRequiresText(t *testing.T) {
	srv, app := newTestServer(t)
	alice := createUser(t, srv, "alice1", "password123")
	post := createPost(t, srv, alice.ID, "original post")

	path := fmt.Sprintf("/comments/alice1/%d", post.ID)
	resp := postForm(t, app, path, url.Values{"comment": {"   "}})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Comment text is required.")

	comments, err := srv.commentRepo.ListByPost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentNeverServesRawMarkup(t *testing.T) {
	srv, app := newTestServer(t)
	alice := createUser(t, srv, "alice1", "password123")
	post := createPost(t, srv, alice.ID, "original post")

	path := fmt.Sprintf("/comments/alice1/%d", post.ID)
	readBody(t, postForm(t, app, path, url.Values{"comment": {"<b>loud</b>"}}))

	body := readBody(t, get(t, app, path))
	assert.NotContains(t, body, "<b>loud</b>")
	assert.Contains(t, body, "loud")
}

func TestCommentsPageUnknownPostIs404(t *testing.T) {
	srv, app := newTestServer(t)
	createUser(t, srv, "alice1", "password123")

	resp := get(t, app, "/comments/alice1/9999")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCommentsPageBadPostIDIs404(t *testing.T) {
	srv, app := newTestServer(t)
	createUser(t, srv, "alice1", "password123")

	resp := get(t, app, "/comments/alice1/not-a-number")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
