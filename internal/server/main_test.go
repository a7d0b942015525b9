package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"parlor/internal/config"
	"parlor/internal/database"
	"parlor/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newTestServer builds a server over a fresh in-memory database with a
// throwaway uploads directory.
func newTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	db, err := database.ConnectTest()
	require.NoError(t, err)

	cfg := &config.Config{
		Port:       "0",
		SecretKey:  "test-secret-key-0123456789-0123456789",
		DBPath:     ":memory:",
		UploadsDir: t.TempDir(),
		Env:        "test",
	}

	srv, err := NewServerWithDeps(cfg, db)
	require.NoError(t, err)
	return srv, srv.NewApp()
}

// createUser inserts an account directly through the repository, bypassing
// the registration form.
func createUser(t *testing.T, srv *Server, username, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
		Password:  string(hash),
	}
	require.NoError(t, srv.userRepo.Create(context.Background(), user))
	return user
}

// postForm submits an urlencoded form to the app.
func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return string(body)
}
