package server

import (
	"strings"

	"parlor/internal/middleware"
	"parlor/internal/models"

	"github.com/gofiber/fiber/v2"
)

// StreamPage handles GET /stream/:username
func (s *Server) StreamPage(c *fiber.Ctx) error {
	user, err := s.resolveUser(c)
	if err != nil {
		return nil
	}
	return s.renderStream(c, user)
}

// CreatePost handles POST /stream/:username. A valid submission stores the
// optional image under a server-controlled name, creates the post and
// redirects back to the stream.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	user, err := s.resolveUser(c)
	if err != nil {
		return nil
	}

	content := strings.TrimSpace(c.FormValue("content"))
	if content == "" {
		s.flash(c, "warning", "Post content is required.")
		return s.renderStream(c, user)
	}

	image := ""
	if file, fileErr := c.FormFile("image"); fileErr == nil && file != nil && file.Filename != "" {
		stored, storeErr := s.storeUpload(c, file)
		if storeErr != nil {
			s.flash(c, "warning", storeErr.Error())
			return s.renderStream(c, user)
		}
		image = stored
	}

	post := &models.Post{
		UserID:  user.ID,
		Content: content,
		Image:   image,
	}
	if createErr := s.postRepo.Create(c.UserContext(), post); createErr != nil {
		return s.renderError(c, statusFor(createErr), "Something went wrong, post was not created!")
	}

	middleware.PostsCreated.Inc()
	return s.redirect(c, "/stream/"+user.Username)
}

// renderStream loads the merged friends+self feed, newest first, and renders it.
func (s *Server) renderStream(c *fiber.Ctx, user *models.User) error {
	posts, err := s.postRepo.Feed(c.UserContext(), user.ID)
	if err != nil {
		return s.renderError(c, statusFor(err), "Something went wrong on our end.")
	}
	return s.render(c, "stream", "Stream", fiber.Map{
		"Username": user.Username,
		"Posts":    posts,
	})
}
