package server

import (
	"strings"

	"parlor/internal/middleware"
	"parlor/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CommentsPage handles GET /comments/:username/:postID
func (s *Server) CommentsPage(c *fiber.Ctx) error {
	user, err := s.resolveUser(c)
	if err != nil {
		return nil
	}
	postID, err := s.parseID(c, "postID")
	if err != nil {
		return nil
	}
	return s.renderComments(c, user, postID)
}

// CreateComment handles POST /comments/:username/:postID. The thread is
// re-fetched and rendered whether or not a comment was created.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	user, err := s.resolveUser(c)
	if err != nil {
		return nil
	}
	postID, err := s.parseID(c, "postID")
	if err != nil {
		return nil
	}

	content := strings.TrimSpace(c.FormValue("comment"))
	if content == "" {
		s.flash(c, "warning", "Comment text is required.")
		return s.renderComments(c, user, postID)
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  user.ID,
		Content: content,
	}
	if createErr := s.commentRepo.Create(c.UserContext(), comment); createErr != nil {
		return s.renderError(c, statusFor(createErr), "Something went wrong, comment was not created!")
	}

	middleware.CommentsCreated.Inc()
	return s.renderComments(c, user, postID)
}

// renderComments loads the post and its full thread and renders them.
func (s *Server) renderComments(c *fiber.Ctx, user *models.User, postID uint) error {
	post, err := s.postRepo.GetByID(c.UserContext(), postID)
	if err != nil {
		return s.renderError(c, statusFor(err), "That post does not exist.")
	}

	comments, err := s.commentRepo.ListByPost(c.UserContext(), postID)
	if err != nil {
		return s.renderError(c, statusFor(err), "Something went wrong on our end.")
	}

	return s.render(c, "comments", "Comments", fiber.Map{
		"Username": user.Username,
		"Post":     post,
		"Comments": comments,
	})
}
