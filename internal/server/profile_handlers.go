package server

import (
	"parlor/internal/models"

	"github.com/gofiber/fiber/v2"
)

// profileForm carries the six editable profile fields.
type profileForm struct {
	Education   string `form:"education"`
	Employment  string `form:"employment"`
	Music       string `form:"music"`
	Movie       string `form:"movie"`
	Nationality string `form:"nationality"`
	Birthday    string `form:"birthday"`
}

// ProfilePage handles GET /profile/:username
func (s *Server) ProfilePage(c *fiber.Ctx) error {
	user, err := s.resolveUser(c)
	if err != nil {
		return nil
	}
	return s.render(c, "profile", "Profile", fiber.Map{
		"Username": user.Username,
		"User":     user,
	})
}

// UpdateProfile handles POST /profile/:username. All six fields are updated
// in one statement, then the request redirects to the canonical profile URL.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	user, err := s.resolveUser(c)
	if err != nil {
		return nil
	}

	var form profileForm
	if parseErr := c.BodyParser(&form); parseErr != nil {
		s.flash(c, "warning", "Could not read the submitted form.")
		return s.render(c, "profile", "Profile", fiber.Map{
			"Username": user.Username,
			"User":     user,
		})
	}

	rows, updateErr := s.userRepo.UpdateProfile(c.UserContext(), user.Username, models.Profile{
		Education:   form.Education,
		Employment:  form.Employment,
		Music:       form.Music,
		Movie:       form.Movie,
		Nationality: form.Nationality,
		Birthday:    form.Birthday,
	})
	if updateErr != nil {
		return s.renderError(c, statusFor(updateErr), "Something went wrong, profile was not updated!")
	}
	if rows == 0 {
		return s.renderError(c, fiber.StatusNotFound, "No user named "+user.Username+" exists.")
	}

	s.flash(c, "success", "Profile successfully updated!")
	return s.redirect(c, "/profile/"+user.Username)
}
