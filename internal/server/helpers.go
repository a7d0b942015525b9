package server

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"parlor/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

const flashCookie = "parlor_flash"

// Flash is a one-shot message surfaced on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

// flash stores a one-shot message, surfaced by the next render. The message
// lives in request locals for a render within the same request, and in a
// cookie to survive a redirect-after-post.
func (s *Server) flash(c *fiber.Ctx, category, message string) {
	c.Locals("flash", &Flash{Category: category, Message: message})
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(category + "|" + message),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// clearFlashCookie expires the flash cookie on the response.
func (s *Server) clearFlashCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// popFlash reads and clears the pending flash message, if any.
func (s *Server) popFlash(c *fiber.Ctx) *Flash {
	if pending, ok := c.Locals("flash").(*Flash); ok && pending != nil {
		c.Locals("flash", nil)
		s.clearFlashCookie(c)
		return pending
	}

	raw := c.Cookies(flashCookie)
	if raw == "" {
		return nil
	}
	s.clearFlashCookie(c)

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	category, message, found := strings.Cut(decoded, "|")
	if !found {
		return &Flash{Category: "warning", Message: decoded}
	}
	return &Flash{Category: category, Message: message}
}

// render renders a view with the shared page state (title, flash, session
// identity) merged into the handler's data.
func (s *Server) render(c *fiber.Ctx, view, title string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Title"] = title
	data["Flash"] = s.popFlash(c)
	if username, ok := c.Locals("username").(string); ok {
		data["SessionUsername"] = username
	}
	return c.Render(view, data)
}

// redirect sends the redirect-after-post response: a successful mutation
// always lands on a GET-safe canonical URL so a refresh never re-submits.
func (s *Server) redirect(c *fiber.Ctx, location string) error {
	return c.Redirect(location, fiber.StatusSeeOther)
}

// resolveUser maps the :username route parameter to a user record. A missing
// user renders the not-found page and returns errResponseWritten; callers
// check: if err != nil { return nil }.
func (s *Server) resolveUser(c *fiber.Ctx) (*models.User, error) {
	username := c.Params("username")
	user, err := s.userRepo.GetByUsername(c.UserContext(), username)
	if err != nil {
		_ = s.renderError(c, fiber.StatusInternalServerError, "Something went wrong on our end.")
		return nil, errResponseWritten
	}
	if user == nil {
		_ = s.renderError(c, fiber.StatusNotFound, "No user named "+username+" exists.")
		return nil, errResponseWritten
	}
	return user, nil
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it renders a 404 page and returns errResponseWritten.
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = s.renderError(c, fiber.StatusNotFound, "That page does not exist.")
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// renderError renders the error page with the given status.
func (s *Server) renderError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).Render("error", fiber.Map{
		"Title":   "Oops",
		"Status":  status,
		"Message": message,
	})
}

// statusFor maps an AppError onto the HTTP status for an error page.
func statusFor(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeNotFound:
			return fiber.StatusNotFound
		case models.CodeValidation:
			return fiber.StatusBadRequest
		case models.CodeConflict:
			return fiber.StatusConflict
		case models.CodeUnauthorized:
			return fiber.StatusForbidden
		}
	}
	return fiber.StatusInternalServerError
}
