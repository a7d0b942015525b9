package server

import (
	"strings"

	"parlor/internal/middleware"
	"parlor/internal/models"
	"parlor/internal/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

const invalidCredentialsMsg = "Sorry, username or password is not valid!"

// indexForm is the composite login/register form. Exactly one of the two
// submit controls fires per request; Login and Register carry the control
// values so the handler can tell which sub-form was submitted.
type indexForm struct {
	LoginUsername string `form:"login_username"`
	LoginPassword string `form:"login_password"`
	Login         string `form:"login"`

	Username        string `form:"username"`
	FirstName       string `form:"first_name"`
	LastName        string `form:"last_name"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
	Register        string `form:"register"`
}

// IndexPage handles GET / and GET /index
func (s *Server) IndexPage(c *fiber.Ctx) error {
	return s.render(c, "index", "Welcome", nil)
}

// IndexSubmit handles POST / and POST /index for both sub-forms.
func (s *Server) IndexSubmit(c *fiber.Ctx) error {
	var form indexForm
	if err := c.BodyParser(&form); err != nil {
		s.flash(c, "warning", "Could not read the submitted form.")
		return s.render(c, "index", "Welcome", nil)
	}

	switch {
	case form.Login != "":
		return s.login(c, form)
	case form.Register != "":
		return s.register(c, form)
	default:
		s.flash(c, "warning", "No form was submitted.")
		return s.render(c, "index", "Welcome", nil)
	}
}

// login authenticates the login sub-form. Unknown usernames and wrong
// passwords surface the same message so usernames cannot be enumerated.
func (s *Server) login(c *fiber.Ctx, form indexForm) error {
	if form.LoginUsername == "" || form.LoginPassword == "" {
		s.flash(c, "warning", invalidCredentialsMsg)
		return s.render(c, "index", "Welcome", nil)
	}

	user, err := s.userRepo.GetByUsername(c.UserContext(), form.LoginUsername)
	if err != nil {
		return s.renderError(c, statusFor(err), "Something went wrong on our end.")
	}
	if user == nil {
		middleware.LoginAttempts.WithLabelValues("failure").Inc()
		s.flash(c, "warning", invalidCredentialsMsg)
		return s.render(c, "index", "Welcome", nil)
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.LoginPassword)); cmpErr != nil {
		middleware.LoginAttempts.WithLabelValues("failure").Inc()
		s.flash(c, "warning", invalidCredentialsMsg)
		return s.render(c, "index", "Welcome", nil)
	}

	if sessErr := s.issueSession(c, user.ID, user.Username); sessErr != nil {
		return s.renderError(c, fiber.StatusInternalServerError, "Something went wrong on our end.")
	}

	middleware.LoginAttempts.WithLabelValues("success").Inc()
	return s.redirect(c, "/stream/"+user.Username)
}

// register creates a new account from the register sub-form. Field errors
// are aggregated into one flash message; nothing is persisted on failure.
func (s *Server) register(c *fiber.Ctx, form indexForm) error {
	var errMsgs []string

	if err := validation.ValidateUsername(form.Username); err != nil {
		errMsgs = append(errMsgs, err.Error())
	}
	if err := validation.ValidateName("first name", form.FirstName); err != nil {
		errMsgs = append(errMsgs, err.Error())
	}
	if err := validation.ValidateName("last name", form.LastName); err != nil {
		errMsgs = append(errMsgs, err.Error())
	}
	if err := validation.ValidatePassword(form.Password); err != nil {
		errMsgs = append(errMsgs, err.Error())
	}
	if form.Password != form.ConfirmPassword {
		errMsgs = append(errMsgs, "passwords must match")
	}

	if len(errMsgs) > 0 {
		s.flash(c, "warning", strings.Join(errMsgs, "\n"))
		return s.render(c, "index", "Welcome", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return s.renderError(c, fiber.StatusInternalServerError, "Something went wrong on our end.")
	}

	user := &models.User{
		Username:  form.Username,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Password:  string(hashed),
	}

	if createErr := s.userRepo.Create(c.UserContext(), user); createErr != nil {
		if statusFor(createErr) == fiber.StatusConflict {
			s.flash(c, "warning", "Sorry, that username is already taken!")
			return s.render(c, "index", "Welcome", nil)
		}
		return s.renderError(c, statusFor(createErr), "Something went wrong, user was not created!")
	}

	middleware.UsersRegistered.Inc()
	s.flash(c, "success", "User successfully created!")
	return s.redirect(c, "/")
}
