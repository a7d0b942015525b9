package server

import (
	"strings"

	"parlor/internal/middleware"
	"parlor/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FriendsPage handles GET /friends/:username
func (s *Server) FriendsPage(c *fiber.Ctx) error {
	user, err := s.resolveUser(c)
	if err != nil {
		return nil
	}
	return s.renderFriends(c, user)
}

// AddFriend handles POST /friends/:username. The pre-checks give friendly
// messages; the unique index on the edge remains the authoritative guard
// against a duplicate racing past them.
func (s *Server) AddFriend(c *fiber.Ctx) error {
	user, err := s.resolveUser(c)
	if err != nil {
		return nil
	}

	target := strings.TrimSpace(c.FormValue("username"))
	if target == "" {
		s.flash(c, "warning", "Username field is required.")
		return s.renderFriends(c, user)
	}

	friend, err := s.userRepo.GetByUsername(c.UserContext(), target)
	if err != nil {
		return s.renderError(c, statusFor(err), "Something went wrong on our end.")
	}

	switch {
	case friend == nil:
		s.flash(c, "warning", "User does not exist!")
	case friend.ID == user.ID:
		s.flash(c, "warning", "You cannot be friends with yourself!")
	default:
		ids, idsErr := s.friendRepo.IDsFor(c.UserContext(), user.ID)
		if idsErr != nil {
			return s.renderError(c, statusFor(idsErr), "Something went wrong on our end.")
		}
		if containsID(ids, friend.ID) {
			s.flash(c, "warning", "You are already friends with this user!")
			break
		}

		edge := &models.Friend{UserID: user.ID, FriendID: friend.ID}
		if createErr := s.friendRepo.Create(c.UserContext(), edge); createErr != nil {
			if statusFor(createErr) == fiber.StatusConflict {
				s.flash(c, "warning", "You are already friends with this user!")
				break
			}
			return s.renderError(c, statusFor(createErr), "Something went wrong, friend was not added!")
		}

		middleware.FriendEdgesCreated.Inc()
		s.flash(c, "success", "Friend successfully added!")
	}

	return s.renderFriends(c, user)
}

// renderFriends loads and renders the user's outbound friend list.
func (s *Server) renderFriends(c *fiber.Ctx, user *models.User) error {
	friends, err := s.friendRepo.ListFor(c.UserContext(), user.ID)
	if err != nil {
		return s.renderError(c, statusFor(err), "Something went wrong on our end.")
	}
	return s.render(c, "friends", "Friends", fiber.Map{
		"Username": user.Username,
		"Friends":  friends,
	})
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
