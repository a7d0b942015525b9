package server

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const sessionCookie = "parlor_session"

// issueSession signs a session token for the user and sets it as a cookie.
// Pages resolve their subject from the URL; the session only carries the
// logged-in identity for the view chrome and the request logs.
func (s *Server) issueSession(c *fiber.Ctx, userID uint, username string) error {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(userID), 10),
		"username": username,
		"iss":      "parlor",
		"exp":      now.Add(7 * 24 * time.Hour).Unix(),
		"iat":      now.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(7 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

// clearSession removes the session cookie.
func (s *Server) clearSession(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// SessionMiddleware parses the session cookie, if present, into the request
// locals. An invalid or expired token is treated as no session at all.
func (s *Server) SessionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(sessionCookie)
		if raw == "" {
			return c.Next()
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(s.config.SecretKey), nil
		})
		if err != nil || !token.Valid {
			return c.Next()
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Next()
		}
		sub, _ := claims["sub"].(string)
		username, _ := claims["username"].(string)
		if id, parseErr := strconv.ParseUint(sub, 10, 64); parseErr == nil {
			c.Locals("userID", uint(id))
		}
		if username != "" {
			c.Locals("username", username)
		}
		return c.Next()
	}
}

// Logout handles POST /logout
func (s *Server) Logout(c *fiber.Ctx) error {
	s.clearSession(c)
	return s.redirect(c, "/")
}
