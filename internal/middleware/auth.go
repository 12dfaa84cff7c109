// Package middleware contains the HTTP middleware for the API: session
// token verification and the admin gate. Middleware runs before route
// handlers, which read the authenticated player from the request context.
package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/golfbuddy/backend/internal/config"
)

// Claims is the payload of a session token. The server issues these at
// login (see handlers.Login) and verifies them here on every request.
// Subject carries the player's UUID; Name and Admin are denormalized from
// the player row so most requests never need a user lookup.
type Claims struct {
	jwt.RegisteredClaims
	Name  string `json:"name"`
	Admin bool   `json:"admin"`
}

// SessionDuration is how long an issued token stays valid. The trip is a
// week; a week-long session means nobody logs in twice.
const SessionDuration = 7 * 24 * time.Hour

// IssueToken signs a session token for a player.
func IssueToken(secret, playerID, name string, admin bool) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   playerID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionDuration)),
		},
		Name:  name,
		Admin: admin,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Auth returns middleware that verifies the "Authorization: Bearer <token>"
// header and stores the player's ID, name, and admin flag in the request
// context under "playerID", "playerName", and "isAdmin".
func Auth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or invalid authorization header",
			})
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}
		if claims.Subject == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "token missing subject",
			})
		}

		c.Locals("playerID", claims.Subject)
		c.Locals("playerName", claims.Name)
		c.Locals("isAdmin", claims.Admin)
		return c.Next()
	}
}

// RequireAdmin returns middleware that only lets admins through. It must
// run after Auth, which populates "isAdmin".
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isAdmin, ok := c.Locals("isAdmin").(bool)
		if !ok || !isAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "admin access required",
			})
		}
		return c.Next()
	}
}
