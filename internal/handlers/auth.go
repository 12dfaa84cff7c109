package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/golfbuddy/backend/internal/config"
	"github.com/golfbuddy/backend/internal/logger"
	"github.com/golfbuddy/backend/internal/middleware"
	"github.com/golfbuddy/backend/internal/models"
	"github.com/golfbuddy/backend/internal/roster"
)

// LoginRequest is the JSON body for POST /auth/login. Phone is the only
// credential: the trip roster is the guest list, and being on it is what
// authorizes you.
type LoginRequest struct {
	Phone string `json:"phone"`
}

// PlayerResponse is the player shape returned to the app.
type PlayerResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	HandicapIndex *float64 `json:"handicap_index"`
	Admin         bool     `json:"admin"`
}

// LoginResponse carries the session token plus the player it belongs to.
type LoginResponse struct {
	Token  string         `json:"token"`
	Player PlayerResponse `json:"player"`
}

func playerResponse(p models.Player) PlayerResponse {
	return PlayerResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		Phone:         p.Phone,
		HandicapIndex: p.HandicapIndex,
		Admin:         p.Admin,
	}
}

// Login returns the handler for POST /auth/login.
//
// The phone number is normalized and checked against the injected roster.
// Unknown numbers get a 401; known numbers get their player row found or
// created (lazy sync, the first login creates the row) and a signed session
// token. Name and admin status always resync from the roster, so a roster
// edit takes effect at the player's next login.
func Login(db *gorm.DB, cfg *config.Config, guests roster.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
		if req.Phone == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "phone is required",
			})
		}

		entry, ok := guests.Lookup(req.Phone)
		if !ok {
			logger.Get().WithField("phone", roster.NormalizePhone(req.Phone)).
				Warn("login attempt from number not on roster")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "phone number is not on the trip roster",
			})
		}

		var player models.Player
		err := db.Where("roster_id = ?", entry.ID).First(&player).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			player = models.Player{
				RosterID: entry.ID,
				Name:     entry.Name,
				Phone:    entry.Phone,
				Admin:    entry.Admin,
			}
			if err := db.Create(&player).Error; err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "failed to create player record",
				})
			}
		case err != nil:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "database error",
			})
		default:
			// Resync mutable roster fields on every login.
			if player.Name != entry.Name || player.Phone != entry.Phone || player.Admin != entry.Admin {
				player.Name = entry.Name
				player.Phone = entry.Phone
				player.Admin = entry.Admin
				if err := db.Save(&player).Error; err != nil {
					return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
						"error": "failed to update player record",
					})
				}
			}
		}

		token, err := middleware.IssueToken(cfg.JWTSecret, player.ID.String(), player.Name, player.Admin)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to issue session token",
			})
		}

		logger.WithPlayer(player.ID.String()).Info("player logged in")
		return c.JSON(LoginResponse{Token: token, Player: playerResponse(player)})
	}
}

// Me returns the handler for GET /auth/me: the authenticated player's own
// record, used by the app to restore a session.
func Me(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		playerID, err := currentPlayerID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid player ID",
			})
		}

		var player models.Player
		if err := db.First(&player, "id = ?", playerID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "player not found",
			})
		}
		return c.JSON(playerResponse(player))
	}
}
