package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/golfbuddy/backend/internal/models"
)

// GetPlayers returns the handler for GET /players: everyone who has logged
// in, ordered by name. Used for match setup and the leaderboards.
func GetPlayers(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var players []models.Player
		if err := db.Order("name").Find(&players).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch players",
			})
		}

		response := make([]PlayerResponse, 0, len(players))
		for _, p := range players {
			response = append(response, playerResponse(p))
		}
		return c.JSON(response)
	}
}

// UpdateHandicapRequest is the JSON body for PUT /players/:id/handicap.
type UpdateHandicapRequest struct {
	HandicapIndex float64 `json:"handicap_index"`
}

// UpdateHandicap returns the handler for PUT /players/:id/handicap.
// Admin only: handicap indexes are maintained centrally during the week so
// nobody quietly inflates their own. A player needs an index on file before
// they can finalize a round.
func UpdateHandicap(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		playerID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid player ID",
			})
		}

		var req UpdateHandicapRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
		// WHS caps at 54.0; allow plus handicaps at the other end.
		if req.HandicapIndex < -10 || req.HandicapIndex > 54 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "handicap_index must be between -10 and 54",
			})
		}

		var player models.Player
		if err := db.First(&player, "id = ?", playerID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "player not found",
			})
		}

		if err := db.Model(&player).Update("handicap_index", req.HandicapIndex).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to update handicap",
			})
		}
		player.HandicapIndex = &req.HandicapIndex
		return c.JSON(playerResponse(player))
	}
}
