// Package handlers contains the HTTP route handlers for the API. Each
// exported function follows the handler-factory pattern: it takes its
// dependencies (the database handle, config, the roster, the websocket hub)
// and returns a fiber.Handler, so nothing is reached through globals.
package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/golfbuddy/backend/internal/courses"
	"github.com/golfbuddy/backend/internal/models"
)

// currentPlayerID reads the authenticated player's UUID from the request
// context, where the Auth middleware stored it.
func currentPlayerID(c *fiber.Ctx) (uuid.UUID, error) {
	idStr, _ := c.Locals("playerID").(string)
	return uuid.Parse(idStr)
}

// isAdmin reads the admin flag the Auth middleware stored in the context.
func isAdmin(c *fiber.Ctx) bool {
	admin, _ := c.Locals("isAdmin").(bool)
	return admin
}

// getOrCreateRound resolves a schedule slug ("mon-1") to its database row,
// creating the row the first time anyone touches that round. The schedule
// itself is static; only rounds that actually get scores exist in the DB.
func getOrCreateRound(db *gorm.DB, externalID string) (*models.Round, error) {
	scheduled, ok := courses.ScheduledRoundByID(externalID)
	if !ok {
		return nil, errRoundNotScheduled
	}

	var round models.Round
	err := db.Where("external_id = ?", externalID).First(&round).Error
	if err == nil {
		return &round, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", scheduled.Date)
	if err != nil {
		return nil, err
	}
	round = models.Round{
		ExternalID: externalID,
		Date:       date,
		CourseName: scheduled.CourseName,
	}
	if err := db.Create(&round).Error; err != nil {
		return nil, err
	}
	return &round, nil
}

// findRound resolves a schedule slug to an existing database row without
// creating one. Used by read paths and settlement, which are meaningless
// for a round nobody has played.
func findRound(db *gorm.DB, externalID string) (*models.Round, error) {
	var round models.Round
	if err := db.Where("external_id = ?", externalID).First(&round).Error; err != nil {
		return nil, err
	}
	return &round, nil
}

var errRoundNotScheduled = errors.New("round is not on the schedule")

// bestScoresByHole collapses raw score rows into each player's best score
// per hole. Duplicate entries for the same hole keep the minimum, matching
// how settlement treats re-entered scores everywhere else.
func bestScoresByHole(scores []models.Score) map[uuid.UUID]map[int]int {
	best := make(map[uuid.UUID]map[int]int)
	for _, s := range scores {
		holes, ok := best[s.PlayerID]
		if !ok {
			holes = make(map[int]int)
			best[s.PlayerID] = holes
		}
		if current, ok := holes[s.HoleNumber]; !ok || s.Strokes < current {
			holes[s.HoleNumber] = s.Strokes
		}
	}
	return best
}
