package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/golfbuddy/backend/internal/courses"
	"github.com/golfbuddy/backend/internal/models"
)

// TeeResponse describes one tee option on a scheduled round, with the
// numbers a player needs to pick where to play from.
type TeeResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Color         string  `json:"color"`
	Rating        float64 `json:"rating"`
	Slope         int     `json:"slope"`
	TotalPar      int     `json:"total_par"`
	TotalDistance int     `json:"total_distance"`
	Pars          []int   `json:"pars"`
	StrokeIndexes []int   `json:"stroke_indexes"`
}

// RoundResponse is one entry of the trip schedule.
type RoundResponse struct {
	ID         string        `json:"id"`
	Date       string        `json:"date"`
	TeeTime    string        `json:"tee_time"`
	CourseName string        `json:"course_name"`
	Tees       []TeeResponse `json:"tees"`
}

func roundResponse(scheduled courses.ScheduledRound) RoundResponse {
	tees := make([]TeeResponse, 0, len(scheduled.TeeIDs))
	for _, teeID := range scheduled.TeeIDs {
		tee, ok := courses.FindTee(scheduled.CourseName, teeID)
		if !ok {
			continue
		}
		tees = append(tees, TeeResponse{
			ID:            teeID,
			Name:          tee.Name,
			Color:         tee.Color,
			Rating:        tee.Rating,
			Slope:         tee.Slope,
			TotalPar:      tee.TotalPar,
			TotalDistance: tee.TotalDistance,
			Pars:          tee.Pars,
			StrokeIndexes: tee.StrokeIndexes,
		})
	}
	return RoundResponse{
		ID:         scheduled.ID,
		Date:       scheduled.Date,
		TeeTime:    scheduled.TeeTime,
		CourseName: scheduled.CourseName,
		Tees:       tees,
	}
}

// GetRounds returns the handler for GET /rounds: the whole trip schedule
// with each round's tee options. The schedule is static, so this never
// touches the database.
func GetRounds() fiber.Handler {
	return func(c *fiber.Ctx) error {
		schedule := courses.Schedule()
		response := make([]RoundResponse, 0, len(schedule))
		for _, scheduled := range schedule {
			response = append(response, roundResponse(scheduled))
		}
		return c.JSON(response)
	}
}

// GetRound returns the handler for GET /rounds/:roundID: one schedule
// entry, plus whether the authenticated player has finalized it yet.
func GetRound(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheduled, ok := courses.ScheduledRoundByID(c.Params("roundID"))
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "round not found",
			})
		}

		finalized := false
		if round, err := findRound(db, scheduled.ID); err == nil {
			if playerID, err := currentPlayerID(c); err == nil {
				var count int64
				if err := db.Model(&models.FinalizedScore{}).
					Where("round_id = ? AND player_id = ?", round.ID, playerID).
					Count(&count).Error; err != nil {
					return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
						"error": "failed to check finalize status",
					})
				}
				finalized = count > 0
			}
		}

		return c.JSON(fiber.Map{
			"round":     roundResponse(scheduled),
			"finalized": finalized,
		})
	}
}
