package handlers

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/golfbuddy/backend/internal/courses"
	"github.com/golfbuddy/backend/internal/logger"
	"github.com/golfbuddy/backend/internal/models"
	"github.com/golfbuddy/backend/internal/scoring"
	"github.com/golfbuddy/backend/internal/websocket"
)

// ScoreEntry is one hole's score in a submission.
type ScoreEntry struct {
	HoleNumber int `json:"hole_number"`
	Strokes    int `json:"strokes"`
}

// SubmitScoresRequest is the JSON body for POST /rounds/:roundID/scores.
// Players submit one hole at a time walking the course, or a batch when
// catching up.
type SubmitScoresRequest struct {
	Scores []ScoreEntry `json:"scores"`
}

// SubmitScores returns the handler for POST /rounds/:roundID/scores. Scores
// are recorded for the authenticated player only. Re-submitting a hole adds
// a new row rather than overwriting; settlement takes the best score per
// hole. Once a player finalizes a round their card is locked and further
// submissions are rejected.
func SubmitScores(db *gorm.DB, hub *websocket.Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		playerID, err := currentPlayerID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid player ID",
			})
		}

		var req SubmitScoresRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
		if len(req.Scores) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "scores are required",
			})
		}
		for _, entry := range req.Scores {
			if entry.HoleNumber < 1 || entry.HoleNumber > scoring.HolesPerRound {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "hole_number must be between 1 and 18",
				})
			}
			if entry.Strokes < 1 {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "strokes must be at least 1",
				})
			}
		}

		round, err := getOrCreateRound(db, c.Params("roundID"))
		if err == errRoundNotScheduled {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "round is not on the schedule",
			})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to resolve round",
			})
		}

		var finalized int64
		if err := db.Model(&models.FinalizedScore{}).
			Where("round_id = ? AND player_id = ?", round.ID, playerID).
			Count(&finalized).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to check finalize status",
			})
		}
		if finalized > 0 {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "round has been finalized; scores are locked",
			})
		}

		var player models.Player
		if err := db.First(&player, "id = ?", playerID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "player not found",
			})
		}

		rows := make([]models.Score, 0, len(req.Scores))
		for _, entry := range req.Scores {
			rows = append(rows, models.Score{
				RoundID:    round.ID,
				PlayerID:   playerID,
				HoleNumber: entry.HoleNumber,
				Strokes:    entry.Strokes,
			})
		}
		if err := db.Create(&rows).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to save scores",
			})
		}

		for _, row := range rows {
			hub.BroadcastScore(websocket.ScoreUpdate{
				RoundID:    round.ExternalID,
				PlayerID:   playerID.String(),
				PlayerName: player.Name,
				HoleNumber: row.HoleNumber,
				Strokes:    row.Strokes,
			})
		}

		logger.WithRound(round.ExternalID).WithField("holes", len(rows)).Debug("scores recorded")
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"recorded": len(rows),
		})
	}
}

// PlayerScorecard is one player's card in a round's live scores.
type PlayerScorecard struct {
	PlayerID   string      `json:"player_id"`
	PlayerName string      `json:"player_name"`
	Holes      map[int]int `json:"holes"`
	Total      int         `json:"total"`
}

// GetRoundScores returns the handler for GET /rounds/:roundID/scores: every
// player's best score per hole, the view the live leaderboard renders.
func GetRoundScores(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		round, err := findRound(db, c.Params("roundID"))
		if err != nil {
			// A scheduled round nobody has scored yet is just empty.
			if _, ok := courses.ScheduledRoundByID(c.Params("roundID")); ok {
				return c.JSON([]PlayerScorecard{})
			}
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "round not found",
			})
		}

		var scores []models.Score
		if err := db.Preload("Player").Where("round_id = ?", round.ID).Find(&scores).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch scores",
			})
		}

		names := make(map[string]string)
		for _, s := range scores {
			names[s.PlayerID.String()] = s.Player.Name
		}

		best := bestScoresByHole(scores)
		cards := make([]PlayerScorecard, 0, len(best))
		for playerID, holes := range best {
			cards = append(cards, PlayerScorecard{
				PlayerID:   playerID.String(),
				PlayerName: names[playerID.String()],
				Holes:      holes,
				Total:      scoring.Total(holes),
			})
		}
		sort.Slice(cards, func(i, j int) bool {
			if cards[i].Total != cards[j].Total {
				return cards[i].Total < cards[j].Total
			}
			return cards[i].PlayerName < cards[j].PlayerName
		})
		return c.JSON(cards)
	}
}

// FinalizeRequest is the JSON body for POST /rounds/:roundID/finalize. The
// tee determines the slope, rating, and stroke indexes used for the net
// computation.
type FinalizeRequest struct {
	TeeID string `json:"tee_id"`
}

// FinalizeRound returns the handler for POST /rounds/:roundID/finalize.
//
// Finalizing locks a player's card: it collapses their raw scores to the
// best per hole, requires all 18, computes the course handicap from their
// index and the chosen tee, allocates strokes across holes by difficulty,
// and writes the per-hole net scores plus a finalized snapshot in one
// transaction. A player can finalize each round once.
func FinalizeRound(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		playerID, err := currentPlayerID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid player ID",
			})
		}

		var req FinalizeRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
		if req.TeeID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "tee_id is required",
			})
		}

		round, err := findRound(db, c.Params("roundID"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "round not found",
			})
		}

		tee, ok := courses.FindTee(round.CourseName, req.TeeID)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "unknown tee for this course",
			})
		}

		var player models.Player
		if err := db.First(&player, "id = ?", playerID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "player not found",
			})
		}
		if player.HandicapIndex == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "handicap index is not set; ask an admin to add it",
			})
		}

		var existing int64
		if err := db.Model(&models.FinalizedScore{}).
			Where("round_id = ? AND player_id = ?", round.ID, playerID).
			Count(&existing).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to check finalize status",
			})
		}
		if existing > 0 {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "round is already finalized",
			})
		}

		var scores []models.Score
		if err := db.Where("round_id = ? AND player_id = ?", round.ID, playerID).Find(&scores).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch scores",
			})
		}
		gross := bestScoresByHole(scores)[playerID]
		if len(gross) != scoring.HolesPerRound {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "all 18 holes must be scored before finalizing",
			})
		}

		courseHandicap := scoring.CourseHandicap(*player.HandicapIndex, tee.Slope, tee.Rating, tee.TotalPar)
		allocation, err := scoring.AllocateStrokes(courseHandicap, tee.StrokeIndexes)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to allocate handicap strokes",
			})
		}
		net := scoring.ApplyStrokes(gross, allocation)

		final := models.FinalizedScore{
			RoundID:          round.ID,
			PlayerID:         playerID,
			TeeID:            req.TeeID,
			TotalGross:       scoring.Total(gross),
			TotalNet:         scoring.Total(net),
			CourseHandicap:   courseHandicap,
			StrokeAllocation: datatypes.NewJSONType(allocation),
			FinalizedAt:      time.Now().UTC(),
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("round_id = ? AND player_id = ?", round.ID, playerID).
				Delete(&models.NetScore{}).Error; err != nil {
				return err
			}
			netRows := make([]models.NetScore, 0, scoring.HolesPerRound)
			for hole := 1; hole <= scoring.HolesPerRound; hole++ {
				netRows = append(netRows, models.NetScore{
					RoundID:      round.ID,
					PlayerID:     playerID,
					HoleNumber:   hole,
					GrossScore:   gross[hole],
					NetValue:     net[hole],
					HoleHandicap: tee.StrokeIndexes[hole-1],
				})
			}
			if err := tx.Create(&netRows).Error; err != nil {
				return err
			}
			return tx.Create(&final).Error
		})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to finalize round",
			})
		}

		logger.WithRound(round.ExternalID).WithFields(map[string]interface{}{
			"player":          playerID.String(),
			"course_handicap": courseHandicap,
			"total_gross":     final.TotalGross,
			"total_net":       final.TotalNet,
		}).Info("round finalized")

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"course_handicap": courseHandicap,
			"total_gross":     final.TotalGross,
			"total_net":       final.TotalNet,
			"finalized_at":    final.FinalizedAt,
		})
	}
}
