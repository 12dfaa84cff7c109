package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/golfbuddy/backend/internal/logger"
	"github.com/golfbuddy/backend/internal/models"
	"github.com/golfbuddy/backend/internal/scoring"
)

// SaveRoundResults returns the handler for POST /rounds/:roundID/results.
// Admin only. It settles a round's tournament money from the finalized
// scorecards: positions and prize payouts from net standings, skins and twos
// from the raw gross scores. Running it again re-settles from scratch, so an
// admin can redo a round after a late finalize.
func SaveRoundResults(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		round, err := findRound(db, c.Params("roundID"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "round not found",
			})
		}

		var finals []models.FinalizedScore
		if err := db.Where("round_id = ?", round.ID).Find(&finals).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch finalized scores",
			})
		}
		if len(finals) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "no finalized scores for this round",
			})
		}

		field := make([]scoring.PlayerScore, 0, len(finals))
		for _, f := range finals {
			field = append(field, scoring.PlayerScore{
				PlayerID: f.PlayerID.String(),
				Net:      f.TotalNet,
				Gross:    f.TotalGross,
			})
		}
		groups := scoring.RankPlayers(field)

		purse := scoring.DefaultPurse
		var resultRows []models.RoundResult
		for _, group := range groups {
			payout := purse.Prizes.PositionPayout(group.Position, len(group.Players))
			for _, p := range group.Players {
				playerID, err := uuid.Parse(p.PlayerID)
				if err != nil {
					continue
				}
				resultRows = append(resultRows, models.RoundResult{
					RoundID:    round.ID,
					PlayerID:   playerID,
					Position:   group.Position,
					NetScore:   p.Net,
					GrossScore: p.Gross,
					Payout:     payout,
				})
			}
		}

		// Skins and twos come from raw gross scores, so everyone who played
		// counts, finalized or not.
		var scores []models.Score
		if err := db.Where("round_id = ?", round.ID).Find(&scores).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch scores",
			})
		}
		holeScores := holeScoresFromBest(bestScoresByHole(scores))

		skins := scoring.ComputeSkins(holeScores)
		skinPayout := purse.SkinPayout(len(skins))
		var skinRows []models.SkinResult
		for _, skin := range skins {
			playerID, err := uuid.Parse(skin.PlayerID)
			if err != nil {
				continue
			}
			skinRows = append(skinRows, models.SkinResult{
				RoundID:    round.ID,
				PlayerID:   playerID,
				HoleNumber: skin.Hole,
				GrossScore: skin.Strokes,
				Payout:     skinPayout,
			})
		}

		twos := scoring.ComputeTwos(holeScores)
		twoPayout := purse.TwoPayout(len(twos))
		var twoRows []models.TwoResult
		for _, two := range twos {
			playerID, err := uuid.Parse(two.PlayerID)
			if err != nil {
				continue
			}
			twoRows = append(twoRows, models.TwoResult{
				RoundID:    round.ID,
				PlayerID:   playerID,
				HoleNumber: two.Hole,
				Payout:     twoPayout,
			})
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			for _, model := range []interface{}{&models.RoundResult{}, &models.SkinResult{}, &models.TwoResult{}} {
				if err := tx.Where("round_id = ?", round.ID).Delete(model).Error; err != nil {
					return err
				}
			}
			if err := tx.Create(&resultRows).Error; err != nil {
				return err
			}
			if len(skinRows) > 0 {
				if err := tx.Create(&skinRows).Error; err != nil {
					return err
				}
			}
			if len(twoRows) > 0 {
				if err := tx.Create(&twoRows).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to save results",
			})
		}

		logger.WithRound(round.ExternalID).WithFields(map[string]interface{}{
			"players": len(resultRows),
			"skins":   len(skinRows),
			"twos":    len(twoRows),
		}).Info("round results settled")

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"positions": len(resultRows),
			"skins":     len(skinRows),
			"twos":      len(twoRows),
		})
	}
}

// holeScoresFromBest flattens the per-player best-score maps into the flat
// slice the settlement functions consume.
func holeScoresFromBest(best map[uuid.UUID]map[int]int) []scoring.HoleScore {
	var out []scoring.HoleScore
	for playerID, holes := range best {
		for hole, strokes := range holes {
			out = append(out, scoring.HoleScore{
				PlayerID: playerID.String(),
				Hole:     hole,
				Strokes:  strokes,
			})
		}
	}
	return out
}

// RoundResultResponse is one player's settled finish in a round.
type RoundResultResponse struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Position   int    `json:"position"`
	NetScore   int    `json:"net_score"`
	GrossScore int    `json:"gross_score"`
	Payout     int    `json:"payout"`
}

// SkinResultResponse is one settled skin.
type SkinResultResponse struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	HoleNumber int    `json:"hole_number"`
	GrossScore int    `json:"gross_score"`
	Payout     int    `json:"payout"`
}

// TwoResultResponse is one settled two.
type TwoResultResponse struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	HoleNumber int    `json:"hole_number"`
	Payout     int    `json:"payout"`
}

// GetRoundResults returns the handler for GET /rounds/:roundID/results: the
// settled standings, skins, and twos for one round.
func GetRoundResults(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		round, err := findRound(db, c.Params("roundID"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "round not found",
			})
		}

		var results []models.RoundResult
		if err := db.Preload("Player").Where("round_id = ?", round.ID).
			Order("position, net_score, gross_score").Find(&results).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch results",
			})
		}
		var skins []models.SkinResult
		if err := db.Preload("Player").Where("round_id = ?", round.ID).
			Order("hole_number").Find(&skins).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch skins",
			})
		}
		var twos []models.TwoResult
		if err := db.Preload("Player").Where("round_id = ?", round.ID).
			Order("hole_number").Find(&twos).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch twos",
			})
		}

		resultResp := make([]RoundResultResponse, 0, len(results))
		for _, r := range results {
			resultResp = append(resultResp, RoundResultResponse{
				PlayerID:   r.PlayerID.String(),
				PlayerName: r.Player.Name,
				Position:   r.Position,
				NetScore:   r.NetScore,
				GrossScore: r.GrossScore,
				Payout:     r.Payout,
			})
		}
		skinResp := make([]SkinResultResponse, 0, len(skins))
		for _, s := range skins {
			skinResp = append(skinResp, SkinResultResponse{
				PlayerID:   s.PlayerID.String(),
				PlayerName: s.Player.Name,
				HoleNumber: s.HoleNumber,
				GrossScore: s.GrossScore,
				Payout:     s.Payout,
			})
		}
		twoResp := make([]TwoResultResponse, 0, len(twos))
		for _, t := range twos {
			twoResp = append(twoResp, TwoResultResponse{
				PlayerID:   t.PlayerID.String(),
				PlayerName: t.Player.Name,
				HoleNumber: t.HoleNumber,
				Payout:     t.Payout,
			})
		}

		return c.JSON(fiber.Map{
			"standings": resultResp,
			"skins":     skinResp,
			"twos":      twoResp,
		})
	}
}
