package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/golfbuddy/backend/internal/courses"
	"github.com/golfbuddy/backend/internal/logger"
	"github.com/golfbuddy/backend/internal/models"
	"github.com/golfbuddy/backend/internal/scoring"
)

// CreateMatchRequest is the JSON body for POST /matches. Bets are whole
// dollars per leg; a zero bet leaves that leg out of the money.
type CreateMatchRequest struct {
	RoundID      string   `json:"round_id"`
	MatchType    string   `json:"match_type"`
	Scoring      string   `json:"scoring"`
	FrontNineBet int      `json:"front_nine_bet"`
	BackNineBet  int      `json:"back_nine_bet"`
	TotalBet     int      `json:"total_bet"`
	BirdieBet    int      `json:"birdie_bet"`
	TeamA        []string `json:"team_a"`
	TeamB        []string `json:"team_b"`
}

// MatchPlayerResponse is one player's entry on a match roster.
type MatchPlayerResponse struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Team       string `json:"team"`
}

// MatchResponse is a match as returned to the app.
type MatchResponse struct {
	ID           string                `json:"id"`
	RoundID      string                `json:"round_id"`
	MatchType    string                `json:"match_type"`
	Scoring      string                `json:"scoring"`
	FrontNineBet int                   `json:"front_nine_bet"`
	BackNineBet  int                   `json:"back_nine_bet"`
	TotalBet     int                   `json:"total_bet"`
	BirdieBet    int                   `json:"birdie_bet"`
	CreatedBy    string                `json:"created_by"`
	Players      []MatchPlayerResponse `json:"players"`
	Settled      bool                  `json:"settled"`
}

func matchResponse(m models.Match, roundExternalID string, settled bool) MatchResponse {
	players := make([]MatchPlayerResponse, 0, len(m.Players))
	for _, mp := range m.Players {
		players = append(players, MatchPlayerResponse{
			PlayerID:   mp.PlayerID.String(),
			PlayerName: mp.Player.Name,
			Team:       string(mp.Team),
		})
	}
	return MatchResponse{
		ID:           m.ID.String(),
		RoundID:      roundExternalID,
		MatchType:    string(m.MatchType),
		Scoring:      string(m.Scoring),
		FrontNineBet: m.FrontNineBet,
		BackNineBet:  m.BackNineBet,
		TotalBet:     m.TotalBet,
		BirdieBet:    m.BirdieBet,
		CreatedBy:    m.CreatedBy.String(),
		Players:      players,
		Settled:      settled,
	}
}

// CreateMatch returns the handler for POST /matches. Anyone on the trip can
// set up a match; the creator does not have to be playing in it.
func CreateMatch(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		creatorID, err := currentPlayerID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid player ID",
			})
		}

		var req CreateMatchRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}

		matchType := models.MatchType(req.MatchType)
		perTeam := matchType.PlayersPerTeam()
		if perTeam == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "match_type must be 1v1, 2v2, or 4v4",
			})
		}
		mode := models.ScoringMode(req.Scoring)
		if mode == "" {
			mode = models.ScoringGross
		}
		if mode != models.ScoringGross && mode != models.ScoringNet {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "scoring must be gross or net",
			})
		}
		if req.FrontNineBet < 0 || req.BackNineBet < 0 || req.TotalBet < 0 || req.BirdieBet < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "bets cannot be negative",
			})
		}
		if len(req.TeamA) != perTeam || len(req.TeamB) != perTeam {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "team sizes must match the match type",
			})
		}

		seen := make(map[string]bool)
		parseTeam := func(ids []string, side models.TeamSide) ([]models.MatchPlayer, error) {
			players := make([]models.MatchPlayer, 0, len(ids))
			for _, raw := range ids {
				id, err := uuid.Parse(raw)
				if err != nil {
					return nil, err
				}
				if seen[raw] {
					return nil, errDuplicateMatchPlayer
				}
				seen[raw] = true
				players = append(players, models.MatchPlayer{PlayerID: id, Team: side})
			}
			return players, nil
		}
		teamA, err := parseTeam(req.TeamA, models.TeamA)
		if err == nil {
			var teamB []models.MatchPlayer
			teamB, err = parseTeam(req.TeamB, models.TeamB)
			teamA = append(teamA, teamB...)
		}
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "teams must be valid, non-overlapping player IDs",
			})
		}

		round, err := getOrCreateRound(db, req.RoundID)
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

		match := models.Match{
			RoundID:      round.ID,
			MatchType:    matchType,
			Scoring:      mode,
			FrontNineBet: req.FrontNineBet,
			BackNineBet:  req.BackNineBet,
			TotalBet:     req.TotalBet,
			BirdieBet:    req.BirdieBet,
			CreatedBy:    creatorID,
		}
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&match).Error; err != nil {
				return err
			}
			for i := range teamA {
				teamA[i].MatchID = match.ID
			}
			return tx.Create(&teamA).Error
		})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create match",
			})
		}

		logger.WithMatch(match.ID.String()).WithField("round", round.ExternalID).Info("match created")

		var created models.Match
		if err := db.Preload("Players.Player").First(&created, "id = ?", match.ID).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load match",
			})
		}
		return c.Status(fiber.StatusCreated).JSON(matchResponse(created, round.ExternalID, false))
	}
}

// GetMatches returns the handler for GET /matches. An optional ?round=
// query filters to one schedule slug.
func GetMatches(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := db.Preload("Players.Player").Preload("Round").Order("created_at")

		if slug := c.Query("round"); slug != "" {
			round, err := findRound(db, slug)
			if err != nil {
				if _, ok := courses.ScheduledRoundByID(slug); ok {
					return c.JSON([]MatchResponse{})
				}
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "round not found",
				})
			}
			query = query.Where("round_id = ?", round.ID)
		}

		var matches []models.Match
		if err := query.Find(&matches).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch matches",
			})
		}

		settledIDs := make(map[uuid.UUID]bool)
		if len(matches) > 0 {
			ids := make([]uuid.UUID, 0, len(matches))
			for _, m := range matches {
				ids = append(ids, m.ID)
			}
			var results []models.MatchResult
			if err := db.Where("match_id IN ?", ids).Find(&results).Error; err == nil {
				for _, r := range results {
					settledIDs[r.MatchID] = true
				}
			}
		}

		response := make([]MatchResponse, 0, len(matches))
		for _, m := range matches {
			response = append(response, matchResponse(m, m.Round.ExternalID, settledIDs[m.ID]))
		}
		return c.JSON(response)
	}
}

var (
	errDuplicateMatchPlayer = errors.New("player appears on both teams")
	errNetScoresMissing     = errors.New("every player in a net match must finalize the round first")
	errTeamScoresMissing    = errors.New("both teams need recorded scores before settling")
)

// SettleMatch returns the handler for POST /matches/:matchID/settle.
//
// Gross matches settle from raw scores (best per hole per player); net
// matches settle from the per-hole net scores written at finalize, so every
// player in a net match must have finalized first. A side with no recorded
// scores at all blocks settlement either way. Settlement writes one
// MatchResult row per team plus a MatchBirdie row per birdie bonus, and
// re-settling replaces the previous outcome.
func SettleMatch(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		matchID, err := uuid.Parse(c.Params("matchID"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid match ID",
			})
		}

		var match models.Match
		if err := db.Preload("Players").Preload("Round").First(&match, "id = ?", matchID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "match not found",
			})
		}

		grossScoring := match.Scoring == models.ScoringGross
		teamA, teamB, err := buildTeams(db, match, grossScoring)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		bets := scoring.Bets{
			FrontNine: match.FrontNineBet,
			BackNine:  match.BackNineBet,
			Total:     match.TotalBet,
			Birdie:    match.BirdieBet,
		}
		settlement, err := scoring.SettleMatch(teamA, teamB, bets, grossScoring, courses.ParsFor(match.Round.CourseName))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		rowA := models.MatchResult{MatchID: match.ID, Team: models.TeamA}
		rowB := models.MatchResult{MatchID: match.ID, Team: models.TeamB}
		applySegment := func(seg scoring.Segment, pointsA, pointsB *int, payoutA, payoutB *int) {
			if seg.Winner == scoring.WinnerTeamA {
				*pointsA = 1
			}
			if seg.Winner == scoring.WinnerTeamB {
				*pointsB = 1
			}
			*payoutA = seg.PayoutA
			*payoutB = seg.PayoutB
		}
		applySegment(settlement.FrontNine, &rowA.FrontNinePoints, &rowB.FrontNinePoints, &rowA.FrontNinePayout, &rowB.FrontNinePayout)
		applySegment(settlement.BackNine, &rowA.BackNinePoints, &rowB.BackNinePoints, &rowA.BackNinePayout, &rowB.BackNinePayout)
		applySegment(settlement.Total, &rowA.TotalPoints, &rowB.TotalPoints, &rowA.TotalPayout, &rowB.TotalPayout)

		var birdieRows []models.MatchBirdie
		for _, b := range settlement.Birdies {
			playerID, err := uuid.Parse(b.PlayerID)
			if err != nil {
				continue
			}
			birdieRows = append(birdieRows, models.MatchBirdie{
				MatchID:    match.ID,
				PlayerID:   playerID,
				HoleNumber: b.Hole,
				Payout:     b.Amount,
			})
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("match_id = ?", match.ID).Delete(&models.MatchResult{}).Error; err != nil {
				return err
			}
			if err := tx.Where("match_id = ?", match.ID).Delete(&models.MatchBirdie{}).Error; err != nil {
				return err
			}
			if err := tx.Create(&rowA).Error; err != nil {
				return err
			}
			if err := tx.Create(&rowB).Error; err != nil {
				return err
			}
			if len(birdieRows) > 0 {
				return tx.Create(&birdieRows).Error
			}
			return nil
		})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to save match results",
			})
		}

		logger.WithMatch(match.ID.String()).WithFields(map[string]interface{}{
			"front":   string(settlement.FrontNine.Winner),
			"back":    string(settlement.BackNine.Winner),
			"total":   string(settlement.Total.Winner),
			"birdies": len(birdieRows),
		}).Info("match settled")

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"front_nine": segmentResponse(settlement.FrontNine),
			"back_nine":  segmentResponse(settlement.BackNine),
			"total":      segmentResponse(settlement.Total),
			"birdies":    len(birdieRows),
		})
	}
}

func segmentResponse(seg scoring.Segment) fiber.Map {
	return fiber.Map{
		"winner":   string(seg.Winner),
		"payout_a": seg.PayoutA,
		"payout_b": seg.PayoutB,
	}
}

// buildTeams assembles both sides' score sets in the match's scoring basis.
func buildTeams(db *gorm.DB, match models.Match, grossScoring bool) (scoring.Team, scoring.Team, error) {
	var teamA, teamB scoring.Team
	for _, mp := range match.Players {
		switch mp.Team {
		case models.TeamA:
			teamA.Players = append(teamA.Players, mp.PlayerID.String())
		case models.TeamB:
			teamB.Players = append(teamB.Players, mp.PlayerID.String())
		}
	}

	scoresFor := func(team *scoring.Team) error {
		ids := make([]uuid.UUID, 0, len(team.Players))
		for _, raw := range team.Players {
			id, err := uuid.Parse(raw)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}

		if grossScoring {
			var rows []models.Score
			if err := db.Where("round_id = ? AND player_id IN ?", match.RoundID, ids).Find(&rows).Error; err != nil {
				return err
			}
			if len(rows) == 0 {
				return errTeamScoresMissing
			}
			for playerID, holes := range bestScoresByHole(rows) {
				for hole, strokes := range holes {
					team.Scores = append(team.Scores, scoring.HoleScore{
						PlayerID: playerID.String(),
						Hole:     hole,
						Strokes:  strokes,
					})
				}
			}
			return nil
		}

		var rows []models.NetScore
		if err := db.Where("round_id = ? AND player_id IN ?", match.RoundID, ids).Find(&rows).Error; err != nil {
			return err
		}
		if len(rows) < len(ids)*scoring.HolesPerRound {
			return errNetScoresMissing
		}
		for _, row := range rows {
			team.Scores = append(team.Scores, scoring.HoleScore{
				PlayerID: row.PlayerID.String(),
				Hole:     row.HoleNumber,
				Strokes:  row.NetValue,
			})
		}
		return nil
	}

	if err := scoresFor(&teamA); err != nil {
		return teamA, teamB, err
	}
	if err := scoresFor(&teamB); err != nil {
		return teamA, teamB, err
	}
	return teamA, teamB, nil
}

// MatchBirdieResponse is one birdie bonus from a settled match.
type MatchBirdieResponse struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	HoleNumber int    `json:"hole_number"`
	Payout     int    `json:"payout"`
}

// MatchResultResponse is one team's settled outcome.
type MatchResultResponse struct {
	Team            string `json:"team"`
	FrontNinePoints int    `json:"front_nine_points"`
	BackNinePoints  int    `json:"back_nine_points"`
	TotalPoints     int    `json:"total_points"`
	FrontNinePayout int    `json:"front_nine_payout"`
	BackNinePayout  int    `json:"back_nine_payout"`
	TotalPayout     int    `json:"total_payout"`
}

// GetMatchResults returns the handler for GET /matches/:matchID/results.
func GetMatchResults(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		matchID, err := uuid.Parse(c.Params("matchID"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid match ID",
			})
		}

		var results []models.MatchResult
		if err := db.Where("match_id = ?", matchID).Order("team").Find(&results).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch match results",
			})
		}
		if len(results) == 0 {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "match has not been settled",
			})
		}

		var birdies []models.MatchBirdie
		if err := db.Preload("Player").Where("match_id = ?", matchID).
			Order("hole_number").Find(&birdies).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch birdies",
			})
		}

		teamResp := make([]MatchResultResponse, 0, len(results))
		for _, r := range results {
			teamResp = append(teamResp, MatchResultResponse{
				Team:            string(r.Team),
				FrontNinePoints: r.FrontNinePoints,
				BackNinePoints:  r.BackNinePoints,
				TotalPoints:     r.TotalPoints,
				FrontNinePayout: r.FrontNinePayout,
				BackNinePayout:  r.BackNinePayout,
				TotalPayout:     r.TotalPayout,
			})
		}
		birdieResp := make([]MatchBirdieResponse, 0, len(birdies))
		for _, b := range birdies {
			birdieResp = append(birdieResp, MatchBirdieResponse{
				PlayerID:   b.PlayerID.String(),
				PlayerName: b.Player.Name,
				HoleNumber: b.HoleNumber,
				Payout:     b.Payout,
			})
		}

		return c.JSON(fiber.Map{
			"teams":   teamResp,
			"birdies": birdieResp,
		})
	}
}
