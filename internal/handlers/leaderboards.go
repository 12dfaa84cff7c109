package handlers

import (
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/golfbuddy/backend/internal/models"
)

// MoneyLeaderboardEntry is one player's running money total across the week:
// tournament prizes, skins, and twos.
type MoneyLeaderboardEntry struct {
	PlayerID      string `json:"player_id"`
	PlayerName    string `json:"player_name"`
	PrizeWinnings int    `json:"prize_winnings"`
	SkinWinnings  int    `json:"skin_winnings"`
	TwoWinnings   int    `json:"two_winnings"`
	Total         int    `json:"total"`
}

// MoneyLeaderboard returns the handler for GET /leaderboards/money: every
// player's settled winnings across all rounds, richest first.
func MoneyLeaderboard(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		totals := make(map[uuid.UUID]*MoneyLeaderboardEntry)
		entry := func(playerID uuid.UUID, name string) *MoneyLeaderboardEntry {
			e, ok := totals[playerID]
			if !ok {
				e = &MoneyLeaderboardEntry{PlayerID: playerID.String(), PlayerName: name}
				totals[playerID] = e
			}
			return e
		}

		var results []models.RoundResult
		if err := db.Preload("Player").Find(&results).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch round results",
			})
		}
		for _, r := range results {
			entry(r.PlayerID, r.Player.Name).PrizeWinnings += r.Payout
		}

		var skins []models.SkinResult
		if err := db.Preload("Player").Find(&skins).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch skins",
			})
		}
		for _, s := range skins {
			entry(s.PlayerID, s.Player.Name).SkinWinnings += s.Payout
		}

		var twos []models.TwoResult
		if err := db.Preload("Player").Find(&twos).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch twos",
			})
		}
		for _, t := range twos {
			entry(t.PlayerID, t.Player.Name).TwoWinnings += t.Payout
		}

		board := make([]MoneyLeaderboardEntry, 0, len(totals))
		for _, e := range totals {
			e.Total = e.PrizeWinnings + e.SkinWinnings + e.TwoWinnings
			board = append(board, *e)
		}
		sort.Slice(board, func(i, j int) bool {
			if board[i].Total != board[j].Total {
				return board[i].Total > board[j].Total
			}
			return board[i].PlayerName < board[j].PlayerName
		})
		return c.JSON(board)
	}
}

// MatchLeaderboardEntry is one player's match betting record. Payouts are a
// player's share of their team's signed leg payouts plus their own birdie
// bonuses; wins/losses/ties count the total leg of each settled match the
// player was in.
type MatchLeaderboardEntry struct {
	PlayerID        string `json:"player_id"`
	PlayerName      string `json:"player_name"`
	Wins            int    `json:"wins"`
	Losses          int    `json:"losses"`
	Ties            int    `json:"ties"`
	FrontNinePayout int    `json:"front_nine_payout"`
	BackNinePayout  int    `json:"back_nine_payout"`
	TotalPayout     int    `json:"total_payout"`
	BirdiePayout    int    `json:"birdie_payout"`
	Net             int    `json:"net"`
}

// MatchLeaderboard returns the handler for GET /leaderboards/matches.
// An optional ?round= query restricts it to one round's matches; otherwise
// the record covers the whole week.
func MatchLeaderboard(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		matchQuery := db.Preload("Players.Player")
		if slug := c.Query("round"); slug != "" {
			round, err := findRound(db, slug)
			if err != nil {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "round not found",
				})
			}
			matchQuery = matchQuery.Where("round_id = ?", round.ID)
		}

		var matches []models.Match
		if err := matchQuery.Find(&matches).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch matches",
			})
		}
		if len(matches) == 0 {
			return c.JSON([]MatchLeaderboardEntry{})
		}

		matchIDs := make([]uuid.UUID, 0, len(matches))
		for _, m := range matches {
			matchIDs = append(matchIDs, m.ID)
		}

		var results []models.MatchResult
		if err := db.Where("match_id IN ?", matchIDs).Find(&results).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch match results",
			})
		}
		resultsByMatch := make(map[uuid.UUID]map[models.TeamSide]models.MatchResult)
		for _, r := range results {
			if resultsByMatch[r.MatchID] == nil {
				resultsByMatch[r.MatchID] = make(map[models.TeamSide]models.MatchResult)
			}
			resultsByMatch[r.MatchID][r.Team] = r
		}

		var birdies []models.MatchBirdie
		if err := db.Where("match_id IN ?", matchIDs).Find(&birdies).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch birdies",
			})
		}

		board := make(map[uuid.UUID]*MatchLeaderboardEntry)
		entry := func(playerID uuid.UUID, name string) *MatchLeaderboardEntry {
			e, ok := board[playerID]
			if !ok {
				e = &MatchLeaderboardEntry{PlayerID: playerID.String(), PlayerName: name}
				board[playerID] = e
			}
			return e
		}

		for _, m := range matches {
			teamResults, settled := resultsByMatch[m.ID]
			if !settled {
				continue
			}
			perTeam := m.MatchType.PlayersPerTeam()
			if perTeam == 0 {
				continue
			}
			for _, mp := range m.Players {
				r, ok := teamResults[mp.Team]
				if !ok {
					continue
				}
				e := entry(mp.PlayerID, mp.Player.Name)
				// Team payouts split evenly across teammates.
				e.FrontNinePayout += r.FrontNinePayout / perTeam
				e.BackNinePayout += r.BackNinePayout / perTeam
				e.TotalPayout += r.TotalPayout / perTeam
				switch {
				case r.TotalPayout > 0:
					e.Wins++
				case r.TotalPayout < 0:
					e.Losses++
				default:
					e.Ties++
				}
			}
		}

		names := make(map[uuid.UUID]string)
		for _, m := range matches {
			for _, mp := range m.Players {
				names[mp.PlayerID] = mp.Player.Name
			}
		}
		for _, b := range birdies {
			entry(b.PlayerID, names[b.PlayerID]).BirdiePayout += b.Payout
		}

		response := make([]MatchLeaderboardEntry, 0, len(board))
		for _, e := range board {
			e.Net = e.FrontNinePayout + e.BackNinePayout + e.TotalPayout + e.BirdiePayout
			response = append(response, *e)
		}
		sort.Slice(response, func(i, j int) bool {
			if response[i].Net != response[j].Net {
				return response[i].Net > response[j].Net
			}
			return response[i].PlayerName < response[j].PlayerName
		})
		return c.JSON(response)
	}
}
