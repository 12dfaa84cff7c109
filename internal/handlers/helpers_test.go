package handlers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/golfbuddy/backend/internal/models"
)

func TestBestScoresByHoleKeepsMinimum(t *testing.T) {
	player := uuid.New()
	scores := []models.Score{
		{PlayerID: player, HoleNumber: 1, Strokes: 5},
		{PlayerID: player, HoleNumber: 1, Strokes: 4},
		{PlayerID: player, HoleNumber: 1, Strokes: 6},
		{PlayerID: player, HoleNumber: 2, Strokes: 3},
	}

	best := bestScoresByHole(scores)
	assert.Equal(t, map[int]int{1: 4, 2: 3}, best[player])
}

func TestBestScoresByHoleSeparatesPlayers(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	scores := []models.Score{
		{PlayerID: a, HoleNumber: 1, Strokes: 4},
		{PlayerID: b, HoleNumber: 1, Strokes: 3},
	}

	best := bestScoresByHole(scores)
	assert.Equal(t, 4, best[a][1])
	assert.Equal(t, 3, best[b][1])
}

func TestHoleScoresFromBestFlattens(t *testing.T) {
	player := uuid.New()
	flat := holeScoresFromBest(map[uuid.UUID]map[int]int{
		player: {1: 4, 2: 3},
	})

	assert.Len(t, flat, 2)
	for _, hs := range flat {
		assert.Equal(t, player.String(), hs.PlayerID)
	}
}
