package handlers

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/golfbuddy/backend/internal/models"
)

func matchWithTwoPlayers() models.Match {
	return models.Match{
		ID:        uuid.New(),
		RoundID:   uuid.New(),
		MatchType: models.MatchType1v1,
		Players: []models.MatchPlayer{
			{PlayerID: uuid.New(), Team: models.TeamA},
			{PlayerID: uuid.New(), Team: models.TeamB},
		},
	}
}

func TestBuildTeamsRejectsGrossTeamWithoutScores(t *testing.T) {
	db, mock := newMockDB(t)

	// Team A has nothing on the card yet. Settling now would hand a
	// best-ball total of zero to the empty side, so it must be rejected.
	mock.ExpectQuery(`SELECT \* FROM "scores"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "round_id", "player_id", "hole_number", "strokes"}))

	_, _, err := buildTeams(db, matchWithTwoPlayers(), true)
	assert.ErrorIs(t, err, errTeamScoresMissing)
}

func TestBuildTeamsNetRequiresFinalizedScores(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "net_scores"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "round_id", "player_id", "hole_number", "gross_score", "net_score", "hole_handicap"}))

	_, _, err := buildTeams(db, matchWithTwoPlayers(), false)
	assert.ErrorIs(t, err, errNetScoresMissing)
}
