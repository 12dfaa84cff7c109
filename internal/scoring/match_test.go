package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// card builds a full 18-hole score list for one player with constant strokes,
// then applies per-hole overrides.
func card(playerID string, strokes int, overrides map[int]int) []HoleScore {
	scores := make([]HoleScore, 0, HolesPerRound)
	for hole := 1; hole <= HolesPerRound; hole++ {
		s := strokes
		if override, ok := overrides[hole]; ok {
			s = override
		}
		scores = append(scores, HoleScore{PlayerID: playerID, Hole: hole, Strokes: s})
	}
	return scores
}

func TestTeamBestBall(t *testing.T) {
	team := append(
		card("p1", 5, map[int]int{1: 3}),
		card("p2", 4, map[int]int{2: 6})...,
	)

	// Hole 1: min(3,5)=3. Hole 2: min(5,6)=5. Holes 3-9: min(5,4)=4.
	assert.Equal(t, 3+5+4*7, TeamBestBall(team, 1, 9))
}

func TestTeamBestBallSkipsMissingHoles(t *testing.T) {
	// Only holes 1 and 3 have scores; hole 2 contributes nothing.
	team := []HoleScore{
		{PlayerID: "p1", Hole: 1, Strokes: 4},
		{PlayerID: "p1", Hole: 3, Strokes: 5},
	}
	assert.Equal(t, 9, TeamBestBall(team, 1, 9))
}

func TestSettleMatchZeroSum(t *testing.T) {
	teamA := Team{Players: []string{"a"}, Scores: card("a", 4, nil)}
	teamB := Team{Players: []string{"b"}, Scores: card("b", 5, nil)}
	bets := Bets{FrontNine: 10, BackNine: 10, Total: 10}

	settlement, err := SettleMatch(teamA, teamB, bets, true, nil)
	require.NoError(t, err)

	assert.Equal(t, WinnerTeamA, settlement.Total.Winner)
	assert.Equal(t, 10, settlement.Total.PayoutA)
	assert.Equal(t, -10, settlement.Total.PayoutB)
	assert.Equal(t, -settlement.FrontNine.PayoutB, settlement.FrontNine.PayoutA)
	assert.Equal(t, -settlement.BackNine.PayoutB, settlement.BackNine.PayoutA)
}

func TestSettleMatchTiedSegmentsPayNothing(t *testing.T) {
	teamA := Team{Players: []string{"a"}, Scores: card("a", 4, nil)}
	teamB := Team{Players: []string{"b"}, Scores: card("b", 4, nil)}

	settlement, err := SettleMatch(teamA, teamB, Bets{FrontNine: 20, BackNine: 20, Total: 20}, false, nil)
	require.NoError(t, err)

	for _, segment := range []Segment{settlement.FrontNine, settlement.BackNine, settlement.Total} {
		assert.Equal(t, WinnerTie, segment.Winner)
		assert.Equal(t, 0, segment.PayoutA)
		assert.Equal(t, 0, segment.PayoutB)
	}
}

func TestSettleMatchSplitNines(t *testing.T) {
	// A wins the front by one, B wins the back by two, B takes the total.
	teamA := Team{Players: []string{"a"}, Scores: card("a", 4, map[int]int{10: 7})}
	teamB := Team{Players: []string{"b"}, Scores: card("b", 4, map[int]int{1: 5})}

	settlement, err := SettleMatch(teamA, teamB, Bets{FrontNine: 5, BackNine: 5, Total: 10}, false, nil)
	require.NoError(t, err)

	assert.Equal(t, WinnerTeamA, settlement.FrontNine.Winner)
	assert.Equal(t, WinnerTeamB, settlement.BackNine.Winner)
	assert.Equal(t, WinnerTeamB, settlement.Total.Winner)
	assert.Equal(t, -10, settlement.Total.PayoutA)
}

func TestSettleMatchBirdies(t *testing.T) {
	pars := []int{4, 4, 5, 4, 3, 5, 4, 3, 4, 4, 3, 4, 4, 4, 5, 3, 4, 5}

	// "a" birdies hole 1 (3 on a par 4); "b" birdies hole 3 (4 on a par 5).
	// Both sides collect independently.
	teamA := Team{Players: []string{"a"}, Scores: card("a", 5, map[int]int{1: 3})}
	teamB := Team{Players: []string{"b"}, Scores: card("b", 5, map[int]int{3: 4})}

	settlement, err := SettleMatch(teamA, teamB, Bets{Birdie: 5}, true, pars)
	require.NoError(t, err)

	require.Len(t, settlement.Birdies, 2)
	assert.Equal(t, Birdie{PlayerID: "a", Hole: 1, Amount: 5}, settlement.Birdies[0])
	assert.Equal(t, Birdie{PlayerID: "b", Hole: 3, Amount: 5}, settlement.Birdies[1])
}

func TestSettleMatchDuplicateScoresKeepMinimumForBirdies(t *testing.T) {
	pars := []int{4, 4, 5, 4, 3, 5, 4, 3, 4, 4, 3, 4, 4, 4, 5, 3, 4, 5}

	scores := card("a", 5, nil)
	// Two entries for hole 1; only the better one counts for the birdie.
	scores = append(scores, HoleScore{PlayerID: "a", Hole: 1, Strokes: 3})

	teamA := Team{Players: []string{"a"}, Scores: scores}
	teamB := Team{Players: []string{"b"}, Scores: card("b", 5, nil)}

	settlement, err := SettleMatch(teamA, teamB, Bets{Birdie: 5}, true, pars)
	require.NoError(t, err)
	require.Len(t, settlement.Birdies, 1)
	assert.Equal(t, 1, settlement.Birdies[0].Hole)
}

func TestSettleMatchNetScoringProducesNoBirdies(t *testing.T) {
	teamA := Team{Players: []string{"a"}, Scores: card("a", 3, nil)}
	teamB := Team{Players: []string{"b"}, Scores: card("b", 5, nil)}

	settlement, err := SettleMatch(teamA, teamB, Bets{Birdie: 5}, false, nil)
	require.NoError(t, err)
	assert.Empty(t, settlement.Birdies)
}

func TestSettleMatchUnknownCourseDefaultsToParFour(t *testing.T) {
	// nil pars: every hole plays as a par 4, so a 3 is a birdie.
	teamA := Team{Players: []string{"a"}, Scores: card("a", 4, map[int]int{7: 3})}
	teamB := Team{Players: []string{"b"}, Scores: card("b", 4, nil)}

	settlement, err := SettleMatch(teamA, teamB, Bets{Birdie: 2}, true, nil)
	require.NoError(t, err)
	require.Len(t, settlement.Birdies, 1)
	assert.Equal(t, Birdie{PlayerID: "a", Hole: 7, Amount: 2}, settlement.Birdies[0])
}

func TestSettleMatchRejectsInvalidConfiguration(t *testing.T) {
	valid := Team{Players: []string{"a"}, Scores: card("a", 4, nil)}

	_, err := SettleMatch(Team{}, valid, Bets{}, true, nil)
	assert.Error(t, err)

	_, err = SettleMatch(valid, Team{Players: []string{"b", "c"}}, Bets{}, true, nil)
	assert.Error(t, err)

	_, err = SettleMatch(valid, Team{Players: []string{"b"}}, Bets{FrontNine: -1}, true, nil)
	assert.Error(t, err)
}

func TestSettleMatchDeterministic(t *testing.T) {
	pars := []int{4, 4, 5, 4, 3, 5, 4, 3, 4, 4, 3, 4, 4, 4, 5, 3, 4, 5}
	teamA := Team{
		Players: []string{"a1", "a2"},
		Scores:  append(card("a1", 5, map[int]int{2: 3}), card("a2", 4, map[int]int{9: 3})...),
	}
	teamB := Team{
		Players: []string{"b1", "b2"},
		Scores:  append(card("b1", 4, nil), card("b2", 6, map[int]int{14: 3})...),
	}
	bets := Bets{FrontNine: 10, BackNine: 10, Total: 20, Birdie: 5}

	first, err := SettleMatch(teamA, teamB, bets, true, pars)
	require.NoError(t, err)
	second, err := SettleMatch(teamA, teamB, bets, true, pars)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
