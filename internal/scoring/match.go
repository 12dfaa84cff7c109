package scoring

import (
	"errors"
	"fmt"
	"sort"
)

// Bets are the four independent wager amounts on a match, in whole dollars.
// Front, back, and total are the three Nassau legs; Birdie pays per birdie
// made by any player in the match.
type Bets struct {
	FrontNine int
	BackNine  int
	Total     int
	Birdie    int
}

// Winner identifies which side took a Nassau leg.
type Winner string

const (
	WinnerTeamA Winner = "A"
	WinnerTeamB Winner = "B"
	WinnerTie   Winner = "tie"
)

// Segment is the settled outcome of one Nassau leg. Payouts are signed and
// zero-sum: the winner's payout is +bet, the loser's is -bet, and a tied leg
// pays nothing either way.
type Segment struct {
	Winner  Winner
	PayoutA int
	PayoutB int
}

// Birdie is a birdie bonus owed to an individual player. Birdies are paid
// per player, not per team, so both sides of a match can collect in the same
// round.
type Birdie struct {
	PlayerID string
	Hole     int
	Amount   int
}

// Settlement is the full outcome of a match: the three Nassau legs plus any
// birdie bonuses.
type Settlement struct {
	FrontNine Segment
	BackNine  Segment
	Total     Segment
	Birdies   []Birdie
}

// Team is one side of a match: its roster and every score recorded by its
// players, in whichever scoring basis (gross or net) the match uses.
type Team struct {
	Players []string
	Scores  []HoleScore
}

// TeamBestBall sums a team's best-ball score over a hole range: on each hole
// the lowest score among teammates with a recorded score counts for the team.
// Holes where nobody on the team has a score contribute nothing. They are
// skipped, not counted as zero, so missing data shrinks the comparison
// instead of corrupting it.
func TeamBestBall(scores []HoleScore, fromHole, toHole int) int {
	total := 0
	for hole := fromHole; hole <= toHole; hole++ {
		best := 0
		found := false
		for _, s := range scores {
			if s.Hole != hole {
				continue
			}
			if !found || s.Strokes < best {
				best = s.Strokes
				found = true
			}
		}
		if found {
			total += best
		}
	}
	return total
}

// SettleMatch settles a Nassau match between two teams.
//
// The three legs are independent bets: front nine (holes 1-9), back nine
// (holes 10-18), and the total, which compares full-18 best-ball totals
// rather than being derived from the other two legs. Lower score wins a leg;
// equal scores tie it and nobody pays.
//
// Birdie bonuses are only computed for gross matches. A handicap-adjusted
// "net birdie" is not a birdie, so net matches produce none. For gross
// matches, each player's best recorded score per hole (duplicates keep the
// minimum) is compared against that hole's par; every score strictly under
// par earns one bonus of bets.Birdie. pars must have 18 entries; pass nil to
// treat every hole as a par 4, the fallback for an unrecognized course.
//
// The match configuration is validated before any arithmetic: empty rosters,
// mismatched team sizes, and negative bets are rejected.
func SettleMatch(teamA, teamB Team, bets Bets, grossScoring bool, pars []int) (*Settlement, error) {
	if len(teamA.Players) == 0 || len(teamB.Players) == 0 {
		return nil, errors.New("both teams need at least one player")
	}
	if len(teamA.Players) != len(teamB.Players) {
		return nil, fmt.Errorf("team sizes differ: %d vs %d", len(teamA.Players), len(teamB.Players))
	}
	if bets.FrontNine < 0 || bets.BackNine < 0 || bets.Total < 0 || bets.Birdie < 0 {
		return nil, errors.New("bet amounts cannot be negative")
	}

	frontA := TeamBestBall(teamA.Scores, 1, 9)
	frontB := TeamBestBall(teamB.Scores, 1, 9)
	backA := TeamBestBall(teamA.Scores, 10, HolesPerRound)
	backB := TeamBestBall(teamB.Scores, 10, HolesPerRound)

	settlement := &Settlement{
		FrontNine: settleSegment(frontA, frontB, bets.FrontNine),
		BackNine:  settleSegment(backA, backB, bets.BackNine),
		Total:     settleSegment(frontA+backA, frontB+backB, bets.Total),
	}

	if grossScoring {
		settlement.Birdies = computeBirdies(teamA, teamB, bets.Birdie, pars)
	}
	return settlement, nil
}

// settleSegment resolves one Nassau leg from two best-ball totals.
func settleSegment(scoreA, scoreB, bet int) Segment {
	switch {
	case scoreA < scoreB:
		return Segment{Winner: WinnerTeamA, PayoutA: bet, PayoutB: -bet}
	case scoreB < scoreA:
		return Segment{Winner: WinnerTeamB, PayoutA: -bet, PayoutB: bet}
	default:
		return Segment{Winner: WinnerTie}
	}
}

// computeBirdies finds every hole where a player's best recorded gross score
// beat par. The result is ordered by player then hole so settlement output is
// reproducible run to run.
func computeBirdies(teamA, teamB Team, amount int, pars []int) []Birdie {
	if len(pars) != HolesPerRound {
		fallback := make([]int, HolesPerRound)
		for i := range fallback {
			fallback[i] = 4
		}
		pars = fallback
	}

	// Best score per player per hole. Duplicate entries for the same hole
	// keep the minimum.
	best := make(map[string]map[int]int)
	for _, s := range append(append([]HoleScore{}, teamA.Scores...), teamB.Scores...) {
		if s.Hole < 1 || s.Hole > HolesPerRound {
			continue
		}
		holes, ok := best[s.PlayerID]
		if !ok {
			holes = make(map[int]int)
			best[s.PlayerID] = holes
		}
		if current, ok := holes[s.Hole]; !ok || s.Strokes < current {
			holes[s.Hole] = s.Strokes
		}
	}

	players := make([]string, 0, len(best))
	for id := range best {
		players = append(players, id)
	}
	sort.Strings(players)

	var birdies []Birdie
	for _, id := range players {
		for hole := 1; hole <= HolesPerRound; hole++ {
			strokes, ok := best[id][hole]
			if ok && strokes < pars[hole-1] {
				birdies = append(birdies, Birdie{PlayerID: id, Hole: hole, Amount: amount})
			}
		}
	}
	return birdies
}
