package scoring

import "sort"

// PlayerScore is a player's finalized totals for one round, used for ranking.
type PlayerScore struct {
	PlayerID string
	Net      int
	Gross    int
}

// PositionGroup is a set of players sharing one finishing position. With
// skip-ranking, a group of size k occupies a single position number and
// pushes the next group's position ahead by k: two players tied for 1st put
// the next player in 3rd.
type PositionGroup struct {
	Position int
	Players  []PlayerScore
}

// RankPlayers sorts a field by (net, then gross) ascending and groups tied
// players into skip-ranked positions.
//
// Gross is only a sort tiebreak for display order. Grouping is by net score
// alone: two players with equal net but different gross are still one tied
// group and split the same prize money. This mirrors how the trip has always
// settled ties.
func RankPlayers(scores []PlayerScore) []PositionGroup {
	ranked := make([]PlayerScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Net != ranked[j].Net {
			return ranked[i].Net < ranked[j].Net
		}
		return ranked[i].Gross < ranked[j].Gross
	})

	var groups []PositionGroup
	for _, score := range ranked {
		if n := len(groups); n > 0 && groups[n-1].Players[0].Net == score.Net {
			groups[n-1].Players = append(groups[n-1].Players, score)
			continue
		}
		position := 1
		if n := len(groups); n > 0 {
			position = groups[n-1].Position + len(groups[n-1].Players)
		}
		groups = append(groups, PositionGroup{
			Position: position,
			Players:  []PlayerScore{score},
		})
	}
	return groups
}

// PrizeTable holds the base prize for each paying position. Only the top
// three positions pay.
type PrizeTable struct {
	First  int
	Second int
	Third  int
}

// Purse is the full money configuration for a round: position prizes plus
// the shared pots for skins and twos. Amounts are whole dollars.
type Purse struct {
	Prizes   PrizeTable
	SkinsPot int
	TwosPot  int
}

// DefaultPurse is the trip's standing arrangement: $120/$80/$40 for the top
// three net finishers, and $120 pots for skins and twos.
var DefaultPurse = Purse{
	Prizes:   PrizeTable{First: 120, Second: 80, Third: 40},
	SkinsPot: 120,
	TwosPot:  120,
}

func (t PrizeTable) prizeFor(position int) int {
	switch position {
	case 1:
		return t.First
	case 2:
		return t.Second
	case 3:
		return t.Third
	default:
		return 0
	}
}

// PositionPayout returns the per-player payout for a finishing position,
// accounting for ties. Tied players pool the prize money for the positions
// their group occupies and split it evenly, rounding down; the remainder from
// integer division stays in the clubhouse.
//
//   - Tie at 1st: pool positions 1..min(tiedCount, 3). A 4-way tie for first
//     splits $240 four ways, not some deeper pool.
//   - Tie at 2nd: pool 2nd + 3rd.
//   - Tie at 3rd: pool 3rd only.
//   - Positions past 3rd pay nothing, tied or not.
func (t PrizeTable) PositionPayout(position, tiedCount int) int {
	if tiedCount <= 1 {
		return t.prizeFor(position)
	}

	pool := 0
	switch position {
	case 1:
		paying := tiedCount
		if paying > 3 {
			paying = 3
		}
		for p := 1; p <= paying; p++ {
			pool += t.prizeFor(p)
		}
	case 2:
		pool = t.Second + t.Third
	case 3:
		pool = t.Third
	default:
		return 0
	}
	return pool / tiedCount
}

// SkinPayout is the amount each skin pays: the skins pot split evenly
// (rounded down) across every skin won in the round. Zero skins pays zero,
// never a division by zero.
func (p Purse) SkinPayout(skinCount int) int {
	if skinCount == 0 {
		return 0
	}
	return p.SkinsPot / skinCount
}

// TwoPayout is the amount each two pays, from the twos pot. Same split rule
// as skins.
func (p Purse) TwoPayout(twoCount int) int {
	if twoCount == 0 {
		return 0
	}
	return p.TwosPot / twoCount
}

// HoleScore is one recorded score: a player's gross strokes on one hole.
type HoleScore struct {
	PlayerID string
	Hole     int
	Strokes  int
}

// Skin is a hole won outright by the single lowest gross score.
type Skin struct {
	Hole     int
	PlayerID string
	Strokes  int
}

// ComputeSkins walks all 18 holes and awards a skin on each hole where
// exactly one player has the strict lowest gross score. A tie for low on a
// hole means no skin there; the pot just splits across fewer skins. Holes
// with no recorded scores are skipped.
func ComputeSkins(scores []HoleScore) []Skin {
	var skins []Skin
	for hole := 1; hole <= HolesPerRound; hole++ {
		low := 0
		lowCount := 0
		winner := ""
		for _, s := range scores {
			if s.Hole != hole {
				continue
			}
			switch {
			case lowCount == 0 || s.Strokes < low:
				low = s.Strokes
				lowCount = 1
				winner = s.PlayerID
			case s.Strokes == low:
				lowCount++
			}
		}
		if lowCount == 1 {
			skins = append(skins, Skin{Hole: hole, PlayerID: winner, Strokes: low})
		}
	}
	return skins
}

// Two is a hole played in exactly two strokes. Twos are detected straight
// from the gross score, with no reference to par: a 2 on a par 3 and a 2 on
// a par 4 both count.
type Two struct {
	PlayerID string
	Hole     int
}

// ComputeTwos returns every recorded score of exactly 2, in hole order.
func ComputeTwos(scores []HoleScore) []Two {
	var twos []Two
	for hole := 1; hole <= HolesPerRound; hole++ {
		for _, s := range scores {
			if s.Hole == hole && s.Strokes == 2 {
				twos = append(twos, Two{PlayerID: s.PlayerID, Hole: hole})
			}
		}
	}
	return twos
}
