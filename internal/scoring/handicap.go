// Package scoring implements the calculation engine for the golf trip:
// course handicaps, per-hole stroke allocation, net scores, round results
// (positions, skins, twos), and Nassau match settlement.
//
// Every function in this package is a pure computation over plain in-memory
// values. Nothing here touches the database, the network, or shared state,
// so identical inputs always produce identical outputs. Persistence and HTTP
// live in the handlers and models packages and call into this one.
package scoring

import (
	"fmt"

	// decimal gives us exact decimal arithmetic for the course handicap
	// formula, so the rounding rule at the .5 boundary is well defined
	// instead of depending on float64 representation.
	"github.com/shopspring/decimal"
)

// HolesPerRound is the number of holes in a full round. All tees on the trip
// are rated for 18 holes.
const HolesPerRound = 18

// slopeBase is the USGA standard slope: a course of average difficulty.
var slopeBase = decimal.NewFromInt(113)

// CourseHandicap converts a player's handicap index into whole strokes for a
// specific tee:
//
//	round(index * (slope / 113) + (rating - par))
//
// The result is rounded half away from zero, so an exact .5 always moves to
// the larger magnitude (12.5 -> 13, -12.5 -> -13). The result can be zero or
// negative for players better than scratch on these tees.
func CourseHandicap(handicapIndex float64, slope int, rating float64, par int) int {
	index := decimal.NewFromFloat(handicapIndex)
	slopeFactor := decimal.NewFromInt(int64(slope)).Div(slopeBase)
	ratingAdjustment := decimal.NewFromFloat(rating).Sub(decimal.NewFromInt(int64(par)))

	raw := index.Mul(slopeFactor).Add(ratingAdjustment)
	return int(raw.Round(0).IntPart())
}

// ValidateStrokeIndex checks that a stroke-index list is usable for
// allocation: exactly 18 entries forming a permutation of 1..18 (1 is the
// hardest hole). A bad list means the reference data is corrupt, so callers
// should fail loudly rather than allocate strokes from it.
func ValidateStrokeIndex(strokeIndexByHole []int) error {
	if len(strokeIndexByHole) != HolesPerRound {
		return fmt.Errorf("stroke index list has %d entries, want %d", len(strokeIndexByHole), HolesPerRound)
	}
	var seen [HolesPerRound + 1]bool
	for i, si := range strokeIndexByHole {
		if si < 1 || si > HolesPerRound {
			return fmt.Errorf("hole %d has stroke index %d, want 1-%d", i+1, si, HolesPerRound)
		}
		if seen[si] {
			return fmt.Errorf("stroke index %d assigned to more than one hole", si)
		}
		seen[si] = true
	}
	return nil
}

// AllocateStrokes distributes a course handicap across the 18 holes.
//
// strokeIndexByHole is indexed by hole (position 0 = hole 1) and holds each
// hole's stroke index. The returned map is keyed by hole number (1..18) and
// holds that hole's stroke adjustment: positive means the player receives
// strokes there, negative means they give strokes back.
//
//   - Positive handicap: one stroke per hole walking the holes from hardest
//     (stroke index 1) to easiest, wrapping around and stacking extra strokes
//     on the same holes when the handicap exceeds 18.
//   - Negative handicap: one stroke taken per hole walking from easiest
//     (stroke index 18) to hardest, wrapping the same way.
//   - Zero handicap: every hole maps to 0.
//
// The sum of all adjustments always equals courseHandicap.
func AllocateStrokes(courseHandicap int, strokeIndexByHole []int) (map[int]int, error) {
	if err := ValidateStrokeIndex(strokeIndexByHole); err != nil {
		return nil, err
	}

	allocation := make(map[int]int, HolesPerRound)
	for hole := 1; hole <= HolesPerRound; hole++ {
		allocation[hole] = 0
	}
	if courseHandicap == 0 {
		return allocation, nil
	}

	order := holesByDifficulty(strokeIndexByHole)

	if courseHandicap > 0 {
		remaining := courseHandicap
		for remaining > 0 {
			for _, hole := range order {
				if remaining == 0 {
					break
				}
				allocation[hole]++
				remaining--
			}
		}
		return allocation, nil
	}

	remaining := -courseHandicap
	for remaining > 0 {
		for i := len(order) - 1; i >= 0 && remaining > 0; i-- {
			allocation[order[i]]--
			remaining--
		}
	}
	return allocation, nil
}

// holesByDifficulty returns hole numbers ordered hardest first: position 0 is
// the hole carrying stroke index 1, position 17 the hole carrying stroke
// index 18. The input must already be a valid permutation.
func holesByDifficulty(strokeIndexByHole []int) []int {
	order := make([]int, HolesPerRound)
	for i, si := range strokeIndexByHole {
		order[si-1] = i + 1
	}
	return order
}
