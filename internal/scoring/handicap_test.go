package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Nicklaus men's (gold/blue) stroke index, hole 1 through 18.
var nicklausStrokeIndex = []int{17, 1, 5, 3, 7, 13, 9, 15, 11, 4, 18, 6, 10, 2, 12, 8, 14, 16}

func TestCourseHandicap(t *testing.T) {
	// 10.4 * (135/113) + (73.0 - 72) = 13.425 -> 13
	assert.Equal(t, 13, CourseHandicap(10.4, 135, 73.0, 72))

	// Scratch-ish player on an easy tee can come out negative.
	assert.Equal(t, -2, CourseHandicap(0.0, 113, 70.0, 72))

	// Zero index, rating == par.
	assert.Equal(t, 0, CourseHandicap(0.0, 120, 72.0, 72))
}

func TestCourseHandicapRoundsHalfAwayFromZero(t *testing.T) {
	// Slope 113 makes the slope factor exactly 1, so the raw value is the
	// index plus (rating - par). These land exactly on .5 boundaries.
	assert.Equal(t, 3, CourseHandicap(2.5, 113, 72.0, 72))
	assert.Equal(t, -3, CourseHandicap(-2.5, 113, 72.0, 72))
	assert.Equal(t, 2, CourseHandicap(1.5, 113, 72.0, 72))
}

func TestAllocateStrokesZeroHandicap(t *testing.T) {
	allocation, err := AllocateStrokes(0, nicklausStrokeIndex)
	require.NoError(t, err)
	require.Len(t, allocation, HolesPerRound)
	for hole := 1; hole <= HolesPerRound; hole++ {
		assert.Equal(t, 0, allocation[hole], "hole %d", hole)
	}
}

func TestAllocateStrokesThirteen(t *testing.T) {
	// 13 strokes land exactly on the 13 hardest holes, one each.
	allocation, err := AllocateStrokes(13, nicklausStrokeIndex)
	require.NoError(t, err)

	for hole := 1; hole <= HolesPerRound; hole++ {
		si := nicklausStrokeIndex[hole-1]
		want := 0
		if si <= 13 {
			want = 1
		}
		assert.Equal(t, want, allocation[hole], "hole %d (stroke index %d)", hole, si)
	}
}

func TestAllocateStrokesWrapsPastEighteen(t *testing.T) {
	// 20 strokes: every hole gets one, the two hardest get a second.
	allocation, err := AllocateStrokes(20, nicklausStrokeIndex)
	require.NoError(t, err)

	for hole := 1; hole <= HolesPerRound; hole++ {
		si := nicklausStrokeIndex[hole-1]
		want := 1
		if si <= 2 {
			want = 2
		}
		assert.Equal(t, want, allocation[hole], "hole %d (stroke index %d)", hole, si)
	}
}

func TestAllocateStrokesNegativeHandicap(t *testing.T) {
	// A plus player gives strokes back starting from the easiest holes.
	allocation, err := AllocateStrokes(-3, nicklausStrokeIndex)
	require.NoError(t, err)

	for hole := 1; hole <= HolesPerRound; hole++ {
		si := nicklausStrokeIndex[hole-1]
		want := 0
		if si >= 16 {
			want = -1
		}
		assert.Equal(t, want, allocation[hole], "hole %d (stroke index %d)", hole, si)
	}
}

func TestAllocateStrokesConservation(t *testing.T) {
	// The adjustments always sum to the course handicap, wrap or no wrap.
	for ch := -36; ch <= 40; ch++ {
		allocation, err := AllocateStrokes(ch, nicklausStrokeIndex)
		require.NoError(t, err)

		sum := 0
		for _, strokes := range allocation {
			sum += strokes
		}
		assert.Equal(t, ch, sum, "course handicap %d", ch)
	}
}

func TestAllocateStrokesRejectsBadStrokeIndex(t *testing.T) {
	_, err := AllocateStrokes(5, []int{1, 2, 3})
	assert.Error(t, err)

	duplicated := make([]int, HolesPerRound)
	copy(duplicated, nicklausStrokeIndex)
	duplicated[0] = duplicated[1] // two holes claim the same index
	_, err = AllocateStrokes(5, duplicated)
	assert.Error(t, err)

	outOfRange := make([]int, HolesPerRound)
	copy(outOfRange, nicklausStrokeIndex)
	outOfRange[3] = 19
	_, err = AllocateStrokes(5, outOfRange)
	assert.Error(t, err)
}
