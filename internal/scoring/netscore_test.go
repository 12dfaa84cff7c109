package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullGrossCard(strokes int) map[int]int {
	card := make(map[int]int, HolesPerRound)
	for hole := 1; hole <= HolesPerRound; hole++ {
		card[hole] = strokes
	}
	return card
}

func TestApplyStrokesSignConvention(t *testing.T) {
	gross := map[int]int{1: 5, 2: 4}
	allocation := map[int]int{1: 1, 2: 0}

	net := ApplyStrokes(gross, allocation)

	// A received stroke lowers the hole's net score by one.
	assert.Equal(t, 4, net[1])
	assert.Equal(t, 4, net[2])
}

func TestApplyStrokesNetTotalInvariant(t *testing.T) {
	// For any handicap, total net == total gross - course handicap once a
	// full allocation is applied, regardless of which holes the strokes
	// landed on.
	gross := fullGrossCard(5)
	gross[3] = 7
	gross[11] = 2

	for _, ch := range []int{-5, 0, 1, 13, 18, 23, 40} {
		allocation, err := AllocateStrokes(ch, nicklausStrokeIndex)
		require.NoError(t, err)

		net := ApplyStrokes(gross, allocation)
		assert.Equal(t, Total(gross)-ch, Total(net), "course handicap %d", ch)
	}
}

func TestApplyStrokesSkipsUnrecordedHoles(t *testing.T) {
	gross := map[int]int{1: 4, 9: 3}
	allocation, err := AllocateStrokes(18, nicklausStrokeIndex)
	require.NoError(t, err)

	net := ApplyStrokes(gross, allocation)
	require.Len(t, net, 2)
	assert.Equal(t, 3, net[1])
	assert.Equal(t, 2, net[9])
}
