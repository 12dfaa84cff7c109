package courses

import (
	"testing"

	"github.com/golfbuddy/backend/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIsWellFormed(t *testing.T) {
	for _, course := range All() {
		require.NotEmpty(t, course.Tees, "course %s has no tees", course.Name)
		for _, tee := range course.Tees {
			assert.Len(t, tee.Pars, scoring.HolesPerRound, "%s pars", tee.ID)
			assert.NoError(t, scoring.ValidateStrokeIndex(tee.StrokeIndexes), "%s stroke indexes", tee.ID)
			assert.Equal(t, 72, tee.TotalPar, "%s total par", tee.ID)
			for _, par := range tee.Pars {
				assert.GreaterOrEqual(t, par, 3, "%s par range", tee.ID)
				assert.LessOrEqual(t, par, 5, "%s par range", tee.ID)
			}
		}
	}
}

func TestFindTee(t *testing.T) {
	tee, ok := FindTee("Nicklaus", "nicklaus-men-gb")
	require.True(t, ok)
	assert.Equal(t, "gold/blue", tee.Color)
	assert.Equal(t, 73.0, tee.Rating)
	assert.Equal(t, 135, tee.Slope)

	// A trailing numeric disambiguator from the schedule is ignored.
	tee, ok = FindTee("Watson", "watson-tips-2")
	require.True(t, ok)
	assert.Equal(t, "Tips", tee.Name)

	// A slug without a color segment matches by name alone.
	tee, ok = FindTee("Palmer", "palmer-senior")
	require.True(t, ok)
	assert.Equal(t, "Senior", tee.Name)

	_, ok = FindTee("Nicklaus", "nicklaus-men-red")
	assert.False(t, ok)

	_, ok = FindTee("Augusta", "augusta-tips")
	assert.False(t, ok)
}

func TestParsFor(t *testing.T) {
	pars := ParsFor("Nicklaus")
	require.Len(t, pars, scoring.HolesPerRound)
	assert.Equal(t, 4, pars[0])
	assert.Equal(t, 5, pars[2])

	// Unknown courses fall back to all par 4s.
	fallback := ParsFor("Augusta")
	for _, par := range fallback {
		assert.Equal(t, 4, par)
	}
}

func TestScheduleReferencesRealTees(t *testing.T) {
	for _, round := range Schedule() {
		_, ok := ByName(round.CourseName)
		require.True(t, ok, "round %s references unknown course %s", round.ID, round.CourseName)
		for _, teeID := range round.TeeIDs {
			_, ok := FindTee(round.CourseName, teeID)
			assert.True(t, ok, "round %s tee %s does not resolve", round.ID, teeID)
		}
	}
}

func TestScheduledRoundByID(t *testing.T) {
	round, ok := ScheduledRoundByID("thu-1")
	require.True(t, ok)
	assert.Equal(t, "SouthernDunes", round.CourseName)

	_, ok = ScheduledRoundByID("mon-9")
	assert.False(t, ok)
}
