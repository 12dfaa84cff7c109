// Package courses holds the static reference data for the trip: the four
// courses, their tee sets with ratings and slopes, and each hole's par and
// stroke index. The data is fixed for the week and immutable at runtime, so
// it lives in code rather than the database. Everything that varies (who
// plays, what they shoot, what they bet) lives in Postgres.
package courses

import (
	"strconv"
	"strings"

	"github.com/golfbuddy/backend/internal/scoring"
)

// Tee is one set of markers on a course. Rating and slope drive the course
// handicap calculation; Pars and StrokeIndexes are indexed by hole (position
// 0 = hole 1).
type Tee struct {
	ID            string
	Name          string
	Color         string
	Rating        float64
	Slope         int
	TotalPar      int
	TotalDistance int
	Pars          []int
	StrokeIndexes []int
}

// Course is a named course with its available tee sets. Par and stroke index
// are the same across a course's tees; rating, slope, and distance differ.
type Course struct {
	Name string
	Tees []Tee
}

var (
	palmerPars      = []int{4, 3, 5, 4, 3, 4, 4, 4, 5, 5, 4, 4, 4, 3, 5, 3, 4, 4}
	palmerIndexes   = []int{5, 11, 9, 15, 13, 7, 17, 1, 3, 6, 14, 8, 2, 18, 12, 16, 10, 4}
	nicklausPars    = []int{4, 4, 5, 4, 3, 5, 4, 3, 4, 4, 3, 4, 4, 4, 5, 3, 4, 5}
	nicklausIndexes = []int{17, 1, 5, 3, 7, 13, 9, 15, 11, 4, 18, 6, 10, 2, 12, 8, 14, 16}
	watsonPars      = []int{5, 4, 3, 4, 4, 4, 3, 5, 4, 4, 4, 3, 4, 5, 3, 4, 5, 4}
	watsonIndexes   = []int{5, 9, 17, 1, 3, 15, 11, 7, 13, 2, 10, 16, 14, 18, 12, 4, 8, 6}
	southernPars    = []int{4, 4, 3, 5, 4, 3, 4, 4, 5, 4, 3, 5, 4, 3, 4, 5, 4, 4}
	southernIndexes = []int{9, 15, 11, 5, 7, 17, 1, 13, 3, 2, 16, 6, 8, 18, 14, 4, 12, 10}
	defaultHolePar  = 4
)

// all is the course catalog for the week.
var all = []Course{
	{
		Name: "Palmer",
		Tees: []Tee{
			tee("palmer-tips", "Tips", "black", 73.6, 141, 6916, palmerPars, palmerIndexes),
			tee("palmer-men-gold", "Men", "gold", 70.9, 133, 6419, palmerPars, palmerIndexes),
			tee("palmer-men-gb", "Men", "gold/blue", 70.1, 130, 6225, palmerPars, palmerIndexes),
			tee("palmer-senior", "Senior", "blue", 69.5, 127, 6058, palmerPars, palmerIndexes),
		},
	},
	{
		Name: "Nicklaus",
		Tees: []Tee{
			tee("nicklaus-tips", "Tips", "gold", 74.8, 140, 7219, nicklausPars, nicklausIndexes),
			tee("nicklaus-men-gb", "Men", "gold/blue", 73.0, 135, 6816, nicklausPars, nicklausIndexes),
			tee("nicklaus-men-blue", "Men", "blue", 71.4, 133, 6471, nicklausPars, nicklausIndexes),
			tee("nicklaus-senior", "Senior", "white", 69.8, 129, 6205, nicklausPars, nicklausIndexes),
		},
	},
	{
		Name: "Watson",
		Tees: []Tee{
			tee("watson-tips", "Tips", "black", 75.0, 136, 7154, watsonPars, watsonIndexes),
			tee("watson-men-gold", "Men", "gold", 72.9, 132, 6697, watsonPars, watsonIndexes),
			tee("watson-men-blue", "Men", "blue", 70.8, 126, 6319, watsonPars, watsonIndexes),
		},
	},
	{
		Name: "SouthernDunes",
		Tees: []Tee{
			tee("southerndunes-tips", "Tips", "black", 75.0, 140, 7192, southernPars, southernIndexes),
			tee("southerndunes-men-blue", "Men", "blue", 72.9, 136, 6737, southernPars, southernIndexes),
			tee("southerndunes-men-white", "Men", "white", 70.4, 133, 6220, southernPars, southernIndexes),
			tee("southerndunes-senior", "Senior", "gold", 67.2, 121, 5498, southernPars, southernIndexes),
		},
	},
}

func tee(id, name, color string, rating float64, slope, distance int, pars, indexes []int) Tee {
	total := 0
	for _, p := range pars {
		total += p
	}
	return Tee{
		ID:            id,
		Name:          name,
		Color:         color,
		Rating:        rating,
		Slope:         slope,
		TotalPar:      total,
		TotalDistance: distance,
		Pars:          pars,
		StrokeIndexes: indexes,
	}
}

// All returns every course in the catalog.
func All() []Course {
	return all
}

// ByName looks a course up by its name.
func ByName(name string) (Course, bool) {
	for _, c := range all {
		if c.Name == name {
			return c, true
		}
	}
	return Course{}, false
}

// ParsFor returns the per-hole pars for a course by name. An unrecognized
// course name falls back to all par 4s, the documented default for birdie
// detection on courses we have no card for.
func ParsFor(courseName string) []int {
	if c, ok := ByName(courseName); ok && len(c.Tees) > 0 {
		return c.Tees[0].Pars
	}
	pars := make([]int, scoring.HolesPerRound)
	for i := range pars {
		pars[i] = defaultHolePar
	}
	return pars
}

// FindTee resolves a tee slug like "nicklaus-men-gb" against a course's tee
// sets. The slug format is course-name-color: the second segment matches the
// tee name, the third the color, with "gb" standing in for compound colors
// like gold/blue. Schedule slugs may carry a trailing numeric disambiguator
// ("watson-tips-2") which is ignored for matching.
func FindTee(courseName, teeID string) (Tee, bool) {
	course, ok := ByName(courseName)
	if !ok {
		return Tee{}, false
	}

	parts := strings.Split(strings.ToLower(teeID), "-")
	// Drop a trailing numeric segment; it only disambiguates repeat rounds
	// on the same course.
	if len(parts) > 1 {
		if _, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			parts = parts[:len(parts)-1]
		}
	}
	if len(parts) < 2 {
		return Tee{}, false
	}

	teeName := parts[1]
	teeColor := ""
	if len(parts) > 2 {
		teeColor = parts[2]
	}

	for _, t := range course.Tees {
		if strings.ToLower(t.Name) != teeName {
			continue
		}
		if teeColor == "" {
			return t, true
		}
		if strings.Contains(t.Color, "/") {
			if teeColor == "gb" {
				return t, true
			}
			continue
		}
		if strings.ToLower(t.Color) == teeColor {
			return t, true
		}
	}
	return Tee{}, false
}
